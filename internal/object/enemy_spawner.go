package object

import (
	"math"
	"time"
)

// Enemy spawning tuning.
const (
	EnemySpawnRate     = 2.0  // Enemies per second at the start of a session
	EnemySpawnRateStep = 0.5  // Added to the spawn rate at each difficulty step
	DifficultyStep     = 0.1  // Added to the difficulty multiplier at each step
	DifficultyInterval = 30.0 // Seconds between difficulty steps
	MaxEnemies         = 20   // No spawns while this many enemies are alive
	EnemySpawnY        = -30.0
)

// EnemySpawner spawns Grunts at the top of the field on a timer and ramps
// the difficulty up over time.
type EnemySpawner struct {
	SpawnRate  float64 // Enemies per second
	Difficulty float64 // Multiplier baked into new enemies, only grows
	Level      int     // Difficulty steps taken so far
	MaxEnemies int

	cooldown float64 // Seconds until the next spawn
	elapsed  float64 // Seconds since the last difficulty step
}

// NewEnemySpawner creates a spawner with session-start settings.
func NewEnemySpawner() *EnemySpawner {
	return &EnemySpawner{
		SpawnRate:  EnemySpawnRate,
		Difficulty: 1,
		MaxEnemies: MaxEnemies,
	}
}

// Update advances the timers. It returns true when the difficulty stepped
// up this frame. live is the number of enemies currently alive.
func (s *EnemySpawner) Update(delta time.Duration, live int, screen Screen, rng Rand, spawner Spawner) (stepped bool) {
	dt := delta.Seconds()

	s.elapsed += dt
	if s.elapsed > DifficultyInterval {
		s.elapsed = 0
		s.Difficulty += DifficultyStep
		s.SpawnRate += EnemySpawnRateStep
		s.Level++
		stepped = true
	}

	if s.cooldown <= 0 && live < s.MaxEnemies {
		spawner.Spawn(s.NewEnemy(screen, rng))
		s.cooldown = 1 / s.SpawnRate
	}
	s.cooldown -= dt

	return stepped
}

// NewEnemy creates a Grunt at a random x along the top, scaled by the
// current difficulty.
func (s *EnemySpawner) NewEnemy(screen Screen, rng Rand) *Enemy {
	x := rng.Float64() * (screen.Width - enemyVariants[EnemyGrunt].width)
	e := NewGrunt(x, EnemySpawnY)

	e.Health *= s.Difficulty
	e.MaxHealth *= s.Difficulty
	e.Speed *= 1 + s.Difficulty*0.1
	e.Score = int(math.Ceil(100 * s.Difficulty))
	return e
}
