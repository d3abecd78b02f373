package object

import "time"

// PowerUpSpawnRate is the number of power-ups spawned per second.
const PowerUpSpawnRate = 0.5

// PowerUpSpawner drops a random power-up from the top of the field on a
// fixed timer.
type PowerUpSpawner struct {
	SpawnRate float64
	cooldown  float64
}

// NewPowerUpSpawner creates a spawner with the default rate.
func NewPowerUpSpawner() *PowerUpSpawner {
	return &PowerUpSpawner{SpawnRate: PowerUpSpawnRate}
}

// Update advances the timer and spawns a power-up when it runs out. The type
// is drawn before the position.
func (s *PowerUpSpawner) Update(delta time.Duration, screen Screen, rng Rand, spawner Spawner) {
	if s.cooldown <= 0 {
		t := PickPowerUpType(rng.Float64())
		x := rng.Float64() * (screen.Width - PowerUpSize)
		spawner.Spawn(NewPowerUp(t, x, PowerUpSpawnY))
		s.cooldown = 1 / s.SpawnRate
	}
	s.cooldown -= delta.Seconds()
}
