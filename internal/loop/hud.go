package loop

import (
	"time"

	"github.com/tomz197/skyshooter/internal/object"
)

// HUD is a read-only snapshot of the numbers a frontend displays.
type HUD struct {
	Score          int
	Multiplier     int
	Combo          int
	ComboRemaining float64 // Seconds left in the combo window

	Health    float64
	MaxHealth float64

	SpreadShot     object.Effect
	RapidFire      object.Effect
	Shield         object.Effect
	PiercingRounds object.Effect

	Difficulty     float64
	Level          int // Difficulty steps taken
	Enemies        int // Live enemies
	Kills          int
	BombsCollected int
	Elapsed        time.Duration

	FPS int // Filled in by the driver

	GameOver   bool
	FinalScore int
}

// HUD returns the current display snapshot.
func (g *Game) HUD() HUD {
	h := HUD{
		Score:          g.score.Score(),
		Multiplier:     g.score.Multiplier(),
		Combo:          g.score.Combo(),
		ComboRemaining: g.score.ComboRemaining(),
		Difficulty:     g.enemies.Difficulty,
		Level:          g.enemies.Level,
		Enemies:        g.world.LiveEnemies(),
		Kills:          g.score.Kills(),
		BombsCollected: g.bombs,
		Elapsed:        g.elapsed,
		GameOver:       g.over,
		FinalScore:     g.finalScore,
	}
	if p := g.world.Player; p != nil {
		h.Health = p.Health
		h.MaxHealth = p.MaxHealth
		h.SpreadShot = p.SpreadShot
		h.RapidFire = p.RapidFire
		h.Shield = p.Shield
		h.PiercingRounds = p.PiercingRounds
	}
	return h
}

// HealthFraction returns Health as a fraction of MaxHealth.
func (h HUD) HealthFraction() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return h.Health / h.MaxHealth
}
