// Package object defines every simulated entity: the shared kinematic body,
// the player, enemies, projectiles, power-ups, particles and their spawners.
package object

import (
	"time"

	"github.com/tomz197/skyshooter/internal/input"
)

// Kind is the category tag of an entity. It decides which collision passes
// an entity takes part in and which index the world files it under.
type Kind int

const (
	KindPlayer      Kind = iota
	KindEnemy            // Hostile ship
	KindBullet           // Player-owned projectile (straight or spread)
	KindEnemyBullet      // Enemy-owned projectile
	KindPowerUp          // Collectible
	KindParticle         // Cosmetic, never collides
)

var kindNames = [...]string{
	KindPlayer:      "player",
	KindEnemy:       "enemy",
	KindBullet:      "bullet",
	KindEnemyBullet: "enemyBullet",
	KindPowerUp:     "powerup",
	KindParticle:    "particle",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Rand is the random source used by spawners and effects.
// *math/rand.Rand satisfies it; tests can supply fixed sequences.
type Rand interface {
	Float64() float64
}

// Spawner accepts entities created during an update.
type Spawner interface {
	Spawn(e Entity)
}

// Screen is the size of the play field.
type Screen struct {
	Width  float64
	Height float64
}

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta  time.Duration
	Input  input.Snapshot
	Screen Screen
}

// Entity is a simulated game object.
type Entity interface {
	// Base returns the shared kinematic state.
	Base() *Body

	// Kind returns the category tag.
	Kind() Kind

	// Update advances the entity by one frame.
	Update(ctx UpdateContext)
}
