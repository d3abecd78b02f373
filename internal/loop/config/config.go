// Package config centralizes all tunable game parameters.
package config

import "time"

// Play field - every entity uses these logical dimensions.
// Frontends scale to fit their window or terminal.
const (
	WorldWidth  = 800
	WorldHeight = 600
)

// Player spawn offsets from the bottom center of the field.
const (
	PlayerSpawnOffsetX = 15 // Half the player width
	PlayerSpawnOffsetY = 60 // Distance from the bottom edge
)

// Collisions
const (
	ContactDamage         = 20.0 // Damage dealt by ramming an enemy
	CollisionGridCellSize = 32.0 // Must be >= the largest enemy or bullet side
)

// Effects
const (
	ExplosionParticles = 12
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxFrameDelta   = 16 * time.Millisecond // Larger steps are clamped to this
	FPSWindow       = 100 * time.Millisecond
)
