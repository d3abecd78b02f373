package object

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PowerUpType identifies what a power-up does when collected.
type PowerUpType int

const (
	PowerUpHealth PowerUpType = iota
	PowerUpSpreadShot
	PowerUpRapidFire
	PowerUpShield
	PowerUpPiercingRounds
	PowerUpBomb
)

var powerUpNames = [...]string{
	PowerUpHealth:         "health",
	PowerUpSpreadShot:     "spreadShot",
	PowerUpRapidFire:      "rapidFire",
	PowerUpShield:         "shield",
	PowerUpPiercingRounds: "piercingRounds",
	PowerUpBomb:           "bomb",
}

func (t PowerUpType) String() string {
	if t < 0 || int(t) >= len(powerUpNames) {
		return "unknown"
	}
	return powerUpNames[t]
}

// Power-up tuning.
const (
	PowerUpSize       = 20.0
	PowerUpFallSpeed  = 150.0 // px/s downward
	PowerUpDuration   = 10.0  // Seconds for timed effects
	PowerUpHealAmount = 30.0
	PowerUpSpawnY     = -20.0

	pulsePeriod = 0.6 // Seconds for one alpha fade-out or fade-in
	pulseMin    = 0.55
)

// PowerUpWeight is the spawn weight of one power-up type.
type PowerUpWeight struct {
	Type   PowerUpType
	Weight float64
}

// PowerUpWeights are the spawn chances in selection order. They sum to 1.
var PowerUpWeights = []PowerUpWeight{
	{PowerUpHealth, 0.30},
	{PowerUpSpreadShot, 0.20},
	{PowerUpRapidFire, 0.20},
	{PowerUpShield, 0.15},
	{PowerUpPiercingRounds, 0.10},
	{PowerUpBomb, 0.05},
}

// PickPowerUpType selects a type for a uniform draw r in [0, 1): the first
// type whose cumulative weight is >= r. Falls back to the last type if
// rounding leaves r above the final cumulative weight.
func PickPowerUpType(r float64) PowerUpType {
	cumulative := 0.0
	for _, w := range PowerUpWeights {
		cumulative += w.Weight
		if r <= cumulative {
			return w.Type
		}
	}
	return PowerUpWeights[len(PowerUpWeights)-1].Type
}

// PowerUp is a falling collectible.
type PowerUp struct {
	Body
	Type PowerUpType

	pulse  *gween.Tween
	fading bool
}

// NewPowerUp creates a power-up of the given type with its top-left at (x, y).
func NewPowerUp(t PowerUpType, x, y float64) *PowerUp {
	p := &PowerUp{
		Body:   NewBody(x, y, PowerUpSize, PowerUpSize),
		Type:   t,
		pulse:  gween.New(1, pulseMin, pulsePeriod, ease.InOutSine),
		fading: true,
	}
	p.VY = PowerUpFallSpeed
	return p
}

// Kind returns KindPowerUp.
func (p *PowerUp) Kind() Kind {
	return KindPowerUp
}

// Update moves the power-up down, pulses its alpha, and retires it once it
// drops below the field.
func (p *PowerUp) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()
	p.Integrate(dt)

	alpha, done := p.pulse.Update(float32(dt))
	p.Alpha = float64(alpha)
	if done {
		from, to := float32(pulseMin), float32(1)
		if !p.fading {
			from, to = to, from
		}
		p.fading = !p.fading
		p.pulse = gween.New(from, to, pulsePeriod, ease.InOutSine)
	}

	if p.IsOffScreen(ctx.Screen) {
		p.Kill()
	}
}

// IsOffScreen reports whether the power-up has fallen below the field.
func (p *PowerUp) IsOffScreen(screen Screen) bool {
	return p.Y > screen.Height
}

// Apply applies the power-up effect to the player. Timed effects are
// re-armed to the full duration rather than extended. Bombs have no effect
// on the player; the caller decides what a bomb does.
func (p *PowerUp) Apply(player *Player) {
	switch p.Type {
	case PowerUpHealth:
		player.Heal(PowerUpHealAmount)
	case PowerUpSpreadShot:
		player.SpreadShot.Arm(PowerUpDuration)
	case PowerUpRapidFire:
		player.RapidFire.Arm(PowerUpDuration)
	case PowerUpShield:
		player.Shield.Arm(PowerUpDuration)
	case PowerUpPiercingRounds:
		player.PiercingRounds.Arm(PowerUpDuration)
	case PowerUpBomb:
	}
}
