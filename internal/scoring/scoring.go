// Package scoring keeps the session score and the kill-combo multiplier.
package scoring

import (
	"math"
	"time"
)

// Combo tuning.
const (
	ComboWindow    = 2.0 // Seconds a kill keeps the combo alive
	ComboThreshold = 5   // Kills needed to raise the multiplier one step
	MaxMultiplier  = 10
)

// System tracks score, multiplier and combo for one session.
type System struct {
	score      int
	multiplier int
	combo      int
	comboTimer float64 // Seconds left in the combo window
	kills      int
}

// New creates a system with a zero score and a 1x multiplier.
func New() *System {
	s := &System{}
	s.Reset()
	return s
}

// Reset returns the system to its session-start state.
func (s *System) Reset() {
	*s = System{multiplier: 1}
}

// Score returns the total score.
func (s *System) Score() int { return s.score }

// Multiplier returns the current multiplier, in [1, MaxMultiplier].
func (s *System) Multiplier() int { return s.multiplier }

// Combo returns the kills counted toward the next multiplier step.
func (s *System) Combo() int { return s.combo }

// ComboRemaining returns the seconds left in the combo window.
func (s *System) ComboRemaining() float64 { return s.comboTimer }

// Kills returns the number of kills scored this session.
func (s *System) Kills() int { return s.kills }

// AddKillScore awards base points scaled by the multiplier, advances the
// combo and reopens the combo window. It returns the points awarded.
func (s *System) AddKillScore(base int) int {
	awarded := int(math.Ceil(float64(base) * float64(s.multiplier)))
	s.score += awarded
	s.kills++

	s.combo++
	s.comboTimer = ComboWindow
	if s.combo >= ComboThreshold {
		s.multiplier = min(s.multiplier+1, MaxMultiplier)
		s.combo = 0
	}
	return awarded
}

// AddBonus adds points that bypass the multiplier and combo. Negative
// amounts are ignored so the score never decreases.
func (s *System) AddBonus(points int) {
	if points > 0 {
		s.score += points
	}
}

// Update counts the combo window down. When it runs out, the combo and the
// multiplier both drop back to their initial values.
func (s *System) Update(delta time.Duration) {
	if s.comboTimer <= 0 {
		return
	}
	s.comboTimer -= delta.Seconds()
	if s.comboTimer <= 0 {
		s.comboTimer = 0
		s.combo = 0
		s.multiplier = 1
	}
}
