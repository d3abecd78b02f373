package input

import (
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldDuration is how long a terminal key is considered held after the
// last event for it. Terminals never report key-up, so a key is released once
// its auto-repeat stops arriving.
const DefaultHoldDuration = 120 * time.Millisecond

// Tracker turns terminal key events (press and auto-repeat only) into
// KeyDown/KeyUp transitions on a State.
type Tracker struct {
	state    *State
	hold     time.Duration
	lastSeen map[Key]time.Time
}

// NewTracker creates a tracker feeding the given state.
// A non-positive hold uses DefaultHoldDuration.
func NewTracker(state *State, hold time.Duration) *Tracker {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Tracker{
		state:    state,
		hold:     hold,
		lastSeen: make(map[Key]time.Time),
	}
}

// Observe records a key event at the given time.
func (t *Tracker) Observe(k Key, now time.Time) {
	if _, ok := t.lastSeen[k]; !ok {
		t.state.KeyDown(k)
	}
	t.lastSeen[k] = now
}

// Expire releases every key whose last event is older than the hold window.
// Keys are released in name order so the resulting edges are deterministic.
func (t *Tracker) Expire(now time.Time) {
	var stale []Key
	for k, seen := range t.lastSeen {
		if now.Sub(seen) > t.hold {
			stale = append(stale, k)
		}
	}
	slices.Sort(stale)
	for _, k := range stale {
		delete(t.lastSeen, k)
		t.state.KeyUp(k)
	}
}

// Reset forgets every tracked key and clears the state.
func (t *Tracker) Reset() {
	clear(t.lastSeen)
	t.state.Reset()
}

// KeyFromTcell maps a tcell key event to a Key. ok is false for keys the game
// does not use.
func KeyFromTcell(ev *tcell.EventKey) (k Key, ok bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyArrowUp, true
	case tcell.KeyDown:
		return KeyArrowDown, true
	case tcell.KeyLeft:
		return KeyArrowLeft, true
	case tcell.KeyRight:
		return KeyArrowRight, true
	case tcell.KeyEnter:
		return KeyEnter, true
	case tcell.KeyEscape:
		return KeyEscape, true
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'w', 'a', 's', 'd', 'W', 'A', 'S', 'D', 'r', 'q', ' ':
			return Key(string(r)), true
		case 'R':
			return KeyR, true
		case 'Q':
			return KeyQ, true
		}
	}
	return "", false
}
