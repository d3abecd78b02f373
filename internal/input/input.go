// Package input tracks per-frame keyboard state for the simulation core.
//
// Raw platform events are translated by a frontend into KeyDown/KeyUp calls on
// a State. Once per frame the orchestrator freezes a Snapshot and clears the
// live edges, so pressed/released transitions are seen by exactly one frame.
package input

import "maps"

// Key identifies a keyboard key by name ("ArrowUp", "w", "Enter", ...).
type Key string

// Keys consumed by the core and the bundled frontends.
const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyW          Key = "w"
	KeyA          Key = "a"
	KeyS          Key = "s"
	KeyD          Key = "d"
	KeyUpperW     Key = "W"
	KeyUpperA     Key = "A"
	KeyUpperS     Key = "S"
	KeyUpperD     Key = "D"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
	KeySpace      Key = " "
	KeyR          Key = "r"
	KeyQ          Key = "q"
)

// State is the live key state fed by a frontend.
type State struct {
	held     map[Key]bool
	pressed  map[Key]bool
	released map[Key]bool
}

// NewState creates an empty key state.
func NewState() *State {
	return &State{
		held:     make(map[Key]bool),
		pressed:  make(map[Key]bool),
		released: make(map[Key]bool),
	}
}

// KeyDown records a key going down. The pressed edge is only set on an
// up->down transition, so auto-repeat does not re-trigger it.
func (s *State) KeyDown(k Key) {
	if !s.held[k] {
		s.pressed[k] = true
	}
	s.held[k] = true
}

// KeyUp records a key going up.
func (s *State) KeyUp(k Key) {
	s.held[k] = false
	s.released[k] = true
}

// Held reports whether the key is currently down.
func (s *State) Held(k Key) bool { return s.held[k] }

// Pressed reports whether the key went down since the last ClearFrame.
func (s *State) Pressed(k Key) bool { return s.pressed[k] }

// Released reports whether the key went up since the last ClearFrame.
func (s *State) Released(k Key) bool { return s.released[k] }

// ClearFrame drops the pressed/released edges. Held state is kept.
func (s *State) ClearFrame() {
	clear(s.pressed)
	clear(s.released)
}

// Reset drops all state, including held keys.
func (s *State) Reset() {
	clear(s.held)
	s.ClearFrame()
}

// Snapshot returns an immutable copy of the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		held:     maps.Clone(s.held),
		pressed:  maps.Clone(s.pressed),
		released: maps.Clone(s.released),
	}
}

// Snapshot is the frozen key state for one simulated frame.
// The zero value has nothing held.
type Snapshot struct {
	held     map[Key]bool
	pressed  map[Key]bool
	released map[Key]bool
}

// Held reports whether the key was down for this frame.
func (s Snapshot) Held(k Key) bool { return s.held[k] }

// Pressed reports whether the key went down during this frame.
func (s Snapshot) Pressed(k Key) bool { return s.pressed[k] }

// Released reports whether the key went up during this frame.
func (s Snapshot) Released(k Key) bool { return s.released[k] }

// Direction is a set of held movement directions.
type Direction struct {
	Up, Down, Left, Right bool
}

// Arrows returns the directions held on the arrow keys.
func (s Snapshot) Arrows() Direction {
	return Direction{
		Up:    s.Held(KeyArrowUp),
		Down:  s.Held(KeyArrowDown),
		Left:  s.Held(KeyArrowLeft),
		Right: s.Held(KeyArrowRight),
	}
}

// WASD returns the directions held on the WASD keys (either case).
func (s Snapshot) WASD() Direction {
	return Direction{
		Up:    s.Held(KeyW) || s.Held(KeyUpperW),
		Down:  s.Held(KeyS) || s.Held(KeyUpperS),
		Left:  s.Held(KeyA) || s.Held(KeyUpperA),
		Right: s.Held(KeyD) || s.Held(KeyUpperD),
	}
}

// Movement combines arrows and WASD. Opposing directions are not cancelled
// here; the consumer decides the tie-break.
func (s Snapshot) Movement() Direction {
	a := s.Arrows()
	w := s.WASD()
	return Direction{
		Up:    a.Up || w.Up,
		Down:  a.Down || w.Down,
		Left:  a.Left || w.Left,
		Right: a.Right || w.Right,
	}
}

// SnapshotOf builds a snapshot with the given keys held. Useful for tests and
// scripted input.
func SnapshotOf(keys ...Key) Snapshot {
	s := NewState()
	for _, k := range keys {
		s.KeyDown(k)
	}
	return s.Snapshot()
}
