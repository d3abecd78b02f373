package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPressedOnlyOnTransition(t *testing.T) {
	s := NewState()
	s.KeyDown(KeyA)
	if !s.Pressed(KeyA) || !s.Held(KeyA) {
		t.Fatal("expected first KeyDown to set pressed and held")
	}

	s.ClearFrame()
	s.KeyDown(KeyA) // auto-repeat
	if s.Pressed(KeyA) {
		t.Error("expected repeat KeyDown not to set pressed")
	}
	if !s.Held(KeyA) {
		t.Error("expected key to stay held")
	}

	s.KeyUp(KeyA)
	if s.Held(KeyA) || !s.Released(KeyA) {
		t.Error("expected KeyUp to clear held and set released")
	}

	s.ClearFrame()
	if s.Released(KeyA) || s.Pressed(KeyA) {
		t.Error("expected ClearFrame to drop edges")
	}
}

func TestSnapshotIsFrozen(t *testing.T) {
	s := NewState()
	s.KeyDown(KeyEnter)
	snap := s.Snapshot()

	s.ClearFrame()
	s.KeyUp(KeyEnter)

	if !snap.Pressed(KeyEnter) || !snap.Held(KeyEnter) {
		t.Error("expected snapshot to keep the edges it was taken with")
	}
	if snap.Released(KeyEnter) {
		t.Error("expected snapshot not to see later releases")
	}
}

func TestZeroSnapshot(t *testing.T) {
	var snap Snapshot
	if snap.Held(KeyArrowLeft) || snap.Movement() != (Direction{}) {
		t.Error("expected zero snapshot to hold nothing")
	}
}

func TestMovementCombinesArrowsAndWASD(t *testing.T) {
	tests := []struct {
		name string
		keys []Key
		want Direction
	}{
		{"arrow left", []Key{KeyArrowLeft}, Direction{Left: true}},
		{"wasd right", []Key{KeyD}, Direction{Right: true}},
		{"upper case wasd", []Key{KeyUpperW}, Direction{Up: true}},
		{"mixed sets", []Key{KeyArrowUp, KeyA}, Direction{Up: true, Left: true}},
		{"opposites kept", []Key{KeyArrowLeft, KeyD}, Direction{Left: true, Right: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapshotOf(tt.keys...).Movement(); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestTrackerHoldWindow(t *testing.T) {
	s := NewState()
	tr := NewTracker(s, 100*time.Millisecond)
	start := time.Unix(0, 0)

	tr.Observe(KeyArrowLeft, start)
	if !s.Pressed(KeyArrowLeft) {
		t.Fatal("expected first observation to press the key")
	}
	s.ClearFrame()

	tr.Observe(KeyArrowLeft, start.Add(50*time.Millisecond))
	tr.Expire(start.Add(120 * time.Millisecond))
	if !s.Held(KeyArrowLeft) {
		t.Error("expected key to stay held inside the hold window")
	}
	if s.Pressed(KeyArrowLeft) {
		t.Error("expected repeat observation not to press again")
	}

	tr.Expire(start.Add(200 * time.Millisecond))
	if s.Held(KeyArrowLeft) || !s.Released(KeyArrowLeft) {
		t.Error("expected key to be released after the hold window")
	}
}

func TestKeyFromTcell(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyArrowLeft, true},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyEnter, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), KeyD, true},
		{tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), KeyQ, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), "", false},
	}

	for _, tt := range tests {
		got, ok := KeyFromTcell(tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KeyFromTcell(%v) = %q, %v; want %q, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}
