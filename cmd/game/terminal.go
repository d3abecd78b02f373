package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/input"
	"github.com/tomz197/skyshooter/internal/loop"
	"github.com/tomz197/skyshooter/internal/object"
)

// terminalFrontend plays the game on a tcell screen. Terminals only report
// key presses and auto-repeat, so held keys come from an input.Tracker.
type terminalFrontend struct {
	screen   tcell.Screen
	renderer *draw.Renderer
	events   chan tcell.Event
	hold     time.Duration
	tracker  *input.Tracker
}

func newTerminalFrontend(s tcell.Screen, world object.Screen, hold time.Duration) *terminalFrontend {
	f := &terminalFrontend{
		screen:   s,
		renderer: draw.NewRenderer(s, world),
		events:   make(chan tcell.Event, 64),
		hold:     hold,
	}
	go f.pump()
	return f
}

// pump forwards screen events until the screen is finalized.
func (f *terminalFrontend) pump() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			close(f.events)
			return
		}
		f.events <- ev
	}
}

func (f *terminalFrontend) Poll(st *input.State, now time.Time) bool {
	if f.tracker == nil {
		f.tracker = input.NewTracker(st, f.hold)
	}

	for {
		select {
		case ev, ok := <-f.events:
			if !ok {
				return false
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return false
				}
				if k, ok := input.KeyFromTcell(ev); ok {
					f.tracker.Observe(k, now)
				}
			case *tcell.EventResize:
				f.renderer.Resize()
				f.screen.Sync()
			case *tcell.EventFocus:
				if !ev.Focused {
					f.tracker.Reset()
				}
			}
		default:
			f.tracker.Expire(now)
			return true
		}
	}
}

func (f *terminalFrontend) Render(g *loop.Game, hud loop.HUD) error {
	f.renderer.Frame(g, hud, time.Now())
	return nil
}
