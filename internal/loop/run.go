package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/tomz197/skyshooter/internal/input"
	"github.com/tomz197/skyshooter/internal/loop/config"
)

// Driver turns wall-clock ticks into game frames. It owns the key state
// the frontend feeds, handles the session controls and measures FPS.
//
// Controls: Q or Escape stops the session, Enter or R restarts it after
// game over.
type Driver struct {
	Game  *Game
	Input *input.State

	fps  *FPSCounter
	last time.Time
}

// NewDriver creates a driver for the game with an empty key state.
func NewDriver(g *Game) *Driver {
	return &Driver{
		Game:  g,
		Input: input.NewState(),
		fps:   NewFPSCounter(config.FPSWindow),
	}
}

// Tick runs one frame at wall time now and returns the HUD to display.
func (d *Driver) Tick(now time.Time) HUD {
	snap := d.Input.Snapshot()
	switch {
	case snap.Pressed(input.KeyQ) || snap.Pressed(input.KeyEscape):
		d.Game.Stop()
	case d.Game.Over() && (snap.Pressed(input.KeyEnter) || snap.Pressed(input.KeyR)):
		d.Game.Restart()
	}

	delta := config.TargetFrameTime
	if !d.last.IsZero() {
		delta = now.Sub(d.last)
	}
	d.last = now

	d.Game.Update(delta, d.Input)
	d.fps.Frame(now)

	hud := d.Game.HUD()
	hud.FPS = d.fps.FPS()
	return hud
}

// Frontend is a presentation layer driven by Run.
type Frontend interface {
	// Poll drains pending input events into st. It returns false when the
	// frontend has gone away.
	Poll(st *input.State, now time.Time) bool

	// Render draws one frame. It must not mutate the game.
	Render(g *Game, hud HUD) error
}

// Run drives the game at config.TargetFPS until the session stops, the
// frontend goes away or ctx is cancelled.
func Run(ctx context.Context, g *Game, fe Frontend) error {
	d := NewDriver(g)
	ticker := time.NewTicker(config.TargetFrameTime)
	defer ticker.Stop()

	for g.Running() {
		var now time.Time
		select {
		case <-ctx.Done():
			g.Stop()
			return nil
		case now = <-ticker.C:
		}

		if !fe.Poll(d.Input, now) {
			g.Stop()
			break
		}

		hud := d.Tick(now)
		if err := fe.Render(g, hud); err != nil {
			g.Stop()
			return fmt.Errorf("render frame: %w", err)
		}
	}
	return nil
}
