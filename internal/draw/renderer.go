package draw

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/skyshooter/internal/loop"
	"github.com/tomz197/skyshooter/internal/object"
)

// Renderer draws frames of a game onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	canvas *Canvas
	shapes []Shape

	termWidth  int
	termHeight int
}

// NewRenderer creates a renderer for a world of the given size and fits it
// to the screen's current size.
func NewRenderer(s tcell.Screen, world object.Screen) *Renderer {
	r := &Renderer{
		screen: s,
		canvas: NewCanvas(0, 0, world.Width, world.Height),
	}
	r.Resize()
	return r
}

// Canvas returns the pixel buffer.
func (r *Renderer) Canvas() *Canvas { return r.canvas }

// Resize refits the render area to the screen size. It clears the screen
// when the size changed so nothing is left outside the new area.
func (r *Renderer) Resize() {
	termWidth, termHeight := r.screen.Size()
	if termWidth == r.termWidth && termHeight == r.termHeight {
		return
	}
	r.termWidth, r.termHeight = termWidth, termHeight

	renderWidth, renderHeight, offsetCol, offsetRow := Fit(termWidth, termHeight)
	r.canvas.Resize(renderWidth, renderHeight)
	r.canvas.SetOffset(offsetCol, offsetRow)
	r.screen.Clear()
}

// Frame draws the world, the border and the HUD, then shows the screen.
// now drives the blinking prompt.
func (r *Renderer) Frame(g *loop.Game, hud loop.HUD, now time.Time) {
	r.canvas.Clear()
	r.shapes = r.shapes[:0]
	for _, e := range g.Entities() {
		r.shapes = AppendShapes(r.shapes, e)
	}
	for _, s := range r.shapes {
		r.canvas.DrawShape(s)
	}

	r.canvas.Render(r.screen)
	r.canvas.RenderBorder(r.screen, tcell.StyleDefault.Foreground(tcell.ColorGray))

	if hud.GameOver {
		drawGameOver(r.screen, r.canvas, hud, now)
	} else {
		drawHUD(r.screen, r.canvas, hud)
	}
	r.screen.Show()
}
