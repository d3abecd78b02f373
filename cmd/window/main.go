// Command window plays the game in a desktop window.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/skyshooter/internal/config"
	"github.com/tomz197/skyshooter/internal/draw"
	"github.com/tomz197/skyshooter/internal/input"
	"github.com/tomz197/skyshooter/internal/loop"
	gameconfig "github.com/tomz197/skyshooter/internal/loop/config"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyR:          input.KeyR,
	ebiten.KeyQ:          input.KeyQ,
}

var whiteImg *ebiten.Image

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	whiteImg = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// window adapts a loop.Driver to ebiten's game interface.
type window struct {
	driver *loop.Driver
	hud    loop.HUD
	keys   []ebiten.Key
	shapes []draw.Shape
}

func (w *window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		if key, ok := keyMap[k]; ok {
			w.driver.Input.KeyDown(key)
		}
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, k := range w.keys {
		if key, ok := keyMap[k]; ok {
			w.driver.Input.KeyUp(key)
		}
	}

	w.hud = w.driver.Tick(time.Now())
	if !w.driver.Game.Running() {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	w.shapes = w.shapes[:0]
	for _, e := range w.driver.Game.Entities() {
		w.shapes = draw.AppendShapes(w.shapes, e)
	}
	for _, s := range w.shapes {
		drawShape(screen, s)
	}

	if w.hud.GameOver {
		w.drawGameOver(screen)
		return
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(draw.StatusLines(w.hud), "\n"), 8, 8)
	ebitenutil.DebugPrintAt(screen, draw.StatsLine(w.hud), 8, screen.Bounds().Dy()-20)
}

func (w *window) drawGameOver(screen *ebiten.Image) {
	text := strings.Join(draw.GameOverLines(w.hud), "\n")
	if draw.ShowPrompt(time.Now()) {
		text += "\n\n" + draw.RestartPrompt()
	}
	b := screen.Bounds()
	ebitenutil.DebugPrintAt(screen, text, b.Dx()/2-140, b.Dy()/2-60)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := w.driver.Game.Screen()
	return int(s.Width), int(s.Height)
}

func toRGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

func drawShape(dst *ebiten.Image, s draw.Shape) {
	clr := toRGBA(s.Color)
	switch s.Kind {
	case draw.ShapeRect:
		vector.DrawFilledRect(dst, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), clr, false)
	case draw.ShapeFrame:
		vector.StrokeRect(dst, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), 2, clr, false)
	case draw.ShapeRing:
		vector.StrokeCircle(dst, float32(s.X), float32(s.Y), float32(s.W), 2, clr, true)
	case draw.ShapePolygon:
		fillPolygon(dst, s.Points, clr)
	}
}

func fillPolygon(dst *ebiten.Image, points []draw.Point, clr color.RGBA) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = 1
	}
	dst.DrawTriangles(vs, is, whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
	logger := settings.Logger(os.Stderr, "window")

	g := loop.New(loop.Options{Seed: settings.Seed, Logger: logger})
	s := g.Screen()
	ebiten.SetWindowSize(int(s.Width), int(s.Height))
	ebiten.SetWindowTitle("Sky Shooter")
	ebiten.SetTPS(gameconfig.TargetFPS)

	if err := ebiten.RunGame(&window{driver: loop.NewDriver(g)}); err != nil {
		logger.Fatal("window closed", "err", err)
	}
	g.Stop()
}
