package draw

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/skyshooter/internal/input"
	"github.com/tomz197/skyshooter/internal/loop"
	"github.com/tomz197/skyshooter/internal/object"
)

var world = object.Screen{Width: 800, Height: 600}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, row int) string {
	w, _ := s.Size()
	var b strings.Builder
	for col := 0; col < w; col++ {
		r, _, _, _ := s.GetContent(col, row)
		b.WriteRune(r)
	}
	return b.String()
}

func screenContains(s tcell.Screen, text string) bool {
	_, h := s.Size()
	for row := 0; row < h; row++ {
		if strings.Contains(rowText(s, row), text) {
			return true
		}
	}
	return false
}

func TestFit(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{"smaller than max", 80, 24, 80, 24, 0, 0},
		{"exactly max", 160, 60, 160, 60, 0, 0},
		{"wider", 200, 40, 160, 40, 20, 0},
		{"taller", 100, 81, 100, 60, 0, 10},
		{"both", 221, 70, 160, 60, 30, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, col, row := Fit(tt.termW, tt.termH)
			if w != tt.wantW || h != tt.wantH || col != tt.wantOffCol || row != tt.wantOffRow {
				t.Errorf("expected (%d, %d, %d, %d), got (%d, %d, %d, %d)",
					tt.wantW, tt.wantH, tt.wantOffCol, tt.wantOffRow, w, h, col, row)
			}
		})
	}
}

func TestFillRectScales(t *testing.T) {
	c := NewCanvas(80, 30, 800, 600) // 0.1 pixels per unit on both axes
	red := tcell.ColorRed

	c.FillRect(100, 100, 25, 25, red)

	tests := []struct {
		x, y int
		want tcell.Color
	}{
		{10, 10, red},
		{12, 12, red},
		{13, 10, tcell.ColorDefault},
		{10, 13, tcell.ColorDefault},
		{9, 10, tcell.ColorDefault},
	}
	for _, tt := range tests {
		if got := c.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestFillRectCoversAtLeastOnePixel(t *testing.T) {
	c := NewCanvas(80, 30, 800, 600)
	c.FillRect(5, 5, 4, 4, tcell.ColorYellow)

	if c.Pixel(0, 0) != tcell.ColorYellow {
		t.Errorf("expected a sub-pixel rect to cover its pixel")
	}
	if c.Pixel(1, 0) != tcell.ColorDefault || c.Pixel(0, 1) != tcell.ColorDefault {
		t.Errorf("expected only one pixel covered")
	}
}

func TestDrawingOutsideIsClipped(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)
	c.FillRect(-50, -50, 20, 20, tcell.ColorRed)
	c.DrawLine(Point{-5, -5}, Point{20, 20}, tcell.ColorBlue)
	c.DrawRing(100, 100, 5, tcell.ColorGreen)

	if c.Pixel(0, 0) != tcell.ColorBlue || c.Pixel(9, 9) != tcell.ColorBlue {
		t.Errorf("expected the diagonal clipped to the canvas")
	}
	if c.Pixel(-1, 0) != tcell.ColorDefault || c.Pixel(10, 0) != tcell.ColorDefault {
		t.Errorf("expected out-of-range reads to return the default color")
	}
}

func TestFilledPolygon(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)
	c.DrawPolygon([]Point{{10, 0}, {20, 20}, {0, 20}}, tcell.ColorGreen, true)

	if c.Pixel(10, 14) != tcell.ColorGreen {
		t.Errorf("expected the interior filled")
	}
	if c.Pixel(1, 1) != tcell.ColorDefault {
		t.Errorf("expected the corner outside the triangle empty")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	s := newScreen(t, 4, 3)
	c := NewCanvas(3, 1, 3, 2)
	c.SetOffset(1, 1)
	c.Set(0, 0, tcell.ColorRed)
	c.Set(0, 1, tcell.ColorRed)
	c.Set(1, 0, tcell.ColorRed)
	c.Set(1, 1, tcell.ColorBlue)
	c.Set(2, 1, tcell.ColorGreen)

	c.Render(s)

	tests := []struct {
		col    int
		rune   rune
		fg, bg tcell.Color
	}{
		{1, BlockFull, tcell.ColorRed, tcell.ColorDefault},
		{2, BlockUpperHalf, tcell.ColorRed, tcell.ColorBlue},
		{3, BlockLowerHalf, tcell.ColorGreen, tcell.ColorDefault},
	}
	for _, tt := range tests {
		r, _, style, _ := s.GetContent(tt.col, 1)
		fg, bg, _ := style.Decompose()
		if r != tt.rune || fg != tt.fg || bg != tt.bg {
			t.Errorf("cell %d: expected %q fg %v bg %v, got %q fg %v bg %v", tt.col, tt.rune, tt.fg, tt.bg, r, fg, bg)
		}
	}
}

func TestRenderBorder(t *testing.T) {
	s := newScreen(t, 4, 3)
	c := NewCanvas(2, 1, 2, 2)
	c.SetOffset(1, 1)

	c.RenderBorder(s, tcell.StyleDefault)

	tests := []struct {
		col, row int
		want     rune
	}{
		{0, 0, tcell.RuneULCorner},
		{3, 0, tcell.RuneURCorner},
		{0, 2, tcell.RuneLLCorner},
		{3, 2, tcell.RuneLRCorner},
		{1, 0, tcell.RuneHLine},
		{0, 1, tcell.RuneVLine},
	}
	for _, tt := range tests {
		if r, _, _, _ := s.GetContent(tt.col, tt.row); r != tt.want {
			t.Errorf("cell (%d, %d): expected %q, got %q", tt.col, tt.row, tt.want, r)
		}
	}
}

func TestFade(t *testing.T) {
	got := Fade(tcell.NewHexColor(0xFF8800), 0.5)
	if r, g, b := got.RGB(); r != 128 || g != 68 || b != 0 {
		t.Errorf("expected (128, 68, 0), got (%d, %d, %d)", r, g, b)
	}
	if Fade(ColorWhite, 1) != ColorWhite {
		t.Errorf("expected full alpha to keep the color")
	}
	if Fade(tcell.ColorDefault, 0.5) != tcell.ColorDefault {
		t.Errorf("expected the default color untouched")
	}
}

func TestAppendShapes(t *testing.T) {
	damaged := object.NewPlayer(100, 100)
	damaged.TakeDamage(50)
	damaged.Shield.Arm(5)

	hurt := object.NewGrunt(0, 0)
	hurt.TakeDamage(5)

	tests := []struct {
		name       string
		entity     object.Entity
		wantShapes int
		wantColor  tcell.Color
	}{
		{"healthy player", object.NewPlayer(100, 100), 1, ColorPlayer},
		{"shielded damaged player", damaged, 4, ColorPlayer},
		{"enemy", object.NewGrunt(0, 0), 1, ColorEnemy},
		{"damaged enemy", hurt, 3, ColorEnemy},
		{"player bullet", object.NewBullet(0, 0), 1, ColorBullet},
		{"enemy bullet", object.NewEnemyBullet(0, 0), 1, ColorEnemyBullet},
		{"health pack", object.NewPowerUp(object.PowerUpHealth, 0, 0), 3, PowerUpColor(object.PowerUpHealth)},
		{"rapid fire", object.NewPowerUp(object.PowerUpRapidFire, 0, 0), 1, PowerUpColor(object.PowerUpRapidFire)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shapes := AppendShapes(nil, tt.entity)
			if len(shapes) != tt.wantShapes {
				t.Fatalf("expected %d shapes, got %d", tt.wantShapes, len(shapes))
			}
			if shapes[0].Color != tt.wantColor {
				t.Errorf("expected color %v, got %v", tt.wantColor, shapes[0].Color)
			}
		})
	}
}

func TestStatusLines(t *testing.T) {
	h := loop.HUD{Score: 120, Multiplier: 2, Health: 50, MaxHealth: 100}
	lines := StatusLines(h)
	if len(lines) != 2 {
		t.Fatalf("expected score and health lines, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "Score: 120") || !strings.Contains(lines[0], "x2") {
		t.Errorf("unexpected score line %q", lines[0])
	}
	if !strings.Contains(lines[1], "[#####.....]") {
		t.Errorf("expected a half gauge, got %q", lines[1])
	}

	h.Combo = 3
	h.ComboRemaining = 1.25
	h.Shield = object.Effect{Active: true, Remaining: 4.6}
	lines = StatusLines(h)
	if len(lines) != 4 {
		t.Fatalf("expected combo and effect lines, got %q", lines)
	}
	if !strings.Contains(lines[2], "Combo: 3") || !strings.Contains(lines[3], "Shield 5s") {
		t.Errorf("unexpected lines %q", lines[2:])
	}
}

func TestStatsLine(t *testing.T) {
	line := StatsLine(loop.HUD{Level: 2, Elapsed: 75 * time.Second, FPS: 60})
	if !strings.Contains(line, "01:15") || !strings.Contains(line, "FPS 60") {
		t.Errorf("unexpected stats line %q", line)
	}
}

func TestRendererDrawsPlayerAndHUD(t *testing.T) {
	s := newScreen(t, 160, 60)
	g := loop.New(loop.Options{Seed: 1})
	r := NewRenderer(s, world)

	r.Frame(g, g.HUD(), time.Unix(0, 0))

	// Player centroid (400, 553) at 0.2 pixels per unit.
	if got := r.Canvas().Pixel(80, 110); got != ColorPlayer {
		t.Errorf("expected the player's color at its centroid, got %v", got)
	}
	if !strings.HasPrefix(rowText(s, 0)[1:], "Score: 0") {
		t.Errorf("expected the score in the top row, got %q", rowText(s, 0))
	}
	if !strings.Contains(rowText(s, 59), "Lvl 0") {
		t.Errorf("expected the stats bar in the bottom row, got %q", rowText(s, 59))
	}
}

func TestRendererGameOver(t *testing.T) {
	s := newScreen(t, 160, 60)
	g := loop.New(loop.Options{Seed: 1})
	g.Player().TakeDamage(1000)
	g.Step(16*time.Millisecond, input.Snapshot{})
	r := NewRenderer(s, world)

	r.Frame(g, g.HUD(), time.UnixMilli(0))

	if !screenContains(s, "Score: 0") || !screenContains(s, restartPrompt) {
		t.Errorf("expected the game over screen with the prompt")
	}

	r.Frame(g, g.HUD(), time.UnixMilli(600))
	if screenContains(s, restartPrompt) {
		t.Errorf("expected the prompt hidden on the off phase")
	}
}

func TestRendererResize(t *testing.T) {
	s := newScreen(t, 80, 24)
	r := NewRenderer(s, world)
	if r.Canvas().TerminalWidth() != 80 || r.Canvas().OffsetCol() != 0 {
		t.Fatalf("expected the canvas to fill the screen")
	}

	s.SetSize(200, 80)
	r.Resize()

	c := r.Canvas()
	if c.TerminalWidth() != 160 || c.TerminalHeight() != 60 || c.OffsetCol() != 20 || c.OffsetRow() != 10 {
		t.Errorf("expected a centered 160x60 area, got %dx%d at (%d, %d)",
			c.TerminalWidth(), c.TerminalHeight(), c.OffsetCol(), c.OffsetRow())
	}
}
