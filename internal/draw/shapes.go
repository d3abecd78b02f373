package draw

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/skyshooter/internal/object"
)

// ShapeKind selects how a Shape is drawn.
type ShapeKind int

const (
	ShapeRect    ShapeKind = iota // Filled X, Y, W, H
	ShapeFrame                    // Outlined X, Y, W, H
	ShapePolygon                  // Filled Points
	ShapeRing                     // Outlined circle at X, Y with radius W
)

// Shape is one backend-neutral drawing primitive in world coordinates.
type Shape struct {
	Kind       ShapeKind
	X, Y, W, H float64
	Points     []Point
	Color      tcell.Color
}

// Palette.
var (
	ColorPlayer      = tcell.NewHexColor(0x00FF00)
	ColorShield      = tcell.NewHexColor(0x0088FF)
	ColorHealthBar   = tcell.NewHexColor(0xFF0000)
	ColorHealthTrack = tcell.NewHexColor(0x440000)
	ColorEnemy       = tcell.NewHexColor(0xFF0000)
	ColorBullet      = tcell.NewHexColor(0xFFFF00)
	ColorEnemyBullet = tcell.NewHexColor(0xFF6600)
	ColorWhite       = tcell.NewHexColor(0xFFFFFF)
	ColorBombFuse    = tcell.NewHexColor(0xFFD700)
	ColorBombBody    = tcell.NewHexColor(0x555555)
)

var powerUpColors = map[object.PowerUpType]tcell.Color{
	object.PowerUpHealth:         tcell.NewHexColor(0x00FF00),
	object.PowerUpSpreadShot:     tcell.NewHexColor(0xFF00FF),
	object.PowerUpRapidFire:      tcell.NewHexColor(0xFFA500),
	object.PowerUpShield:         ColorShield,
	object.PowerUpPiercingRounds: ColorWhite,
	object.PowerUpBomb:           ColorBombBody,
}

var particleColors = map[object.ParticleTint]tcell.Color{
	object.TintFire:  tcell.NewHexColor(0xFF8800),
	object.TintSpark: tcell.NewHexColor(0xFFFF66),
	object.TintSmoke: tcell.NewHexColor(0x888888),
}

// PowerUpColor returns the body color of a power-up type.
func PowerUpColor(t object.PowerUpType) tcell.Color {
	if c, ok := powerUpColors[t]; ok {
		return c
	}
	return ColorWhite
}

// Fade scales a color toward black by alpha in [0, 1].
func Fade(c tcell.Color, alpha float64) tcell.Color {
	if alpha >= 1 || !c.Valid() {
		return c
	}
	alpha = max(alpha, 0)
	r, g, b := c.RGB()
	return tcell.NewRGBColor(
		int32(math.Round(float64(r)*alpha)),
		int32(math.Round(float64(g)*alpha)),
		int32(math.Round(float64(b)*alpha)),
	)
}

// ShieldRadius is the radius of the ring drawn around a shielded player.
const ShieldRadius = 25.0

// AppendShapes appends the primitives that draw e, back to front.
func AppendShapes(dst []Shape, e object.Entity) []Shape {
	switch v := e.(type) {
	case *object.Player:
		return appendPlayer(dst, v)
	case *object.Enemy:
		dst = append(dst, Shape{Kind: ShapeRect, X: v.X, Y: v.Y, W: v.Width, H: v.Height, Color: ColorEnemy})
		if v.Health < v.MaxHealth {
			dst = appendHealthBar(dst, v.X, v.Y-5, v.Width, 3, v.HealthFraction())
		}
		return dst
	case *object.Bullet:
		color := ColorBullet
		if v.Variant == object.BulletEnemy {
			color = ColorEnemyBullet
		}
		return append(dst, Shape{Kind: ShapeRect, X: v.X, Y: v.Y, W: v.Width, H: v.Height, Color: color})
	case *object.PowerUp:
		return appendPowerUp(dst, v)
	case *object.Particle:
		color := Fade(particleColors[v.Tint], v.Alpha)
		return append(dst, Shape{Kind: ShapeRect, X: v.X, Y: v.Y, W: v.Width, H: v.Height, Color: color})
	}
	return dst
}

func appendPlayer(dst []Shape, p *object.Player) []Shape {
	dst = append(dst, Shape{
		Kind: ShapePolygon,
		Points: []Point{
			{p.X + p.Width/2, p.Y},
			{p.X + p.Width, p.Y + p.Height},
			{p.X, p.Y + p.Height},
		},
		Color: ColorPlayer,
	})
	if p.Shield.Active {
		dst = append(dst, Shape{Kind: ShapeRing, X: p.X + p.Width/2, Y: p.Y + p.Height/2, W: ShieldRadius, Color: ColorShield})
	}
	if p.Health < p.MaxHealth {
		dst = appendHealthBar(dst, p.X, p.Y-10, p.Width, 5, p.HealthFraction())
	}
	return dst
}

func appendHealthBar(dst []Shape, x, y, w, h, fraction float64) []Shape {
	dst = append(dst, Shape{Kind: ShapeRect, X: x, Y: y, W: w, H: h, Color: ColorHealthTrack})
	if fraction > 0 {
		dst = append(dst, Shape{Kind: ShapeRect, X: x, Y: y, W: w * fraction, H: h, Color: ColorHealthBar})
	}
	return dst
}

func appendPowerUp(dst []Shape, p *object.PowerUp) []Shape {
	color := Fade(PowerUpColor(p.Type), p.Alpha)
	x, y, w, h := p.X, p.Y, p.Width, p.Height

	switch p.Type {
	case object.PowerUpHealth:
		// Green box with a white cross.
		white := Fade(ColorWhite, p.Alpha)
		dst = append(dst,
			Shape{Kind: ShapeRect, X: x, Y: y, W: w, H: h, Color: color},
			Shape{Kind: ShapeRect, X: x + w*0.4, Y: y + h*0.15, W: w * 0.2, H: h * 0.7, Color: white},
			Shape{Kind: ShapeRect, X: x + w*0.15, Y: y + h*0.4, W: w * 0.7, H: h * 0.2, Color: white},
		)
	case object.PowerUpSpreadShot:
		dst = append(dst, Shape{Kind: ShapePolygon, Points: []Point{
			{x + w/2, y}, {x + w*0.75, y + h/2}, {x + w/2, y + h}, {x + w*0.25, y + h/2},
		}, Color: color})
	case object.PowerUpShield:
		dst = append(dst, Shape{Kind: ShapeRing, X: x + w/2, Y: y + h/2, W: w / 2, Color: color})
	case object.PowerUpBomb:
		dst = append(dst,
			Shape{Kind: ShapeRing, X: x + w/2, Y: y + h*0.6, W: w * 0.4, Color: color},
			Shape{Kind: ShapeRect, X: x + w/2 - 1, Y: y, W: 2, H: h * 0.2, Color: Fade(ColorBombFuse, p.Alpha)},
		)
	default:
		dst = append(dst, Shape{Kind: ShapeFrame, X: x, Y: y, W: w, H: h, Color: color})
	}
	return dst
}

// DrawShape draws one primitive onto the canvas.
func (c *Canvas) DrawShape(s Shape) {
	switch s.Kind {
	case ShapeRect:
		c.FillRect(s.X, s.Y, s.W, s.H, s.Color)
	case ShapeFrame:
		c.DrawPolygon([]Point{
			{s.X, s.Y}, {s.X + s.W, s.Y}, {s.X + s.W, s.Y + s.H}, {s.X, s.Y + s.H},
		}, s.Color, false)
	case ShapePolygon:
		c.DrawPolygon(s.Points, s.Color, true)
	case ShapeRing:
		c.DrawRing(s.X, s.Y, s.W, s.Color)
	}
}
