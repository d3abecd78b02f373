package draw

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. It scales from logical world coordinates to
// terminal pixels.
type Canvas struct {
	termWidth      int           // Terminal columns
	termHeight     int           // Terminal rows
	subPixelHeight int           // termHeight * 2
	pixels         []tcell.Color // Flat slice: [y * termWidth + x], ColorDefault when unset

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets of the render area.
	offsetCol int
	offsetRow int

	scaledBuf       []Point
	intersectionBuf []float64
}

// NewCanvas creates a canvas for the given terminal size that maps a
// logicalWidth x logicalHeight world onto it.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]tcell.Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset of the render area.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

func (c *Canvas) OffsetCol() int      { return c.offsetCol }
func (c *Canvas) OffsetRow() int      { return c.offsetRow }
func (c *Canvas) TerminalWidth() int  { return c.termWidth }
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at terminal pixel coordinates.
func (c *Canvas) setPixel(x, y int, color tcell.Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// Pixel returns the color at terminal pixel coordinates, or ColorDefault
// when unset or out of range.
func (c *Canvas) Pixel(x, y int) tcell.Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return tcell.ColorDefault
	}
	return c.pixels[y*c.termWidth+x]
}

// Set sets the pixel under a logical coordinate.
func (c *Canvas) Set(x, y float64, color tcell.Color) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)), color)
}

// FillRect fills an axis-aligned logical rectangle. Rectangles smaller than
// a pixel still cover the pixel under their top-left corner.
func (c *Canvas) FillRect(x, y, w, h float64, color tcell.Color) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := max(int(math.Ceil((x+w)*c.scaleX)), x0+1)
	y1 := max(int(math.Ceil((y+h)*c.scaleY)), y0+1)

	for py := max(y0, 0); py < min(y1, c.subPixelHeight); py++ {
		for px := max(x0, 0); px < min(x1, c.termWidth); px++ {
			c.pixels[py*c.termWidth+px] = color
		}
	}
}

// DrawLine draws a line between two logical points using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, color tcell.Color) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1, color)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon outline, filling the interior when filled is
// set.
func (c *Canvas) DrawPolygon(points []Point, color tcell.Color, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points, color)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], color)
	}
}

// DrawRing draws an ellipse outline around a logical center.
func (c *Canvas) DrawRing(cx, cy, r float64, color tcell.Color) {
	const segments = 24
	prev := Point{cx + r, cy}
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		next := Point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
		c.DrawLine(prev, next, color)
		prev = next
	}
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point, color tcell.Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	n := len(scaled)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y, color)
			}
		}
	}
}

// Render writes the canvas to the screen. Each cell shows its top pixel as
// the foreground and its bottom pixel as the background of an upper
// half-block.
func (c *Canvas) Render(s tcell.Screen) {
	base := tcell.StyleDefault
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			x, y := col+c.offsetCol, row+c.offsetRow

			switch {
			case top == tcell.ColorDefault && bottom == tcell.ColorDefault:
				s.SetContent(x, y, BlockEmpty, nil, base)
			case top == bottom:
				s.SetContent(x, y, BlockFull, nil, base.Foreground(top))
			case bottom == tcell.ColorDefault:
				s.SetContent(x, y, BlockUpperHalf, nil, base.Foreground(top))
			case top == tcell.ColorDefault:
				s.SetContent(x, y, BlockLowerHalf, nil, base.Foreground(bottom))
			default:
				s.SetContent(x, y, BlockUpperHalf, nil, base.Foreground(top).Background(bottom))
			}
		}
	}
}

// RenderBorder draws a box around the render area where the offsets leave
// room for it: horizontal bars when there is a row offset, vertical bars
// when there is a column offset and corners when both are present.
func (c *Canvas) RenderBorder(s tcell.Screen, style tcell.Style) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol - 1
	right := c.offsetCol + c.termWidth
	top := c.offsetRow - 1
	bottom := c.offsetRow + c.termHeight

	if hasV {
		for col := c.offsetCol; col < right; col++ {
			s.SetContent(col, top, tcell.RuneHLine, nil, style)
			s.SetContent(col, bottom, tcell.RuneHLine, nil, style)
		}
	}
	if hasH {
		for row := c.offsetRow; row < bottom; row++ {
			s.SetContent(left, row, tcell.RuneVLine, nil, style)
			s.SetContent(right, row, tcell.RuneVLine, nil, style)
		}
	}
	if hasH && hasV {
		s.SetContent(left, top, tcell.RuneULCorner, nil, style)
		s.SetContent(right, top, tcell.RuneURCorner, nil, style)
		s.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
		s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
	}
}

// LogicalToTerminal converts a logical coordinate to a 0-based screen cell,
// offsets included.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + c.offsetCol, py/2 + c.offsetRow
}
