// Package draw renders the simulation onto a tcell screen using colored
// half-block pixels.
package draw

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Maximum render area in terminal cells. 160x60 cells give 160x120 square
// pixels, the 4:3 aspect of the world.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Fit clamps a terminal size to the maximum render area and returns the
// offsets that center it.
func Fit(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, MaxTermWidth)
	renderHeight = min(termHeight, MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// DrawText writes str starting at a 0-based cell and returns the column
// after the last rune.
func DrawText(s tcell.Screen, col, row int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(col, row, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	return col
}

// DrawCentered writes str centered on a row inside the given width.
func DrawCentered(s tcell.Screen, offsetCol, width, row int, str string, style tcell.Style) {
	col := offsetCol + (width-runewidth.StringWidth(str))/2
	DrawText(s, max(col, offsetCol), row, str, style)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
