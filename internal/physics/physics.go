// Package physics provides axis-aligned collision detection and distance utilities.
package physics

import "math"

// Rect is an axis-aligned bounding box. X and Y are the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Overlaps reports whether two rectangles overlap.
// The test is strict on all four axes: rectangles that only share an edge
// do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() &&
		r.Right() > o.Left() &&
		r.Top() < o.Bottom() &&
		r.Bottom() > o.Top()
}

// Contains reports whether the point lies inside the rectangle, edges included.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.Left() && px <= r.Right() &&
		py >= r.Top() && py <= r.Bottom()
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Angle returns the angle in radians of the vector from (x1,y1) to (x2,y2).
func Angle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}
