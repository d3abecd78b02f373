package object

import (
	"math"

	"github.com/tomz197/skyshooter/internal/physics"
)

// Body is the kinematic component shared by every entity.
// X and Y are the top-left corner of the bounding box.
type Body struct {
	X, Y          float64 // Position (top-left)
	Width, Height float64 // Size, never changed by motion
	VX, VY        float64 // Velocity (px/s)
	AX, AY        float64 // Acceleration for this frame only (px/s²)

	Rotation float64 // Radians, cosmetic only
	Alpha    float64 // 0..1, cosmetic only

	Dead bool // Marked for removal at the end of the frame
}

// NewBody creates a fully opaque body of the given size at (x, y).
func NewBody(x, y, width, height float64) Body {
	return Body{X: x, Y: y, Width: width, Height: height, Alpha: 1}
}

// Base returns the body itself so that embedding types satisfy Entity.
func (b *Body) Base() *Body {
	return b
}

// Integrate applies acceleration to velocity and velocity to position, then
// zeroes the acceleration so transient forces only act for one frame.
func (b *Body) Integrate(dt float64) {
	b.VX += b.AX * dt
	b.VY += b.AY * dt

	b.X += b.VX * dt
	b.Y += b.VY * dt

	b.AX = 0
	b.AY = 0
}

// Bounds returns the axis-aligned bounding box. Rotation is ignored.
func (b *Body) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// CollidesWith reports whether the two bounding boxes strictly overlap.
func (b *Body) CollidesWith(other *Body) bool {
	return b.Bounds().Overlaps(other.Bounds())
}

// ContainsPoint reports whether the point is inside the box, edges included.
func (b *Body) ContainsPoint(px, py float64) bool {
	return b.Bounds().Contains(px, py)
}

// DistanceTo returns the distance between the two box centers.
func (b *Body) DistanceTo(other *Body) float64 {
	a, o := b.Bounds(), other.Bounds()
	return physics.Distance(a.CenterX(), a.CenterY(), o.CenterX(), o.CenterY())
}

// AngleTo returns the angle from this box center to the other box center.
func (b *Body) AngleTo(other *Body) float64 {
	a, o := b.Bounds(), other.Bounds()
	return physics.Angle(a.CenterX(), a.CenterY(), o.CenterX(), o.CenterY())
}

// SetVelocityFromAngle sets the velocity to speed along angle.
func (b *Body) SetVelocityFromAngle(angle, speed float64) {
	b.VX = math.Cos(angle) * speed
	b.VY = math.Sin(angle) * speed
}

// Kill marks the body for removal.
func (b *Body) Kill() {
	b.Dead = true
}

// IsDead returns true if the body is marked for removal.
func (b *Body) IsDead() bool {
	return b.Dead
}

// Valid reports whether the body is in a legal state: finite position and
// velocity, non-negative size. A false result is a programming defect.
func (b *Body) Valid() bool {
	for _, v := range [...]float64{b.X, b.Y, b.VX, b.VY, b.Width, b.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Width >= 0 && b.Height >= 0
}
