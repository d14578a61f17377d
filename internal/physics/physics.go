// Package physics provides hitbox overlap tests and a broad-phase grid.
package physics

import "math"

// ToleranceFactor is the fraction of the smallest side trimmed from every
// edge of both hitboxes before testing overlap.
const ToleranceFactor = 0.1

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Shrink returns r with d removed from each of its four sides.
func (r Rect) Shrink(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Collides reports whether a and b overlap once both are shrunk by
// ToleranceFactor of the smallest side across both rectangles.
// The result does not depend on argument order.
func Collides(a, b Rect) bool {
	tol := math.Min(math.Min(a.W, a.H), math.Min(b.W, b.H)) * ToleranceFactor
	return overlaps(a.Shrink(tol), b.Shrink(tol))
}

// CollidesOneSided is the asymmetric variant: the tolerance is derived from
// a's dimensions only, so Collides(a, b) and Collides(b, a) may disagree
// for rectangles of different sizes.
func CollidesOneSided(a, b Rect) bool {
	tol := math.Min(a.W, a.H) * ToleranceFactor
	return overlaps(a.Shrink(tol), b.Shrink(tol))
}

// overlaps treats touching edges as overlapping.
func overlaps(a, b Rect) bool {
	return !(a.X > b.X+b.W ||
		a.X+a.W < b.X ||
		a.Y > b.Y+b.H ||
		a.Y+a.H < b.Y)
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
