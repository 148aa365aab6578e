package fract

import "golang.org/x/image/math/fixed"

// A pair of [Unit] coordinates.
type Point struct {
	X Unit
	Y Unit
}

// Creates a point from a pair of float64s, rounding up on ties.
func Float64sToPoint(x, y float64) Point {
	return Point{ X: FromFloat64(x), Y: FromFloat64(y) }
}

// Returns the point as a [fixed.Point26_6], the coordinate type of
// sfnt segments.
func (self Point) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{ X: self.X.ToFixed(), Y: self.Y.ToFixed() }
}
