package fract

import "golang.org/x/image/math/fixed"

// Converts an int to a [Unit]. Values outside 26 bits overflow.
func FromInt(value int) Unit { return Unit(value << 6) }

// Converts a float64 to the closest [Unit], rounding up on ties. NaNs,
// infinities and overflows are not accounted for.
func FromFloat64(value float64) Unit {
	unit := Unit(value*64)
	if unit.ToFloat64() > value { unit -= 1 }
	if value - unit.ToFloat64() >= 1.0/128.0 { unit += 1 }
	return unit
}

// Same as [FromFloat64](), for the float32 advances and offsets
// stored in glyphs.
func FromFloat32(value float32) Unit { return FromFloat64(float64(value)) }

// Returns the unit as a [fixed.Int26_6]. Both share the same
// representation.
func (self Unit) ToFixed() fixed.Int26_6 { return fixed.Int26_6(self) }
