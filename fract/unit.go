package fract

// A 26.6 fixed point value, where 64 units make one pixel. The pen
// position advances in units, so fractional advance widths add up
// exactly along a line.
type Unit int32

// One pixel.
const One Unit = 64

// Returns the fractional part relative to the floor, in [0, 63].
// Negative values wrap: -0.25 has a fractional part of 0.75.
func (self Unit) Fract() Unit { return self & 0x3F }

// Returns which of n equally sized sub-pixel slots the fractional
// part falls into. The result is in [0, n).
func (self Unit) Slot(n int) int {
	if n <= 0 { panic("n <= 0") }
	return (int(self.Fract())*n) >> 6
}

func (self Unit) ToFloat64() float64 { return float64(self)/64.0 }

// Returns the largest whole pixel not above the value.
func (self Unit) ToIntFloor() int { return int(self) >> 6 }
