package mix

import "image/color"
import "strconv"

// A color in a specific [Format]. Channel values are raw, in the range
// given by [Format.MaxChannel](). Gray and binary formats store their
// value in C[0].
//
// Color implements [color.Color], so it can be handed directly to
// image/draw based targets.
type Color struct {
	Format Format
	C [3]uint8
}

// Creates a gray (or binary) color. The function panics if the format
// is not a gray format or the value is out of range.
func Luma(format Format, value uint8) Color {
	if format.Channels() != 1 { panic("mix.Luma on non-gray format " + format.String()) }
	if value > format.MaxChannel()[0] {
		panic("luma " + strconv.Itoa(int(value)) + " out of range for " + format.String())
	}
	return Color{ Format: format, C: [3]uint8{value, 0, 0} }
}

// Creates an rgb color. The function panics if the format is not an
// rgb format or any channel is out of range.
func RGB(format Format, r, g, b uint8) Color {
	if format.Channels() != 3 { panic("mix.RGB on non-rgb format " + format.String()) }
	max := format.MaxChannel()
	if r > max[0] || g > max[1] || b > max[2] {
		panic("rgb channels out of range for " + format.String())
	}
	return Color{ Format: format, C: [3]uint8{r, g, b} }
}

// Returns the default color of the format: black, or "off" for the
// binary format. Renderers use it as the default background color,
// and its inverse as the default text color.
func Default(format Format) Color {
	if !format.Valid() { panic("invalid mix.Format " + strconv.Itoa(int(format))) }
	return Color{ Format: format }
}

// Converts any color into the given format, rounding each channel to
// the nearest representable value. Gray formats use the luminance of
// the color, and the binary format is "on" when the luminance reaches
// the midpoint.
func FromRGBA(format Format, c color.Color) Color {
	max := format.MaxChannel()
	switch format {
	case Binary:
		gray := color.Gray16Model.Convert(c).(color.Gray16)
		if gray.Y >= 0x8000 { return Color{ Format: Binary, C: [3]uint8{1, 0, 0} } }
		return Color{ Format: Binary }
	case Gray2, Gray4, Gray8:
		gray := color.Gray16Model.Convert(c).(color.Gray16)
		return Color{ Format: format, C: [3]uint8{ from16(uint32(gray.Y), max[0]), 0, 0 } }
	default:
		r, g, b, _ := c.RGBA()
		return Color{
			Format: format,
			C: [3]uint8{ from16(r, max[0]), from16(g, max[1]), from16(b, max[2]) },
		}
	}
}

// Implements [color.Color]. Colors are always opaque.
func (self Color) RGBA() (r, g, b, a uint32) {
	max := self.Format.MaxChannel()
	if self.Format.Channels() == 1 {
		y := to16(self.C[0], max[0])
		return y, y, y, 0xFFFF
	}
	return to16(self.C[0], max[0]), to16(self.C[1], max[1]), to16(self.C[2], max[2]), 0xFFFF
}

// Packs the color into the low bits of an uint32 following the
// channel order of its format, from the most significant channel
// to the least significant one.
func (self Color) Pack() uint32 {
	switch self.Format {
	case Binary, Gray2, Gray4, Gray8:
		return uint32(self.C[0])
	default:
		first, second, third := self.C[0], self.C[1], self.C[2]
		switch self.Format {
		case BGR555, BGR565, BGR666, BGR888:
			first, third = third, first
		}
		max := self.Format.MaxChannel()
		secondBits := bitLen(max[1])
		thirdBits  := bitLen(max[2])
		return uint32(first) << (secondBits + thirdBits) | uint32(second) << thirdBits | uint32(third)
	}
}

func (self Color) String() string {
	if self.Format.Channels() == 1 {
		return self.Format.String() + "(" + strconv.Itoa(int(self.C[0])) + ")"
	}
	return self.Format.String() + "(" + strconv.Itoa(int(self.C[0])) + ", " +
		strconv.Itoa(int(self.C[1])) + ", " + strconv.Itoa(int(self.C[2])) + ")"
}

func to16(value, max uint8) uint32 {
	if max == 0 { return 0 }
	return (uint32(value)*0xFFFF + uint32(max)/2)/uint32(max)
}

func from16(value uint32, max uint8) uint8 {
	return uint8((value*uint32(max) + 0x7FFF)/0xFFFF)
}

func bitLen(max uint8) int {
	n := 0
	for max > 0 { n += 1 ; max >>= 1 }
	return n
}
