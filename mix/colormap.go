package mix

import "strconv"

// Maximum number of colors in a [Colormap].
const MaxColormapSize = 256

// A linear gradient of colors between two endpoints, indexed by the
// quantized levels of a glyph image. Colormaps are plain values and
// can be rebuilt on every draw call without allocating.
type Colormap struct {
	size int
	colors [MaxColormapSize]Color
}

// Creates a colormap with the given number of colors going from start
// to end. Index 0 is always exactly start and index size - 1 exactly
// end. For the binary format the lower half of the indices map to
// start and the upper half to end.
//
// The function panics if size is outside [2, 256] or the two colors
// have different formats.
func Linear(start, end Color, size int) Colormap {
	if size < 2 || size > MaxColormapSize {
		panic("colormap size " + strconv.Itoa(size) + " outside [2, 256]")
	}
	if start.Format != end.Format { panic("colormap endpoints with different formats") }

	var colormap Colormap
	colormap.size = size
	if start.Format == Binary {
		for i := 0; i < size; i++ {
			if i < size/2 {
				colormap.colors[i] = start
			} else {
				colormap.colors[i] = end
			}
		}
		return colormap
	}

	channels := start.Format.Channels()
	for i := 0; i < size; i++ {
		color := Color{ Format: start.Format }
		for c := 0; c < channels; c++ {
			color.C[c] = convertChannel(uint8(i), start.C[c], end.C[c], size)
		}
		colormap.colors[i] = color
	}
	return colormap
}

// Returns the number of colors in the colormap.
func (self *Colormap) Size() int { return self.size }

// Returns the color mapped to the given level. Levels wrap around the
// colormap size.
func (self *Colormap) At(level uint8) Color {
	return self.colors[int(level) % self.size]
}

// Returns the start color.
func (self *Colormap) First() Color { return self.colors[0] }

// Returns the end color.
func (self *Colormap) Last() Color { return self.colors[self.size - 1] }

// Returns the colormap size used for images with the given bit depth.
func SizeForBitDepth(bitDepth int) int {
	if bitDepth < 1 || bitDepth > 8 { panic("bit depth " + strconv.Itoa(bitDepth) + " outside [1, 8]") }
	return 1 << bitDepth
}

// Maps an 8 bit coverage value to one of the 2^bitDepth levels,
// rounding to the nearest level.
func Quantize(coverage uint8, bitDepth int) uint8 {
	max := uint32(SizeForBitDepth(bitDepth) - 1)
	return uint8((uint32(coverage)*max + 127)/255)
}

// Quantizes the given coverage values in place.
func QuantizeData(data []uint8, bitDepth int) {
	if bitDepth == 8 { return }
	max := uint32(SizeForBitDepth(bitDepth) - 1)
	for i, coverage := range data {
		data[i] = uint8((uint32(coverage)*max + 127)/255)
	}
}

func convertChannel(value, start, end uint8, size int) uint8 {
	const Shift = 23
	const Half int32 = 1 << (Shift - 1)

	diff := int32(end) - int32(start)
	a := (diff << Shift)/int32(size - 1)
	b := int32(start) << Shift
	result := a*int32(value) + b + Half
	return uint8(result >> Shift)
}
