// Package glyph defines the bitmap glyph data model shared by the
// synthesizer, the charmap and the renderer.
package glyph

import "bytes"
import "image"
import "strconv"

import "github.com/tinne26/btxt/fract"
import "github.com/tinne26/btxt/mix"

// Fixed overhead per image and per glyph used by ByteSize methods.
const (
	imageOverhead = 48
	glyphOverhead = 64
)

// A quantized glyph bitmap. Data holds one level per pixel, row-major,
// with levels in [0, 2^bitDepth) for the bit depth of the glyph that
// owns the image. Images are immutable once created.
type Image struct {
	Left int // offset from the pen x position to the left edge
	Top int // pixels from the top edge to the baseline
	Width int
	Height int
	Data []uint8
}

// Creates an image from a coverage mask, quantizing it to the given bit
// depth. top is the y coordinate of the baseline in mask coordinates.
// A nil mask results in an empty image.
func FromAlpha(mask *image.Alpha, top int, bitDepth int) Image {
	if mask == nil { return Image{} }
	bounds := mask.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	data := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		offset := mask.PixOffset(bounds.Min.X, bounds.Min.Y + y)
		copy(data[y*width : (y + 1)*width], mask.Pix[offset : offset + width])
	}
	mix.QuantizeData(data, bitDepth)
	return Image{
		Left: bounds.Min.X,
		Top: top - bounds.Min.Y,
		Width: width,
		Height: height,
		Data: data,
	}
}

// Returns whether the image has no pixels.
func (self *Image) Empty() bool { return self.Width == 0 || self.Height == 0 }

// Returns the level of the given pixel, in image coordinates.
func (self *Image) At(x, y int) uint8 {
	return self.Data[y*self.Width + x]
}

// Returns the rectangle covered by the image when drawn with the pen
// at the given x and baseline y.
func (self *Image) Bounds(x, baselineY int) image.Rectangle {
	minX, minY := x + self.Left, baselineY - self.Top
	return image.Rect(minX, minY, minX + self.Width, minY + self.Height)
}

// Returns whether both images have the same placement and levels.
func (self *Image) Equal(other *Image) bool {
	return self.Left == other.Left && self.Top == other.Top &&
		self.Width == other.Width && self.Height == other.Height &&
		bytes.Equal(self.Data, other.Data)
}

// Returns an approximation of the memory used by the image.
func (self *Image) ByteSize() int { return len(self.Data) + imageOverhead }

// A glyph, optionally chained to further glyphs drawn on top of it.
//
// The first glyph of a chain has zero offsets and the real advance
// width. Continuation glyphs have zero advance width and are positioned
// with XOffset and YOffset relative to the pen position after advancing
// past the first glyph.
type Glyph struct {
	ID uint16
	XOffset float32
	YOffset float32
	Positions int // number of horizontal sub-pixel positions
	BitDepth int
	AdvanceWidth float32

	// One image per sub-pixel position, or a single image shared
	// by all the positions. Empty for glyphs with nothing to draw.
	Images []Image

	Next *Glyph
}

// Returns the image for the given pen x position, or nil if the glyph
// has no images. The image index is the sub-pixel slot of x, wrapped
// around the number of images.
func (self *Glyph) ImageAt(x fract.Unit) *Image {
	if len(self.Images) == 0 { return nil }
	positions := self.Positions
	if positions <= 0 { positions = 1 }
	return &self.Images[x.Slot(positions) % len(self.Images)]
}

// Returns the number of glyphs in the chain starting at this glyph.
func (self *Glyph) ChainLen() int {
	n := 0
	for glyph := self; glyph != nil; glyph = glyph.Next { n += 1 }
	return n
}

// Returns an approximation of the memory used by the whole chain.
func (self *Glyph) ByteSize() int {
	size := 0
	for glyph := self; glyph != nil; glyph = glyph.Next {
		size += glyphOverhead
		for i := range glyph.Images {
			size += glyph.Images[i].ByteSize()
		}
	}
	return size
}

// Links the given glyphs into a chain and returns its head, or nil
// if the slice is empty.
func Link(glyphs []Glyph) *Glyph {
	if len(glyphs) == 0 { return nil }
	chain := make([]Glyph, len(glyphs))
	copy(chain, glyphs)
	for i := 0; i < len(chain) - 1; i++ {
		chain[i].Next = &chain[i + 1]
	}
	chain[len(chain) - 1].Next = nil
	return &chain[0]
}

func (self *Glyph) String() string {
	return "glyph#" + strconv.Itoa(int(self.ID)) + " (" + strconv.Itoa(len(self.Images)) + " images)"
}
