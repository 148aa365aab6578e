package btxt

import "image"
import "image/draw"

import "github.com/pkg/errors"

import "github.com/tinne26/btxt/mix"

// A pixel-addressable drawing surface. Renderers only ever fill
// rectangles, either with a single color or with one color per pixel.
//
// Implementations must clip to their own bounds: renderers may pass
// rectangles that are partially or fully outside of them.
type Target interface {
	Bounds() image.Rectangle

	// Fills the rectangle with a solid color.
	FillRect(rect image.Rectangle, color mix.Color) error

	// Fills the rectangle with the given colors, row by row. len(colors)
	// is always rect.Dx()*rect.Dy().
	FillContiguous(rect image.Rectangle, colors []mix.Color) error
}

// Returned by draw operations when the target fails. The renderer
// state is left as it was before the failing call.
type TargetError struct {
	Op string // "FillRect" or "FillContiguous"
	Rect image.Rectangle
	Err error
}

func (self *TargetError) Error() string {
	return "btxt: target " + self.Op + " " + self.Rect.String() + ": " + self.Err.Error()
}

// Unwrap supports the standard errors.Is and errors.As functions.
func (self *TargetError) Unwrap() error { return self.Err }

// Cause supports errors.Cause from github.com/pkg/errors.
func (self *TargetError) Cause() error { return self.Err }

// A [Target] for any [draw.Image], like [image.RGBA] or [image.Gray].
type DrawImageTarget struct {
	image draw.Image
	format mix.Format
}

// Creates a target for the given image. The format is the one used
// by the renderers drawing on it. The function panics if the format
// is invalid.
func NewDrawImageTarget(img draw.Image, format mix.Format) *DrawImageTarget {
	if img == nil { panic("nil target image") }
	if !format.Valid() { panic("invalid target format") }
	return &DrawImageTarget{ image: img, format: format }
}

// Returns the underlying image.
func (self *DrawImageTarget) Image() draw.Image { return self.image }

// Returns the color format of the target.
func (self *DrawImageTarget) Format() mix.Format { return self.format }

// Returns the color of the given pixel, converted to the target format.
func (self *DrawImageTarget) At(x, y int) mix.Color {
	return mix.FromRGBA(self.format, self.image.At(x, y))
}

// Implements [Target].
func (self *DrawImageTarget) Bounds() image.Rectangle { return self.image.Bounds() }

// Implements [Target].
func (self *DrawImageTarget) FillRect(rect image.Rectangle, color mix.Color) error {
	if color.Format != self.format {
		return errors.Errorf("color format %s, expected %s", color.Format, self.format)
	}
	area := rect.Intersect(self.image.Bounds())
	if area.Empty() { return nil }
	draw.Draw(self.image, area, image.NewUniform(color), image.Point{}, draw.Src)
	return nil
}

// Implements [Target].
func (self *DrawImageTarget) FillContiguous(rect image.Rectangle, colors []mix.Color) error {
	if len(colors) != rect.Dx()*rect.Dy() {
		return errors.Errorf("%d colors for a %dx%d rect", len(colors), rect.Dx(), rect.Dy())
	}
	bounds := self.image.Bounds()
	i := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if (image.Point{x, y}).In(bounds) {
				if colors[i].Format != self.format {
					return errors.Errorf("color format %s, expected %s", colors[i].Format, self.format)
				}
				self.image.Set(x, y, colors[i])
			}
			i += 1
		}
	}
	return nil
}
