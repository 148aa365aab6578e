// Package ebitentarget lets btxt renderers draw on Ebitengine images.
package ebitentarget

import "image"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/pkg/errors"

import "github.com/tinne26/btxt/mix"

// A btxt.Target for an [*ebiten.Image]. Colors of any valid format are
// accepted, since the image is always RGBA.
type Target struct {
	image *ebiten.Image
	pixels []byte
}

// Creates a target for the given image.
func New(img *ebiten.Image) *Target {
	if img == nil { panic("nil target image") }
	return &Target{ image: img }
}

// Returns the underlying image.
func (self *Target) Image() *ebiten.Image { return self.image }

// Implements btxt.Target.
func (self *Target) Bounds() image.Rectangle { return self.image.Bounds() }

// Implements btxt.Target.
func (self *Target) FillRect(rect image.Rectangle, color mix.Color) error {
	if !color.Format.Valid() { return errors.Errorf("invalid color format %d", color.Format) }
	area := rect.Intersect(self.image.Bounds())
	if area.Empty() { return nil }
	self.image.SubImage(area).(*ebiten.Image).Fill(color)
	return nil
}

// Implements btxt.Target.
func (self *Target) FillContiguous(rect image.Rectangle, colors []mix.Color) error {
	if len(colors) != rect.Dx()*rect.Dy() {
		return errors.Errorf("%d colors for a %dx%d rect", len(colors), rect.Dx(), rect.Dy())
	}
	area := rect.Intersect(self.image.Bounds())
	if area.Empty() { return nil }

	var err error
	self.pixels, err = appendPixels(self.pixels[ : 0], rect, area, colors)
	if err != nil { return err }
	self.image.SubImage(area).(*ebiten.Image).ReplacePixels(self.pixels)
	return nil
}

// Appends the premultiplied RGBA bytes of the colors inside area, where
// colors cover rect row by row.
func appendPixels(buffer []byte, rect, area image.Rectangle, colors []mix.Color) ([]byte, error) {
	width := rect.Dx()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		row := (y - rect.Min.Y)*width
		for x := area.Min.X; x < area.Max.X; x++ {
			color := colors[row + x - rect.Min.X]
			if !color.Format.Valid() { return buffer, errors.Errorf("invalid color format %d", color.Format) }
			r, g, b, a := color.RGBA()
			buffer = append(buffer, uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8))
		}
	}
	return buffer, nil
}
