package btxt

import "image"
import "unicode/utf8"

import "golang.org/x/text/unicode/norm"

import "github.com/tinne26/btxt/charmap"
import "github.com/tinne26/btxt/fract"
import "github.com/tinne26/btxt/glyph"

// A glyph image placed on the target.
type placedImage struct {
	image *glyph.Image // nil for glyphs without pixels
	bounds image.Rectangle
	overlay bool // continuation glyph of a chain
}

func (self *placedImage) level(x, y int) uint8 {
	return self.image.At(x - self.bounds.Min.X, y - self.bounds.Min.Y)
}

// Walks the images of the given text, with the pen starting at x and
// the baseline at y. The first glyph of each entry is visited at the pen
// position, and the rest of its chain right after advancing past the
// entry, so overlays are always visited after the images they may be
// drawn over. Glyphs without images are still visited, with an empty
// rectangle at the pen position.
//
// The function returns the final pen position.
func (self *Renderer) eachImage(text string, x fract.Unit, y int, fn func(*placedImage) error) (fract.Unit, error) {
	remaining := norm.NFC.String(text)

	var previous *charmap.Entry
	var placed placedImage
	for {
		var entry *charmap.Entry
		nextKey := ""
		if remaining != "" {
			entry = self.font.Charmap.Get(remaining)
			nextKey = entry.Key
		}
		if previous != nil {
			x += fract.FromFloat32(previous.AdvanceWidthTo(nextKey))
			if previous.Glyph != nil {
				for chained := previous.Glyph.Next; chained != nil; chained = chained.Next {
					placed = placeOverlay(chained, x, y)
					if err := fn(&placed); err != nil { return x, err }
				}
			}
		}
		if entry == nil { return x, nil }

		placed = placeHead(entry, x, y)
		if err := fn(&placed); err != nil { return x, err }
		previous = entry
		remaining = skipRunes(remaining, entry.AdvanceChars)
	}
}

func placeHead(entry *charmap.Entry, x fract.Unit, y int) placedImage {
	if entry.Glyph == nil { return placeEmpty(x, y, false) }
	img := entry.Glyph.ImageAt(x)
	if img == nil || img.Empty() { return placeEmpty(x, y, false) }
	return placedImage{ image: img, bounds: img.Bounds(x.ToIntFloor(), y) }
}

func placeOverlay(overlay *glyph.Glyph, x fract.Unit, y int) placedImage {
	x += fract.FromFloat32(overlay.XOffset)
	y -= fract.FromFloat32(overlay.YOffset).ToIntFloor()
	img := overlay.ImageAt(x)
	if img == nil || img.Empty() { return placeEmpty(x, y, true) }
	return placedImage{ image: img, bounds: img.Bounds(x.ToIntFloor(), y), overlay: true }
}

func placeEmpty(x fract.Unit, y int, overlay bool) placedImage {
	pt := image.Pt(x.ToIntFloor(), y)
	return placedImage{ bounds: image.Rectangle{ pt, pt }, overlay: overlay }
}

func skipRunes(text string, n int) string {
	for n > 0 && text != "" {
		_, size := utf8.DecodeRuneInString(text)
		text = text[size : ]
		n -= 1
	}
	return text
}
