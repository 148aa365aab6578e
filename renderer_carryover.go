package btxt

import "image"

import "github.com/tinne26/btxt/mix"

// A glyph image together with the colors it was drawn with.
type coloredImage struct {
	placedImage
	textColor mix.Color
	backgroundColor mix.Color
}

// A filled rectangle.
type styledRect struct {
	rect image.Rectangle
	color mix.Color
}

// What the last draw call left behind on the target past its next
// position: the last glyph image, if any, the decorations and the
// area of the line from the next position to the right edge of the
// drawn content.
type carryover struct {
	previous *coloredImage
	decorations []styledRect
	linePiece image.Rectangle
}

// Draws the part of linePiece that overlaps the carryover so that the
// pixels of the carryover glyph are kept, and fills the rest of
// linePiece with the background color.
func (self *drawPass) redrawWhitespace(carry *carryover, linePiece image.Rectangle) error {
	inter := linePiece.Intersect(carry.linePiece)
	if !inter.Empty() {
		if carry.previous != nil {
			previous := carry.previous
			if previous.backgroundColor != self.background {
				colormap := mix.Linear(self.background, previous.textColor, self.levels)
				err := self.drawImage(&previous.placedImage, inter, &colormap)
				if err != nil { return err }
				err = self.fillOutside(inter, previous.bounds)
				if err != nil { return err }
			}
		} else {
			err := self.fill(inter, self.background)
			if err != nil { return err }
		}
		err := self.redrawDecorations(carry, inter)
		if err != nil { return err }
	}

	left := leftOf(linePiece, carry.linePiece)
	right := rightOf(linePiece, carry.linePiece)
	middle := rightOf(leftOf(linePiece, right), left)
	for _, area := range [4]image.Rectangle{left, right, above(middle, carry.linePiece), below(middle, carry.linePiece)} {
		if err := self.fill(area, self.background); err != nil { return err }
	}
	return nil
}

func (self *drawPass) redrawDecorations(carry *carryover, area image.Rectangle) error {
	for _, decoration := range carry.decorations {
		err := self.fill(decoration.rect.Intersect(area), decoration.color)
		if err != nil { return err }
	}
	return nil
}
