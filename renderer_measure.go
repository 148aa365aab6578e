package btxt

import "image"

import "github.com/tinne26/btxt/fract"

// The result of [Renderer.MeasureString]().
type TextMetrics struct {
	// Covers the line height, from the starting x position to the right
	// edge of the rightmost glyph image.
	BoundingBox image.Rectangle

	// The position a following draw call should continue from.
	NextPosition image.Point
}

// Returns the area that [Renderer.DrawString]() would paint for the
// given text and the position where it would end. Measuring doesn't
// touch the carryover.
func (self *Renderer) MeasureString(text string, position image.Point, baseline Baseline) TextMetrics {
	metrics := self.font.Metrics
	y := position.Y + metrics.YOffset(baseline)
	right := position.X
	next, _ := self.eachImage(text, fract.FromInt(position.X), y, func(placed *placedImage) error {
		right = max(right, placed.bounds.Max.X)
		return nil
	})
	return TextMetrics{
		BoundingBox: image.Rect(position.X, y - metrics.Ascent, right, y + metrics.Descent),
		NextPosition: image.Pt(next.ToIntFloor(), position.Y),
	}
}

// Returns the width of the given text, in pixels: the distance from
// the starting position to the next one.
func (self *Renderer) Advance(text string) int {
	next, _ := self.eachImage(text, 0, 0, func(*placedImage) error { return nil })
	return next.ToIntFloor()
}
