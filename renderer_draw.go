package btxt

import "image"
import "math"

import "github.com/tinne26/btxt/fract"
import "github.com/tinne26/btxt/mix"

// Draws the given text with the current colors. The drawing starts with
// the pen at position.X, and position.Y is interpreted according to the
// baseline. The whole line height is painted, with the background color
// wherever there are no glyph pixels.
//
// Glyph pixels past the returned next position are remembered, so a
// following call to [Renderer.DrawString]() or [Renderer.DrawWhitespace]()
// at that position blends with them. If the target fails, the error is a
// [*TargetError] and the remembered state is left untouched.
func (self *Renderer) DrawString(target Target, text string, position image.Point, baseline Baseline) (image.Point, error) {
	if target == nil { panic("can't draw on nil Target") }
	pass := self.newDrawPass(target, position.Y, baseline)
	pending := self.carryover
	consumed := false

	lineStrip := image.Rect(position.X, pass.top, math.MaxInt32, pass.bottom)
	right, previousRight := position.X, position.X
	var previous, beforeOverlays *placedImage
	next, err := self.eachImage(text, fract.FromInt(position.X), pass.baseline, func(placed *placedImage) error {
		current := *placed
		box := current.bounds
		right = max(right, box.Max.X)
		if !current.overlay && beforeOverlays != nil {
			previous, beforeOverlays = beforeOverlays, nil
		}

		linePiece := leftOf(lineStrip, box)
		var clip image.Rectangle
		var err error
		switch {
		case previous != nil:
			clip, err = pass.drawAfterImage(previous, &current, linePiece, previousRight)
		case pending != nil && !consumed:
			consumed = true
			clip, err = pass.drawAfterCarryover(pending, &current, linePiece)
		default:
			err = pass.fill(linePiece, pass.background)
			clip = leftHalf(box)
		}
		if err != nil { return err }

		err = pass.drawImage(&current, clip, &pass.colormap)
		if err != nil { return err }
		column := yExtend(indentTo(clip, previousRight), pass.top, pass.bottom)
		err = pass.fillOutside(column, box)
		if err != nil { return err }

		if current.overlay && beforeOverlays == nil { beforeOverlays = previous }
		previous = &current
		previousRight = column.Max.X
		return nil
	})
	if err != nil { return position, err }

	// remaining right half of the last image
	if previous != nil {
		rightHalf := indentTo(previous.bounds, previousRight)
		err = pass.drawImage(previous, rightHalf, &pass.colormap)
		if err != nil { return position, err }
		err = pass.fillOutside(yExtend(rightHalf, pass.top, pass.bottom), previous.bounds)
		if err != nil { return position, err }
	}

	nextX := next.ToIntFloor()
	err = pass.fill(image.Rect(right, pass.top, max(nextX, right), pass.bottom), pass.background)
	if err != nil { return position, err }
	decorations, err := pass.drawDecorations(position.X, max(nextX, right) - position.X)
	if err != nil { return position, err }

	// commit
	if pending == nil || consumed {
		carry := &carryover{
			decorations: decorations,
			linePiece: image.Rect(nextX, pass.top, max(right, nextX), pass.bottom),
		}
		if previous != nil {
			carry.previous = &coloredImage{
				placedImage: *previous,
				textColor: pass.text,
				backgroundColor: pass.background,
			}
		}
		self.carryover = carry
	}
	return image.Pt(nextX, position.Y), nil
}

// Paints width pixels of an empty line, with decorations if enabled.
// Pixels of the last drawn glyph that spill into the area are kept,
// and reblended if the background color has changed.
func (self *Renderer) DrawWhitespace(target Target, width int, position image.Point, baseline Baseline) (image.Point, error) {
	if target == nil { panic("can't draw on nil Target") }
	if width < 0 { panic("negative whitespace width") }
	pass := self.newDrawPass(target, position.Y, baseline)

	linePiece := image.Rect(position.X, pass.top, position.X + width, pass.bottom)
	var err error
	if self.carryover != nil {
		err = pass.redrawWhitespace(self.carryover, linePiece)
	} else {
		err = pass.fill(linePiece, pass.background)
	}
	if err != nil { return position, err }
	decorations, err := pass.drawDecorations(position.X, width)
	if err != nil { return position, err }

	self.carryover = &carryover{ decorations: decorations, linePiece: linePiece }
	return image.Pt(position.X + width, position.Y), nil
}

// ---- draw pass ----

// The state shared by all the operations of a single draw call.
type drawPass struct {
	renderer *Renderer
	target Target
	text mix.Color
	background mix.Color
	colormap mix.Colormap
	levels int
	baseline int
	top int
	bottom int
}

func (self *Renderer) newDrawPass(target Target, y int, baseline Baseline) *drawPass {
	metrics := self.font.Metrics
	baselineY := y + metrics.YOffset(baseline)
	levels := self.levels()
	return &drawPass{
		renderer: self,
		target: target,
		text: self.textColor,
		background: self.backgroundColor,
		colormap: mix.Linear(self.backgroundColor, self.textColor, levels),
		levels: levels,
		baseline: baselineY,
		top: baselineY - metrics.Ascent,
		bottom: baselineY + metrics.Descent,
	}
}

// Draws what remains of the previous image around the current one,
// and the part of the current image that overlaps the previous one.
// Returns the area of the current image still to be drawn.
func (self *drawPass) drawAfterImage(previous, current *placedImage, linePiece image.Rectangle, previousRight int) (image.Rectangle, error) {
	previousBox, box := previous.bounds, current.bounds
	rightHalf := indentTo(previousBox, previousRight)
	err := self.fill(rightOf(linePiece, rightHalf), self.background)
	if err != nil { return image.Rectangle{}, err }

	left := yExtend(leftOf(rightHalf, box), self.top, self.bottom)
	right := yExtend(rightOf(rightHalf, box), self.top, self.bottom)
	middle := yExtend(rightOf(leftOf(rightHalf, right), left), self.top, self.bottom)
	for _, clip := range [4]image.Rectangle{left, right, above(middle, box), below(middle, box)} {
		err = self.drawImage(previous, clip, &self.colormap)
		if err != nil { return image.Rectangle{}, err }
		err = self.fillOutside(clip, previousBox)
		if err != nil { return image.Rectangle{}, err }
	}

	var area image.Rectangle
	if current.overlay {
		area = yReduce(box, self.top, self.bottom)
		err = self.drawImage(current, leftOf(area, previousBox), &self.colormap)
		if err != nil { return image.Rectangle{}, err }
	} else {
		area = leftHalf(box)
	}
	column := yExtend(previousBox, self.top, self.bottom)
	for _, clip := range [2]image.Rectangle{above(column, previousBox), below(column, previousBox)} {
		err = self.drawImage(current, clip, &self.colormap)
		if err != nil { return image.Rectangle{}, err }
	}
	err = self.drawMixed(current, &self.colormap, previous, &self.colormap)
	if err != nil { return image.Rectangle{}, err }
	return rightOf(area, previousBox), nil
}

// Like drawAfterImage, but for the first image of the call, which may
// overlap the carryover of a previous call.
func (self *drawPass) drawAfterCarryover(carry *carryover, current *placedImage, linePiece image.Rectangle) (image.Rectangle, error) {
	err := self.redrawWhitespace(carry, linePiece)
	if err != nil { return image.Rectangle{}, err }

	box := leftHalf(current.bounds)
	piece := yExtend(box, self.top, self.bottom)
	inter := piece.Intersect(carry.linePiece)
	if inter.Empty() { return box, nil }

	if carry.previous != nil {
		previous := &carry.previous.placedImage
		for _, clip := range [2]image.Rectangle{above(piece, previous.bounds), below(piece, previous.bounds)} {
			err = self.drawImage(current, clip, &self.colormap)
			if err != nil { return image.Rectangle{}, err }
		}
		colormap := mix.Linear(self.background, carry.previous.textColor, self.levels)
		for _, clip := range [2]image.Rectangle{above(inter, box), below(inter, box)} {
			err = self.drawImage(previous, clip, &colormap)
			if err != nil { return image.Rectangle{}, err }
			err = self.fillOutside(clip, previous.bounds)
			if err != nil { return image.Rectangle{}, err }
		}
		err = self.drawMixed(current, &self.colormap, previous, &colormap)
		if err != nil { return image.Rectangle{}, err }
	} else {
		err = self.drawImage(current, inter, &self.colormap)
		if err != nil { return image.Rectangle{}, err }
		err = self.fillOutside(inter, box)
		if err != nil { return image.Rectangle{}, err }
	}
	err = self.redrawDecorations(carry, inter)
	if err != nil { return image.Rectangle{}, err }

	// the carryover may come from a line with a different height
	column := yExtend(inter, self.top, self.bottom)
	for _, clip := range [2]image.Rectangle{above(column, inter), below(column, inter)} {
		err = self.drawImage(current, clip, &self.colormap)
		if err != nil { return image.Rectangle{}, err }
		err = self.fillOutside(clip, box)
		if err != nil { return image.Rectangle{}, err }
	}
	return rightOf(box, inter), nil
}

// Draws the enabled decorations over the given span of the line.
func (self *drawPass) drawDecorations(left, width int) ([]styledRect, error) {
	var decorations []styledRect
	metrics := &self.renderer.font.Underline
	for i, decoration := range [2]Decoration{self.renderer.underline, self.renderer.strikethrough} {
		if i == 1 { metrics = &self.renderer.font.Strikethrough }
		color, ok := self.renderer.decorationColor(decoration)
		if !ok || metrics.StrokeWidth <= 0 { continue }
		top := self.baseline - metrics.YOffset
		rect := image.Rect(left, top, left + max(width, 0), top + metrics.StrokeWidth)
		if err := self.fill(rect, color); err != nil { return nil, err }
		decorations = append(decorations, styledRect{ rect: rect, color: color })
	}
	return decorations, nil
}

// ---- target operations ----

func (self *drawPass) fill(rect image.Rectangle, color mix.Color) error {
	if rect.Empty() { return nil }
	err := self.target.FillRect(rect, color)
	if err != nil { return &TargetError{ Op: "FillRect", Rect: rect, Err: err } }
	return nil
}

// Fills the parts of area above and below box with the background color.
func (self *drawPass) fillOutside(area, box image.Rectangle) error {
	err := self.fill(above(area, box), self.background)
	if err != nil { return err }
	return self.fill(below(area, box), self.background)
}

// Draws the part of the image inside clip.
func (self *drawPass) drawImage(img *placedImage, clip image.Rectangle, colormap *mix.Colormap) error {
	if img.image == nil { return nil }
	area := clip.Intersect(img.bounds)
	if area.Empty() { return nil }

	colors := self.renderer.colors(area.Dx()*area.Dy())
	i := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			colors[i] = colormap.At(img.level(x, y))
			i += 1
		}
	}
	return self.fillContiguous(area, colors)
}

// Draws the overlap of two images by the weighted average of their
// colors.
func (self *drawPass) drawMixed(img *placedImage, colormap *mix.Colormap, other *placedImage, otherColormap *mix.Colormap) error {
	if img.image == nil || other.image == nil { return nil }
	area := img.bounds.Intersect(other.bounds)
	if area.Empty() { return nil }

	start, end := colormap.First(), colormap.Last()
	otherStart, otherEnd := otherColormap.First(), otherColormap.Last()
	colors := self.renderer.colors(area.Dx()*area.Dy())
	i := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			a := colormap.At(img.level(x, y))
			b := otherColormap.At(other.level(x, y))
			colors[i] = mix.WeightedAvg(a, b, start, end, otherStart, otherEnd)
			i += 1
		}
	}
	return self.fillContiguous(area, colors)
}

func (self *drawPass) fillContiguous(rect image.Rectangle, colors []mix.Color) error {
	err := self.target.FillContiguous(rect, colors)
	if err != nil { return &TargetError{ Op: "FillContiguous", Rect: rect, Err: err } }
	return nil
}

// Returns a reusable color buffer with the given length.
func (self *Renderer) colors(n int) []mix.Color {
	if cap(self.colorBuffer) < n { self.colorBuffer = make([]mix.Color, n) }
	return self.colorBuffer[ : n]
}
