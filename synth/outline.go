package synth

import "math"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "github.com/pkg/errors"

import "github.com/tinne26/btxt/glyph"
import "github.com/tinne26/btxt/grid"
import "github.com/tinne26/btxt/internal/logger"
import "github.com/tinne26/btxt/raster"

// Base id for glyphs rasterized from outlines. The id of each glyph is
// this base plus its index in the font.
const BaseIDOutline uint16 = 4096

// Rasterizes glyphs from a vector font for the runes that don't have
// a procedural drawing. Sources can be shared by concurrent builds.
type OutlineSource struct {
	font *sfnt.Font
}

// Creates an outline source for the given font. The font can be
// obtained with [font.ParseFromBytes]() or similar functions.
func NewOutlineSource(font *sfnt.Font) *OutlineSource {
	if font == nil { panic("nil font") }
	return &OutlineSource{ font: font }
}

// Returns the underlying font.
func (self *OutlineSource) Font() *sfnt.Font { return self.font }

// Returns whether the font has a glyph for the given rune.
func (self *OutlineSource) Has(buffer *sfnt.Buffer, r rune) bool {
	index, err := self.font.GlyphIndex(buffer, r)
	return err == nil && index != 0
}

// Returns the horizontal kerning between two runes at the given size,
// in pixels. Fonts without kerning information return zero.
func (self *OutlineSource) Kern(buffer *sfnt.Buffer, a, b rune, pixelsPerEm float64) (float32, error) {
	indexA, err := self.font.GlyphIndex(buffer, a)
	if err != nil || indexA == 0 { return 0, err }
	indexB, err := self.font.GlyphIndex(buffer, b)
	if err != nil || indexB == 0 { return 0, err }
	kern, err := self.font.Kern(buffer, indexA, indexB, toFixed(pixelsPerEm), font.HintingNone)
	if errors.Is(err, sfnt.ErrNotFound) { return 0, nil }
	if err != nil { return 0, errors.Wrapf(err, "kern %q %q", a, b) }
	return float32(kern)/64, nil
}

func toFixed(value float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(value*64))
}

// Rasterizes the outline of the given rune once per sub-pixel position.
// The segments are loaded once and moved to each position, as they stay
// valid until the buffer is used again.
// Returns no glyphs if the font doesn't have the rune. Code fonts use
// the halfwidth as their advance so outline glyphs line up with the
// procedural ones.
func (self *synthesizer) outline(source *OutlineSource, r rune, metrics *grid.Metrics, config *Config) ([]glyph.Glyph, error) {
	if !metrics.Halfwidth.Drawable() { return nil, nil }
	sfntFont := source.font
	index, err := sfntFont.GlyphIndex(&self.buffer, r)
	if err != nil { return nil, errors.Wrapf(err, "glyph index for %q", r) }
	if index == 0 {
		logger.Get().Debug("rune missing from outline font", "rune", string(r))
		return nil, nil
	}
	if int(BaseIDOutline) + int(index) > 0xFFFF { panic("outline glyph id overflow") }

	ppem := toFixed(config.PixelsPerEm)
	advance := float32(metrics.Width)
	if !metrics.Code {
		fixedAdvance, err := sfntFont.GlyphAdvance(&self.buffer, index, ppem, font.HintingNone)
		if err != nil { return nil, errors.Wrapf(err, "advance for %q", r) }
		advance = float32(fixedAdvance)/64
	}

	length := config.Positions
	if metrics.Code { length = 1 }
	images := make([]glyph.Image, 0, length)
	top := int(metrics.Top)
	segments, err := sfntFont.LoadGlyph(&self.buffer, index, ppem, nil)
	if err != nil { return nil, errors.Wrapf(err, "load glyph %q", r) }
	for i := 0; i < length; i++ {
		dx := fixed.Int26_6(i*64/length)
		self.translate(segments, fixed.Point26_6{ X: dx, Y: fixed.I(top) })
		mask, err := self.rasterizer.Render(self.builder.Segments(), raster.Fill{})
		if err != nil { return nil, errors.Wrapf(err, "rasterize %q", r) }
		images = append(images, glyph.FromAlpha(mask, top, config.BitDepth))
	}

	return []glyph.Glyph{{
		ID: BaseIDOutline + uint16(index),
		Positions: config.Positions,
		BitDepth: config.BitDepth,
		AdvanceWidth: advance,
		Images: shareImages(images),
	}}, nil
}

// Copies the segments into the builder, moved by the given offset.
// Loaded segments have the origin at the baseline.
func (self *synthesizer) translate(segments sfnt.Segments, offset fixed.Point26_6) {
	self.builder.Reset()
	for _, segment := range segments {
		args := segment.Args
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := point(args[0].Add(offset))
			self.builder.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := point(args[0].Add(offset))
			self.builder.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := point(args[0].Add(offset))
			x, y := point(args[1].Add(offset))
			self.builder.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			ax, ay := point(args[0].Add(offset))
			bx, by := point(args[1].Add(offset))
			x, y := point(args[2].Add(offset))
			self.builder.CubeTo(ax, ay, bx, by, x, y)
		}
	}
}

func point(p fixed.Point26_6) (float64, float64) {
	return float64(p.X)/64, float64(p.Y)/64
}
