package synth

import "github.com/pkg/errors"

import "github.com/tinne26/btxt/glyph"
import "github.com/tinne26/btxt/grid"

// Renders the drawing for each sub-pixel position and quantizes the
// results to the given bit depth. Code fonts are rendered only once,
// as their glyphs are aligned to whole pixels, and glyphs that look the
// same at every position keep a single shared image.
//
// A drawing that renders as several images becomes a chain: the first
// glyph carries the advance, and the rest overlay it with ids that
// increase by one. Nothing is returned for sizes too small to draw.
func Scale(drawing Drawing, metrics *grid.Metrics, positions, bitDepth int) ([]glyph.Glyph, error) {
	return newSynthesizer().scale(drawing, metrics, positions, bitDepth)
}

func (self *synthesizer) scale(drawing Drawing, metrics *grid.Metrics, positions, bitDepth int) ([]glyph.Glyph, error) {
	if positions <= 0 { panic("positions <= 0") }
	if bitDepth < 1 || bitDepth > 8 { panic("bitDepth outside [1, 8]") }
	if !metrics.Halfwidth.Drawable() { return nil, nil }

	length := positions
	if metrics.Code { length = 1 }
	top := int(metrics.Top)

	var clusters [][]glyph.Image
	for i := 0; i < length; i++ {
		offset := grid.Pt(float64(i)/float64(length), 0)
		masks, err := self.render(drawing, metrics, offset)
		if err != nil { return nil, errors.Wrapf(err, "render %s at position %d", drawing, i) }
		if i == 0 {
			clusters = make([][]glyph.Image, len(masks))
		} else if len(masks) != len(clusters) {
			return nil, errors.Errorf("%s rendered %d images at position %d, expected %d", drawing, len(masks), i, len(clusters))
		}
		for k, mask := range masks {
			clusters[k] = append(clusters[k], glyph.FromAlpha(mask, top, bitDepth))
		}
	}
	for k := range clusters { clusters[k] = shareImages(clusters[k]) }
	return chainClusters(drawing.ID, clusters, metrics, positions, bitDepth), nil
}

// Returns a single image if all the given images are equal, or the
// images unchanged otherwise.
func shareImages(images []glyph.Image) []glyph.Image {
	if len(images) <= 1 { return images }
	for i := 1; i < len(images); i++ {
		if !images[i].Equal(&images[0]) { return images }
	}
	return []glyph.Image{ images[0] }
}

func chainClusters(id uint16, clusters [][]glyph.Image, metrics *grid.Metrics, positions, bitDepth int) []glyph.Glyph {
	if int(id) + len(clusters) - 1 > 0xFFFF { panic("glyph id overflow") }
	advance := float32(metrics.Width)
	glyphs := make([]glyph.Glyph, len(clusters))
	for k, images := range clusters {
		glyphs[k] = glyph.Glyph{
			ID: id + uint16(k),
			Positions: positions,
			BitDepth: bitDepth,
			Images: images,
		}
		if k == 0 {
			glyphs[k].AdvanceWidth = advance
		} else {
			glyphs[k].XOffset = -advance
		}
	}
	return glyphs
}
