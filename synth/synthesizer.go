package synth

import "image"

import "golang.org/x/image/font/sfnt"
import "github.com/pkg/errors"

import "github.com/tinne26/btxt/grid"
import "github.com/tinne26/btxt/raster"

// Rendering state reused across glyphs. Not safe for concurrent use,
// each build worker owns one.
type synthesizer struct {
	rasterizer *raster.Rasterizer
	builder raster.Builder
	buffer sfnt.Buffer
}

func newSynthesizer() *synthesizer {
	return &synthesizer{ rasterizer: raster.NewRasterizer() }
}

// Renders the drawing at the given sub-pixel offset. The result has one
// mask per image of the cluster, and masks may be nil when there's
// nothing to draw. Mask bounds are given in em box coordinates, with
// y growing downwards from the top of the em box.
func (self Drawing) Render(metrics *grid.Metrics, offset grid.Point) ([]*image.Alpha, error) {
	return newSynthesizer().render(self, metrics, offset)
}

func (self *synthesizer) render(drawing Drawing, metrics *grid.Metrics, offset grid.Point) ([]*image.Alpha, error) {
	shape := &drawing.Shape
	switch shape.Family {
	case FamilyLines     : return self.renderLines(shape, metrics, offset)
	case FamilyDashes    : return self.renderDashes(shape, metrics, offset)
	case FamilyArc       : return self.renderArc(shape, metrics, offset)
	case FamilyDiagonals : return self.renderDiagonals(shape, metrics, offset)
	case FamilyBlocks    : return self.renderBlocks(shape, metrics, offset)
	case FamilyShade     : return self.renderShade(shape, metrics, offset)
	case FamilyInverse   : return self.renderInverse(shape, metrics, offset)
	case FamilyBraille   : return self.renderBraille(shape, metrics, offset)
	default:
		return nil, errors.Errorf("%s has no renderable shape", drawing)
	}
}
