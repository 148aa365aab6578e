package synth

import "image"
import "math"

import "github.com/tinne26/btxt/grid"
import "github.com/tinne26/btxt/raster"

// Level of the shaded region of inverse shades.
const inverseShadeLevel = 31

// Braille cells are visited in reading order, two columns by four
// rows. These are the dot bits for each cell.
var brailleDotBits = [8]uint8{ 0, 3, 1, 4, 2, 5, 6, 7 }

func (self *synthesizer) traceCells(cells []Cell, blockGrid grid.Grid, offset grid.Point) {
	self.builder.Reset()
	for _, cell := range cells {
		x0 := blockGrid.MapIndex(int(cell.Cols), int(cell.X0))
		x1 := blockGrid.MapIndex(int(cell.Cols), int(cell.X1))
		y0 := blockGrid.MapIndex(int(cell.Rows), int(cell.Y0))
		y1 := blockGrid.MapIndex(int(cell.Rows), int(cell.Y1))
		min := blockGrid.At(y0, x0).Add(offset)
		max := blockGrid.At(y1, x1).Add(offset)
		self.builder.Rect(min.X, min.Y, max.X, max.Y)
	}
}

func (self *synthesizer) fillCells(cells []Cell, metrics *grid.Metrics, offset grid.Point) (*image.Alpha, error) {
	self.traceCells(cells, metrics.Block, offset)
	return self.rasterizer.Render(self.builder.Segments(), raster.Fill{})
}

func (self *synthesizer) renderBlocks(shape *Shape, metrics *grid.Metrics, offset grid.Point) ([]*image.Alpha, error) {
	mask, err := self.fillCells(shape.Cells, metrics, offset)
	if err != nil { return nil, err }
	return []*image.Alpha{ mask }, nil
}

func (self *synthesizer) renderShade(shape *Shape, metrics *grid.Metrics, offset grid.Point) ([]*image.Alpha, error) {
	mask, err := self.fillCells(shape.Cells, metrics, offset)
	if err != nil { return nil, err }
	scaleCoverage(mask, shape.Level)
	return []*image.Alpha{ mask }, nil
}

// Renders a full block and subtracts a lightly shaded region from it.
func (self *synthesizer) renderInverse(shape *Shape, metrics *grid.Metrics, offset grid.Point) ([]*image.Alpha, error) {
	mask, err := self.fillCells([]Cell{ fullBlock }, metrics, offset)
	if err != nil || mask == nil { return []*image.Alpha{ mask }, err }
	shaded, err := self.fillCells(shape.Cells, metrics, offset)
	if err != nil { return nil, err }
	if shaded == nil { return []*image.Alpha{ mask }, nil }
	scaleCoverage(shaded, inverseShadeLevel)

	area := shaded.Bounds().Intersect(mask.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			value, sub := mask.Pix[mask.PixOffset(x, y)], shaded.Pix[shaded.PixOffset(x, y)]
			if sub > value { sub = value }
			mask.Pix[mask.PixOffset(x, y)] = value - sub
		}
	}
	return []*image.Alpha{ mask }, nil
}

// Renders the set dots as circles, and optionally the unset ones as
// small squares.
func (self *synthesizer) renderBraille(shape *Shape, metrics *grid.Metrics, offset grid.Point) ([]*image.Alpha, error) {
	shapeGrid := metrics.Shape
	var centers [8]grid.Point
	var sumX, sumY float64
	for index := 0; index < 8; index++ {
		x0, x1 := shapeGrid.MapIndex(2, index % 2), shapeGrid.MapIndex(2, index % 2 + 1)
		y0, y1 := shapeGrid.MapIndex(4, index / 2), shapeGrid.MapIndex(4, index / 2 + 1)
		center := shapeGrid.At((y0 + y1)/2, (x0 + x1)/2).Add(offset)
		corner := shapeGrid.At(y0, x0).Add(offset)
		sumX += math.Abs(center.X - corner.X)
		sumY += math.Abs(center.Y - corner.Y)
		centers[index] = center
	}
	radius := math.Min(sumX/8, sumY/8)
	radius = 2*math.Max(radius, 1)/3

	self.builder.Reset()
	for index, center := range centers {
		if shape.Dots & (1 << brailleDotBits[index]) != 0 {
			self.traceCircle(center, radius)
		} else if shape.Placeholders {
			third := radius/3
			self.builder.Rect(center.X - third, center.Y - third, center.X + third, center.Y + third)
		}
	}
	mask, err := self.rasterizer.Render(self.builder.Segments(), raster.Fill{})
	if err != nil { return nil, err }
	return []*image.Alpha{ mask }, nil
}

func (self *synthesizer) traceCircle(center grid.Point, radius float64) {
	k := radius*kappa
	cx, cy := center.X, center.Y
	self.builder.MoveTo(cx + radius, cy)
	self.builder.CubeTo(cx + radius, cy + k, cx + k, cy + radius, cx, cy + radius)
	self.builder.CubeTo(cx - k, cy + radius, cx - radius, cy + k, cx - radius, cy)
	self.builder.CubeTo(cx - radius, cy - k, cx - k, cy - radius, cx, cy - radius)
	self.builder.CubeTo(cx + k, cy - radius, cx + radius, cy - k, cx + radius, cy)
}

// Scales coverage values so full coverage becomes the given level.
func scaleCoverage(mask *image.Alpha, level uint8) {
	if mask == nil { return }
	for i, value := range mask.Pix {
		mask.Pix[i] = uint8((int(level)*int(value) + 255) >> 8)
	}
}
