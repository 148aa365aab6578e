package synth

import "image"
import "math"
import "strconv"

import "github.com/tinne26/btxt/grid"
import "github.com/tinne26/btxt/raster"

// Control point distance for approximating a quarter circle with a
// cubic Bézier curve, relative to the radius.
const kappa = 0.5522847498

// Offsets applied to the points of the 3 x 3 line grid. Endpoints on
// the middle row keep the sub-pixel x offset but are rounded vertically,
// endpoints on the middle column are rounded horizontally, and the
// center is rounded on both axes. This keeps strokes aligned to whole
// pixels across the axis they span.
type lineOffsets struct {
	row grid.Point
	column grid.Point
	center grid.Point
}

func newLineOffsets(offset grid.Point) lineOffsets {
	x, y := math.Round(offset.X), math.Round(offset.Y)
	return lineOffsets{
		row: grid.Pt(offset.X, y),
		column: grid.Pt(x, offset.Y),
		center: grid.Pt(x, y),
	}
}

// The points of a 3 x 3 line grid, indexed as [y][x].
type linePoints [3][3]grid.Point

func linePointsOf(lineGrid grid.Grid) linePoints {
	var points linePoints
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			points[y][x] = lineGrid.At(y, x)
		}
	}
	return points
}

// Moves the middle row vertically and the middle column horizontally.
// The center point moves on both axes.
func (self linePoints) warp(dx, dy float64) linePoints {
	for x := 0; x < 3; x++ { self[1][x].Y += dy }
	for y := 0; y < 3; y++ { self[y][1].X += dx }
	return self
}

// Returns the points traversed by the given path.
func (self linePoints) chain(path Path, offsets lineOffsets) []grid.Point {
	left   := self[1][0].Add(offsets.row)
	right  := self[1][2].Add(offsets.row)
	top    := self[0][1].Add(offsets.column)
	bottom := self[2][1].Add(offsets.column)
	center := self[1][1].Add(offsets.center)

	switch path {
	case PathHorizontal : return []grid.Point{ left, right }
	case PathVertical   : return []grid.Point{ top, bottom }
	case PathVerticalStroke:
		upper := self[0][1].Mid(self[1][1]).Add(offsets.center)
		lower := self[1][1].Mid(self[2][1]).Add(offsets.center)
		return []grid.Point{ upper, lower }
	case PathLeft  : return []grid.Point{ center, left }
	case PathUp    : return []grid.Point{ top, center }
	case PathRight : return []grid.Point{ center, right }
	case PathDown  : return []grid.Point{ bottom, center }
	case PathDownRight : return []grid.Point{ bottom, center, right }
	case PathDownLeft  : return []grid.Point{ bottom, center, left }
	case PathUpRight   : return []grid.Point{ top, center, right }
	case PathUpLeft    : return []grid.Point{ top, center, left }
	default:
		panic("unexpected line path " + strconv.Itoa(int(path)))
	}
}

// Offset for the center point of a half line meeting a stroke of the
// other weight, so both square caps end at the same place.
func jointOffset(path Path, styled, other *grid.StyledGrid) grid.Point {
	signum := 1.0
	if path == PathRight || path == PathDown { signum = -1.0 }
	capDiff := signum*(other.Stroke.Width/2 - styled.Stroke.Width/2)
	centerDiff := other.Grid.At(1, 1).Sub(styled.Grid.At(1, 1))
	switch path {
	case PathLeft, PathRight: return grid.Pt(capDiff + centerDiff.X, 0)
	case PathUp, PathDown   : return grid.Pt(0, capDiff + centerDiff.Y)
	default:
		panic("joint on a path that is not a half line")
	}
}

func strokeStyle(stroke grid.Stroke) raster.Stroke {
	lineCap := raster.CapButt
	if stroke.Cap == grid.CapSquare { lineCap = raster.CapSquare }
	return raster.Stroke{ Width: stroke.Width, Cap: lineCap }
}

func styledGrids(metrics *grid.Metrics, weight Weight) (styled, other *grid.StyledGrid) {
	if weight == Heavy { return &metrics.Heavy, &metrics.Light }
	return &metrics.Light, &metrics.Heavy
}

func (self *synthesizer) tracePolyline(points []grid.Point) {
	self.builder.MoveTo(points[0].X, points[0].Y)
	for _, point := range points[1 : ] {
		self.builder.LineTo(point.X, point.Y)
	}
}

// Renders each piece as a separate image.
func (self *synthesizer) renderLines(shape *Shape, metrics *grid.Metrics, offset grid.Point) ([]*image.Alpha, error) {
	base := newLineOffsets(offset)
	masks := make([]*image.Alpha, 0, len(shape.Pieces))
	for _, piece := range shape.Pieces {
		styled, other := styledGrids(metrics, piece.Weight)
		width := styled.Stroke.Width
		points := linePointsOf(styled.Grid)

		self.builder.Reset()
		for _, part := range piece.Parts {
			offsets := base
			shift := grid.Pt(float64(part.ShiftX)*width, float64(part.ShiftY)*width)
			offsets.center = offsets.center.Add(shift)
			if piece.Joint {
				offsets.center = offsets.center.Add(jointOffset(part.Path, styled, other))
			}
			warped := points.warp(float64(part.WarpX)*width, float64(part.WarpY)*width)
			self.tracePolyline(warped.chain(part.Path, offsets))
		}

		mask, err := self.rasterizer.Render(self.builder.Segments(), strokeStyle(styled.Stroke))
		if err != nil { return nil, err }
		masks = append(masks, mask)
	}
	return masks, nil
}

// Renders a single straight stroke split in evenly spaced dashes, with
// half a gap at each end.
func (self *synthesizer) renderDashes(shape *Shape, metrics *grid.Metrics, offset grid.Point) ([]*image.Alpha, error) {
	piece := shape.Pieces[0]
	styled, _ := styledGrids(metrics, piece.Weight)
	chain := linePointsOf(styled.Grid).chain(piece.Parts[0].Path, newLineOffsets(offset))
	length := math.Hypot(chain[1].X - chain[0].X, chain[1].Y - chain[0].Y)
	if length == 0 { return []*image.Alpha{ nil }, nil }

	dash := length
	if shape.Dashes > 0 { dash = length/(2*float64(shape.Dashes)) }
	style := raster.Stroke{
		Width: styled.Stroke.Width,
		Cap: raster.CapButt,
		Dashes: []float64{ dash, dash },
		DashOffset: -dash/2,
	}

	self.builder.Reset()
	self.tracePolyline(chain)
	mask, err := self.rasterizer.Render(self.builder.Segments(), style)
	if err != nil { return nil, err }
	return []*image.Alpha{ mask }, nil
}

// Renders a corner with a rounded joint. The radius is the shortest of
// the two legs, and the result is trimmed to its visible pixels.
func (self *synthesizer) renderArc(shape *Shape, metrics *grid.Metrics, offset grid.Point) ([]*image.Alpha, error) {
	piece := shape.Pieces[0]
	styled, _ := styledGrids(metrics, piece.Weight)
	chain := linePointsOf(styled.Grid).chain(piece.Parts[0].Path, newLineOffsets(offset))
	if len(chain) != 3 { panic("arc on a path that is not a corner") }

	first, last := chain[0], chain[2]
	dx, dy := last.X - first.X, last.Y - first.Y
	radius := math.Min(math.Abs(dx), math.Abs(dy))
	second := grid.Pt(first.X, last.Y - math.Copysign(radius, dy))
	third  := grid.Pt(first.X + math.Copysign(radius, dx), last.Y)
	corner := grid.Pt(first.X, last.Y)
	ctrlA := second.Add(corner.Sub(second).Scale(kappa))
	ctrlB := third.Add(corner.Sub(third).Scale(kappa))

	self.builder.Reset()
	self.builder.MoveTo(first.X, first.Y)
	self.builder.LineTo(second.X, second.Y)
	self.builder.CubeTo(ctrlA.X, ctrlA.Y, ctrlB.X, ctrlB.Y, third.X, third.Y)
	self.builder.LineTo(last.X, last.Y)
	mask, err := self.rasterizer.Render(self.builder.Segments(), strokeStyle(styled.Stroke))
	if err != nil { return nil, err }
	return []*image.Alpha{ raster.Trim(mask) }, nil
}

// Renders diagonals on the unsnapped grid, cropped vertically to the
// grid bounds.
func (self *synthesizer) renderDiagonals(shape *Shape, metrics *grid.Metrics, offset grid.Point) ([]*image.Alpha, error) {
	points := linePointsOf(metrics.Cross.Grid)
	self.builder.Reset()
	if shape.Diagonals & 0b01 != 0 {
		self.tracePolyline([]grid.Point{ points[0][2].Add(offset), points[2][0].Add(offset) })
	}
	if shape.Diagonals & 0b10 != 0 {
		self.tracePolyline([]grid.Point{ points[0][0].Add(offset), points[2][2].Add(offset) })
	}

	mask, err := self.rasterizer.Render(self.builder.Segments(), strokeStyle(metrics.Cross.Stroke))
	if err != nil { return nil, err }
	top, bottom := int(points[0][1].Y), int(points[2][1].Y)
	return []*image.Alpha{ raster.CropY(mask, top, bottom) }, nil
}
