package raster

import "image"
import "image/draw"
import "math"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "github.com/pkg/errors"

// Line cap styles for strokes.
type Cap uint8
const (
	CapButt   Cap = iota // the stroke ends exactly at the path endpoints
	CapSquare            // the stroke extends half its width beyond the endpoints
)

// A Style tells [Render]() how to paint a path. It's implemented
// by [Fill] and [Stroke].
type Style interface {
	validate() error
}

// Fills the path. Subpaths are implicitly closed.
type Fill struct{}

// Strokes the path with miter joins.
type Stroke struct {
	Width float64
	Cap Cap

	// Alternating dash and gap lengths. No dashing if empty.
	Dashes []float64

	// Distance into the dash pattern at which the stroke starts.
	// Negative values are allowed.
	DashOffset float64
}

func (Fill) validate() error { return nil }
func (self Stroke) validate() error {
	if !(self.Width > 0) || math.IsInf(self.Width, 0) {
		return errors.Errorf("invalid stroke width %v", self.Width)
	}
	if self.Cap > CapSquare { return errors.Errorf("invalid cap style %d", self.Cap) }
	if len(self.Dashes) > 0 {
		var total float64
		for _, dash := range self.Dashes {
			if dash < 0 || math.IsNaN(dash) { return errors.Errorf("invalid dash length %v", dash) }
			total += dash
		}
		if !(total > 0) { return errors.New("dash pattern with zero total length") }
	}
	return nil
}

// A Rasterizer renders paths to alpha masks. It keeps internal buffers
// between calls, so it can't be used concurrently. The zero value is
// not valid, use [NewRasterizer]() instead.
type Rasterizer struct {
	rasterizer vector.Rasterizer
	segmenter curveSegmenter
	offsetX float64 // offset to normalize points to the positive quadrant
	offsetY float64
	polylines []polyline
	polygons []polygon
}

// Creates a new rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{ segmenter: newCurveSegmenter() }
}

// Renders the path with the given style using a temporary [Rasterizer].
func Render(path sfnt.Segments, style Style) (*image.Alpha, error) {
	return NewRasterizer().Render(path, style)
}

// Renders the path with the given style. The bounds of the returned
// mask indicate its placement in path coordinates: the mask covers
// the pixels touched by the painted area, from the floor of its
// minimum coordinates to the ceiling of its maximum ones.
//
// The returned mask will be nil if the path has nothing to paint
// (e.g. no segments, or only move operations).
func (self *Rasterizer) Render(path sfnt.Segments, style Style) (*image.Alpha, error) {
	if style == nil { return nil, errors.New("nil raster style") }
	if err := style.validate(); err != nil { return nil, err }
	if !hasDrawOps(path) { return nil, nil }

	switch style := style.(type) {
	case Fill:
		return self.fill(path)
	case *Fill:
		return self.fill(path)
	case Stroke:
		return self.stroke(path, style)
	case *Stroke:
		return self.stroke(path, *style)
	default:
		return nil, errors.Errorf("unexpected raster style %T", style)
	}
}

func (self *Rasterizer) fill(path sfnt.Segments) (*image.Alpha, error) {
	fbounds := path.Bounds()
	minX, minY := float64(fbounds.Min.X)/64, float64(fbounds.Min.Y)/64
	maxX, maxY := float64(fbounds.Max.X)/64, float64(fbounds.Max.Y)/64
	width, height, rectOffset := self.figureOutBounds(minX, minY, maxX, maxY)
	if width == 0 || height == 0 { return nil, nil }
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	open := false
	for _, segment := range path {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			if open { self.rasterizer.ClosePath() }
			x, y := self.norm(segment.Args[0].X, segment.Args[0].Y)
			self.rasterizer.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := self.norm(segment.Args[0].X, segment.Args[0].Y)
			self.rasterizer.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := self.norm(segment.Args[0].X, segment.Args[0].Y)
			x , y  := self.norm(segment.Args[1].X, segment.Args[1].Y)
			self.rasterizer.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			cax, cay := self.norm(segment.Args[0].X, segment.Args[0].Y)
			cbx, cby := self.norm(segment.Args[1].X, segment.Args[1].Y)
			x  , y   := self.norm(segment.Args[2].X, segment.Args[2].Y)
			self.rasterizer.CubeTo(cax, cay, cbx, cby, x, y)
		default:
			return nil, errors.Errorf("unexpected segment op %d", segment.Op)
		}
	}
	if open { self.rasterizer.ClosePath() }

	return self.drawMask(rectOffset), nil
}

func (self *Rasterizer) stroke(path sfnt.Segments, stroke Stroke) (*image.Alpha, error) {
	var err error
	self.polylines, err = flatten(self.polylines[:0], path, &self.segmenter)
	if err != nil { return nil, err }
	if len(stroke.Dashes) > 0 {
		self.polylines = applyDashes(self.polylines, stroke.Dashes, stroke.DashOffset)
	}

	self.polygons = self.polygons[:0]
	for _, line := range self.polylines {
		self.polygons = strokePolyline(self.polygons, line, stroke.Width/2, stroke.Cap)
	}
	if len(self.polygons) == 0 { return nil, nil }

	minX, minY := math.Inf(+1), math.Inf(+1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range self.polygons {
		for _, pt := range poly {
			minX, maxX = math.Min(minX, pt.x), math.Max(maxX, pt.x)
			minY, maxY = math.Min(minY, pt.y), math.Max(maxY, pt.y)
		}
	}
	width, height, rectOffset := self.figureOutBounds(minX, minY, maxX, maxY)
	if width == 0 || height == 0 { return nil, nil }
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	for _, poly := range self.polygons {
		self.rasterizer.MoveTo(float32(poly[0].x + self.offsetX), float32(poly[0].y + self.offsetY))
		for _, pt := range poly[1 : ] {
			self.rasterizer.LineTo(float32(pt.x + self.offsetX), float32(pt.y + self.offsetY))
		}
		self.rasterizer.ClosePath()
	}

	return self.drawMask(rectOffset), nil
}

func (self *Rasterizer) drawMask(rectOffset image.Point) *image.Alpha {
	mask := image.NewAlpha(self.rasterizer.Bounds())

	// the source is uniform, so the sampling point is irrelevant
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask to its final position
	mask.Rect = mask.Rect.Add(rectOffset)
	return mask
}

// Given the float bounds of the area to paint, it returns the integer
// width and height of the mask, and the offset to be applied on the
// final mask to align it to the path coordinates. It also sets the
// normalization offset that keeps coordinates in the positive plane.
func (self *Rasterizer) figureOutBounds(minX, minY, maxX, maxY float64) (int, int, image.Point) {
	floorMinX, floorMinY := math.Floor(minX), math.Floor(minY)
	self.offsetX, self.offsetY = -floorMinX, -floorMinY
	width  := int(math.Ceil(maxX + self.offsetX))
	height := int(math.Ceil(maxY + self.offsetY))
	if width < 0 { width = 0 }
	if height < 0 { height = 0 }
	return width, height, image.Pt(int(floorMinX), int(floorMinY))
}

func (self *Rasterizer) norm(x, y fixed.Int26_6) (float32, float32) {
	return float32(float64(x)/64 + self.offsetX), float32(float64(y)/64 + self.offsetY)
}

func hasDrawOps(path sfnt.Segments) bool {
	for _, segment := range path {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}
