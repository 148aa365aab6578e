package raster

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/btxt/fract"

// Helper to create [sfnt.Segments] from float64 coordinates. Coordinates
// are rounded to the closest 26.6 fixed point value.
//
// The zero value is ready to use.
type Builder struct {
	segments sfnt.Segments
	startX, startY float64
	x, y float64
}

// Starts a new subpath at the given coordinates.
func (self *Builder) MoveTo(x, y float64) {
	self.startX, self.startY = x, y
	self.x, self.y = x, y
	self.push(sfnt.SegmentOpMoveTo, toFixed(x, y))
}

// Adds a straight line from the current position to the given one.
func (self *Builder) LineTo(x, y float64) {
	self.x, self.y = x, y
	self.push(sfnt.SegmentOpLineTo, toFixed(x, y))
}

// Adds a quadratic Bézier curve to (x, y) with the given control point.
func (self *Builder) QuadTo(ctrlX, ctrlY, x, y float64) {
	self.x, self.y = x, y
	self.push(sfnt.SegmentOpQuadTo, toFixed(ctrlX, ctrlY), toFixed(x, y))
}

// Adds a cubic Bézier curve to (x, y) with the given control points.
func (self *Builder) CubeTo(ctrlAX, ctrlAY, ctrlBX, ctrlBY, x, y float64) {
	self.x, self.y = x, y
	self.push(sfnt.SegmentOpCubeTo, toFixed(ctrlAX, ctrlAY), toFixed(ctrlBX, ctrlBY), toFixed(x, y))
}

// Adds a line back to the start of the current subpath. Notice that
// sfnt.Segments don't have explicit close operations, so closing only
// matters for strokes.
func (self *Builder) Close() {
	if self.x == self.startX && self.y == self.startY { return }
	self.LineTo(self.startX, self.startY)
}

// Adds a closed axis-aligned rectangle subpath.
func (self *Builder) Rect(minX, minY, maxX, maxY float64) {
	self.MoveTo(minX, minY)
	self.LineTo(maxX, minY)
	self.LineTo(maxX, maxY)
	self.LineTo(minX, maxY)
	self.Close()
}

// Adds an open polyline subpath through the given points.
func (self *Builder) Polyline(xys ...float64) {
	if len(xys) % 2 != 0 { panic("odd number of polyline coordinates") }
	if len(xys) == 0 { return }
	self.MoveTo(xys[0], xys[1])
	for i := 2; i < len(xys); i += 2 {
		self.LineTo(xys[i], xys[i + 1])
	}
}

// Returns the current position.
func (self *Builder) Position() (x, y float64) { return self.x, self.y }

// Returns the accumulated segments. The returned slice shares memory
// with the builder, so it will be overwritten if the builder is
// [Builder.Reset]() and reused.
func (self *Builder) Segments() sfnt.Segments { return self.segments }

// Clears the builder.
func (self *Builder) Reset() {
	self.segments = self.segments[:0]
	self.startX, self.startY, self.x, self.y = 0, 0, 0, 0
}

func (self *Builder) push(op sfnt.SegmentOp, args ...fixed.Point26_6) {
	var segment sfnt.Segment
	segment.Op = op
	copy(segment.Args[:], args)
	self.segments = append(self.segments, segment)
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fract.Float64sToPoint(x, y).ToFixed()
}
