package raster

// Curves are accepted as a single line once their control points are
// closer than this to the chord, in pixels.
const (
	flattenTolerance = 0.1
	maxFlattenDepth = 8
)

// Splits Bézier curves into straight lines by recursive subdivision.
// Strokes are built from polylines, so curves need to be flattened
// before offsetting them.
type curveSegmenter struct {
	tolerance2 float64
	maxDepth uint8
}

func newCurveSegmenter() curveSegmenter {
	return curveSegmenter{
		tolerance2: flattenTolerance*flattenTolerance,
		maxDepth: maxFlattenDepth,
	}
}

type traceFunc = func(x, y float64) // called with the end of each line

func (self *curveSegmenter) TraceQuad(lineTo traceFunc, x, y, cx, cy, fx, fy float64) {
	self.quad(lineTo, point{x, y}, point{cx, cy}, point{fx, fy}, 0)
}

func (self *curveSegmenter) TraceCube(lineTo traceFunc, x, y, cax, cay, cbx, cby, fx, fy float64) {
	self.cube(lineTo, point{x, y}, point{cax, cay}, point{cbx, cby}, point{fx, fy}, 0)
}

func (self *curveSegmenter) quad(lineTo traceFunc, from, ctrl, to point, depth uint8) {
	if depth >= self.maxDepth || self.nearChord(from, to, ctrl) {
		lineTo(to.x, to.y)
		return
	}
	a, b := midpoint(from, ctrl), midpoint(ctrl, to)
	mid := midpoint(a, b)
	self.quad(lineTo, from, a, mid, depth + 1)
	self.quad(lineTo, mid, b, to, depth + 1)
}

func (self *curveSegmenter) cube(lineTo traceFunc, from, ctrlA, ctrlB, to point, depth uint8) {
	if depth >= self.maxDepth || (self.nearChord(from, to, ctrlA) && self.nearChord(from, to, ctrlB)) {
		lineTo(to.x, to.y)
		return
	}
	a, b, c := midpoint(from, ctrlA), midpoint(ctrlA, ctrlB), midpoint(ctrlB, to)
	ab, bc := midpoint(a, b), midpoint(b, c)
	mid := midpoint(ab, bc)
	self.cube(lineTo, from, a, ab, mid, depth + 1)
	self.cube(lineTo, mid, bc, c, to, depth + 1)
}

// Whether p is within the tolerance of the line through from and to.
func (self *curveSegmenter) nearChord(from, to, p point) bool {
	dx, dy := to.x - from.x, to.y - from.y
	px, py := p.x - from.x, p.y - from.y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 { return px*px + py*py <= self.tolerance2 }
	cross := dx*py - dy*px
	return cross*cross <= self.tolerance2*lengthSq
}

func midpoint(a, b point) point {
	return point{ (a.x + b.x)/2, (a.y + b.y)/2 }
}
