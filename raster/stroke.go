package raster

import "math"

import "golang.org/x/image/font/sfnt"
import "github.com/pkg/errors"

// Miter joins longer than this ratio of the stroke width fall
// back to bevel joins.
const miterLimit = 4.0

type point struct { x, y float64 }
type polyline []point
type polygon []point

// Converts the path into polylines, splitting curves into line segments.
// Consecutive repeated points are dropped.
func flatten(buffer []polyline, path sfnt.Segments, segmenter *curveSegmenter) ([]polyline, error) {
	var current polyline
	var x, y float64
	lineTo := func(nx, ny float64) {
		if nx == x && ny == y { return }
		current = append(current, point{nx, ny})
		x, y = nx, ny
	}
	flush := func() {
		if len(current) > 0 { buffer = append(buffer, current) }
		current = nil
	}

	for _, segment := range path {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			x, y = fixedToFloat(segment.Args[0].X), fixedToFloat(segment.Args[0].Y)
			current = polyline{ point{x, y} }
		case sfnt.SegmentOpLineTo:
			if current == nil { current = polyline{ point{x, y} } }
			lineTo(fixedToFloat(segment.Args[0].X), fixedToFloat(segment.Args[0].Y))
		case sfnt.SegmentOpQuadTo:
			if current == nil { current = polyline{ point{x, y} } }
			cx, cy := fixedToFloat(segment.Args[0].X), fixedToFloat(segment.Args[0].Y)
			fx, fy := fixedToFloat(segment.Args[1].X), fixedToFloat(segment.Args[1].Y)
			segmenter.TraceQuad(lineTo, x, y, cx, cy, fx, fy)
		case sfnt.SegmentOpCubeTo:
			if current == nil { current = polyline{ point{x, y} } }
			cax, cay := fixedToFloat(segment.Args[0].X), fixedToFloat(segment.Args[0].Y)
			cbx, cby := fixedToFloat(segment.Args[1].X), fixedToFloat(segment.Args[1].Y)
			fx , fy  := fixedToFloat(segment.Args[2].X), fixedToFloat(segment.Args[2].Y)
			segmenter.TraceCube(lineTo, x, y, cax, cay, cbx, cby, fx, fy)
		default:
			return buffer, errors.Errorf("unexpected segment op %d", segment.Op)
		}
	}
	flush()
	return buffer, nil
}

// Splits the polylines following the given dash pattern. Only the
// "on" parts of the pattern are kept.
func applyDashes(lines []polyline, dashes []float64, offset float64) []polyline {
	pattern := dashes
	if len(pattern) % 2 != 0 { pattern = append(append([]float64(nil), dashes...), dashes...) }
	var total float64
	for _, dash := range pattern { total += dash }

	var dashed []polyline
	for _, line := range lines {
		// find the starting position in the pattern
		phase := math.Mod(offset, total)
		if phase < 0 { phase += total }
		index := 0
		for phase >= pattern[index] {
			phase -= pattern[index]
			index = (index + 1) % len(pattern)
		}
		remaining := pattern[index] - phase
		on := (index % 2 == 0)

		var current polyline
		if on { current = polyline{ line[0] } }
		for i := 1; i < len(line); i++ {
			from, to := line[i - 1], line[i]
			segLen := math.Hypot(to.x - from.x, to.y - from.y)
			traveled := 0.0
			for segLen - traveled > remaining {
				traveled += remaining
				t := traveled/segLen
				cut := point{ from.x + (to.x - from.x)*t, from.y + (to.y - from.y)*t }
				if on {
					current = append(current, cut)
					dashed = append(dashed, current)
					current = nil
				} else {
					current = polyline{ cut }
				}
				on = !on
				index = (index + 1) % len(pattern)
				remaining = pattern[index]
			}
			remaining -= segLen - traveled
			if on { current = append(current, to) }
		}
		if on && len(current) > 1 { dashed = append(dashed, current) }
	}
	return dashed
}

// Appends to polygons the outline pieces of a stroke along the given
// polyline: a quad for each segment, plus a join wedge between
// consecutive segments. All the polygons are emitted with the same
// orientation, so overlapping pieces never cancel each other out.
func strokePolyline(polygons []polygon, line polyline, halfWidth float64, cap Cap) []polygon {
	if len(line) < 2 { return polygons }

	points := append(polyline(nil), line...)
	if cap == CapSquare {
		first, second := points[0], points[1]
		dx, dy := unit(second.x - first.x, second.y - first.y)
		points[0] = point{ first.x - dx*halfWidth, first.y - dy*halfWidth }
		last, prev := points[len(points) - 1], points[len(points) - 2]
		dx, dy = unit(last.x - prev.x, last.y - prev.y)
		points[len(points) - 1] = point{ last.x + dx*halfWidth, last.y + dy*halfWidth }
	}

	for i := 1; i < len(points); i++ {
		from, to := points[i - 1], points[i]
		dx, dy := unit(to.x - from.x, to.y - from.y)
		nx, ny := -dy*halfWidth, dx*halfWidth
		quad := polygon{
			{from.x + nx, from.y + ny}, {to.x + nx, to.y + ny},
			{to.x - nx, to.y - ny}, {from.x - nx, from.y - ny},
		}
		polygons = appendOriented(polygons, quad)
	}

	for i := 1; i < len(points) - 1; i++ {
		polygons = appendJoin(polygons, points[i - 1], points[i], points[i + 1], halfWidth)
	}
	return polygons
}

func appendJoin(polygons []polygon, prev, vertex, next point, halfWidth float64) []polygon {
	d1x, d1y := unit(vertex.x - prev.x, vertex.y - prev.y)
	d2x, d2y := unit(next.x - vertex.x, next.y - vertex.y)
	if (d1x == 0 && d1y == 0) || (d2x == 0 && d2y == 0) { return polygons }
	n1x, n1y := -d1y, d1x
	n2x, n2y := -d2y, d2x

	// the join goes on the outer side of the turn
	turn := n1x*d2x + n1y*d2y
	if math.Abs(turn) < 1e-9 && d1x*d2x + d1y*d2y > 0 { return polygons } // collinear
	side := 1.0
	if turn > 0 { side = -1.0 }

	a := point{ vertex.x + side*halfWidth*n1x, vertex.y + side*halfWidth*n1y }
	b := point{ vertex.x + side*halfWidth*n2x, vertex.y + side*halfWidth*n2y }
	cosine := n1x*n2x + n1y*n2y
	if 1 + cosine < 2/(miterLimit*miterLimit) { // bevel
		return appendOriented(polygons, polygon{ vertex, a, b })
	}
	scale := side*halfWidth/(1 + cosine)
	miter := point{ vertex.x + (n1x + n2x)*scale, vertex.y + (n1y + n2y)*scale }
	return appendOriented(polygons, polygon{ vertex, a, miter, b })
}

// Appends the polygon with a positive signed area, reversing it if
// necessary. Degenerate polygons are dropped.
func appendOriented(polygons []polygon, poly polygon) []polygon {
	area := signedArea(poly)
	if math.Abs(area) < 1e-12 { return polygons }
	if area < 0 {
		for i, j := 0, len(poly) - 1; i < j; i, j = i + 1, j - 1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return append(polygons, poly)
}

func signedArea(poly polygon) float64 {
	var area float64
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].x*poly[j].y - poly[j].x*poly[i].y
	}
	return area/2
}

func unit(dx, dy float64) (float64, float64) {
	length := math.Hypot(dx, dy)
	if length == 0 { return 0, 0 }
	return dx/length, dy/length
}
