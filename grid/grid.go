package grid

import "math"
import "strconv"

// Optional translation applied when snapping grid coordinates to
// the pixel grid. A snap of {0, 0} puts points on pixel corners,
// a snap of {0.5, 0.5} puts them on pixel centers.
type Snap struct {
	DX float64
	DY float64
}

// A Grid is an N x N matrix of points spanning [0, width] x [0, height].
// Points are indexed as [y][x].
//
// Coordinates increase monotonically along both axes. Snapping never
// reorders points.
type Grid struct {
	n int
	points [][]Point
}

// Creates a grid with n points per axis. If snap is not nil, each
// coordinate c along a dimension d is transformed to
//   round(c*floor(d)/d + t) - t
// where t is the snap translation for that axis, so the grid points
// fall on whole pixels (or at a fixed offset from them) while the
// overall proportions of the shape are kept.
//
// For n == 0 the grid is empty. For n == 1 the only point is (0, 0)
// or the snap translation. The function panics if n is negative.
func New(n int, width, height float64, snap *Snap) Grid {
	if n < 0 { panic("grid: negative point count " + strconv.Itoa(n)) }

	xScale, yScale := 0.0, 0.0
	if width  > 0 { xScale = math.Floor(width)/width }
	if height > 0 { yScale = math.Floor(height)/height }
	xIncrement, yIncrement := 0.0, 0.0
	if n >= 2 {
		xIncrement = width/float64(n - 1)
		yIncrement = height/float64(n - 1)
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	var x, y float64
	for i := 0; i < n; i++ {
		if snap != nil {
			xs[i] = math.Round(x*xScale + snap.DX) - snap.DX
			ys[i] = math.Round(y*yScale + snap.DY) - snap.DY
		} else {
			xs[i], ys[i] = x, y
		}
		x += xIncrement
		y += yIncrement
	}

	points := make([][]Point, n)
	for yIndex := 0; yIndex < n; yIndex++ {
		row := make([]Point, n)
		for xIndex := 0; xIndex < n; xIndex++ {
			row[xIndex] = Point{ X: xs[xIndex], Y: ys[yIndex] }
		}
		points[yIndex] = row
	}

	return Grid{ n: n, points: points }
}

// Returns the number of points per axis.
func (self Grid) N() int { return self.n }

// Returns the point at the given row and column.
func (self Grid) At(y, x int) Point {
	return self.points[y][x]
}

// Returns a copy of the grid points, indexed as [y][x].
func (self Grid) Points() [][]Point {
	points := make([][]Point, self.n)
	for i, row := range self.points {
		points[i] = append([]Point(nil), row...)
	}
	return points
}

// Maps an index on a coarser max x max lattice to the index of the
// same grid line on this grid. For example, on a 25 x 25 grid the
// index 1 of a lattice with max 4 maps to 6.
//
// The function panics if the grid is empty, if max is not positive,
// or if the mapped index falls outside the grid.
func (self Grid) MapIndex(max, index int) int {
	if self.n <= 0 { panic("grid: MapIndex on an empty grid") }
	if max <= 0 { panic("grid: MapIndex with non-positive max " + strconv.Itoa(max)) }
	mapped := index*((self.n - 1)/max)
	if mapped < 0 || mapped >= self.n {
		panic("grid: index " + strconv.Itoa(index) + " out of range for lattice max " + strconv.Itoa(max))
	}
	return mapped
}
