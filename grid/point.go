package grid

// A 2D point or vector in pixel space. The y axis grows downwards.
type Point struct {
	X float64
	Y float64
}

// Shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{ X: x, Y: y } }

func (self Point) Add(other Point) Point {
	return Point{ X: self.X + other.X, Y: self.Y + other.Y }
}

func (self Point) Sub(other Point) Point {
	return Point{ X: self.X - other.X, Y: self.Y - other.Y }
}

func (self Point) Scale(factor float64) Point {
	return Point{ X: self.X*factor, Y: self.Y*factor }
}

// Returns the point halfway between self and other.
func (self Point) Mid(other Point) Point {
	return Point{ X: (self.X + other.X)/2, Y: (self.Y + other.Y)/2 }
}
