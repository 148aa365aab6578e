package synth

// Box drawing table for U+2500 to U+257F. The offsets are added to
// BaseIDBoxDrawing to obtain glyph ids.
var boxDrawingTable = [0x80]struct {
	offset uint16
	shape Shape
}{
	{0x5F, light(part(PathHorizontal))},
	{0x2F, heavy(part(PathHorizontal))},
	{0x72, light(part(PathVertical))},
	{0x41, heavy(part(PathVertical))},
	{0x67, dashed(Light, PathHorizontal, 3)},
	{0x36, dashed(Heavy, PathHorizontal, 3)},
	{0x68, dashed(Light, PathVertical, 3)},
	{0x37, dashed(Heavy, PathVertical, 3)},
	{0x64, dashed(Light, PathHorizontal, 4)},
	{0x33, dashed(Heavy, PathHorizontal, 4)},
	{0x65, dashed(Light, PathVertical, 4)},
	{0x34, dashed(Heavy, PathVertical, 4)},

	// U+250C
	{0x5D, light(part(PathDownRight))},
	{0x20, mixed(heavyJoint(PathRight), lightJoint(PathDown))},
	{0x14, mixed(lightJoint(PathRight), heavyJoint(PathDown))},
	{0x2D, heavy(part(PathDownRight))},
	{0x5C, light(part(PathDownLeft))},
	{0x1C, mixed(heavyJoint(PathLeft), lightJoint(PathDown))},
	{0x10, mixed(lightJoint(PathLeft), heavyJoint(PathDown))},
	{0x2C, heavy(part(PathDownLeft))},
	{0x6D, light(part(PathUpRight))},
	{0x9C, mixed(heavyJoint(PathRight), lightJoint(PathUp))},
	{0x90, mixed(lightJoint(PathRight), heavyJoint(PathUp))},
	{0x3C, heavy(part(PathUpRight))},
	{0x6C, light(part(PathUpLeft))},
	{0x98, mixed(heavyJoint(PathLeft), lightJoint(PathUp))},
	{0x8C, mixed(lightJoint(PathLeft), heavyJoint(PathUp))},
	{0x39, heavy(part(PathUpLeft))},

	// U+251C
	{0x71, light(verticalAndRight...)},
	{0xAE, mixed(heavyJoint(PathRight), lightPiece(part(PathVertical)))},
	{0x8E, mixed(lightPiece(part(PathDownRight)), heavyJoint(PathUp))},
	{0x16, mixed(lightPiece(part(PathUpRight)), heavyJoint(PathDown))},
	{0xA8, mixed(lightJoint(PathRight), heavyPiece(part(PathVertical)))},
	{0x22, mixed(heavyPiece(part(PathUpRight)), lightJoint(PathDown))},
	{0x9A, mixed(heavyPiece(part(PathDownRight)), lightJoint(PathUp))},
	{0x40, heavy(verticalAndRight...)},
	{0x70, light(verticalAndLeft...)},
	{0xAC, mixed(heavyJoint(PathLeft), lightPiece(part(PathVertical)))},
	{0x8A, mixed(lightPiece(part(PathDownLeft)), heavyJoint(PathUp))},
	{0x12, mixed(lightPiece(part(PathUpLeft)), heavyJoint(PathDown))},
	{0xA6, mixed(lightJoint(PathLeft), heavyPiece(part(PathVertical)))},
	{0x1E, mixed(heavyPiece(part(PathUpLeft)), lightJoint(PathDown))},
	{0x96, mixed(heavyPiece(part(PathDownLeft)), lightJoint(PathUp))},
	{0x3F, heavy(verticalAndLeft...)},

	// U+252C
	{0x5B, light(downAndHorizontal...)},
	{0x44, mixed(lightPiece(part(PathDownRight)), heavyJoint(PathLeft))},
	{0x75, mixed(lightPiece(part(PathDownLeft)), heavyJoint(PathRight))},
	{0x1A, mixed(heavyPiece(part(PathHorizontal)), lightJoint(PathDown))},
	{0x0E, mixed(lightPiece(part(PathHorizontal)), heavyJoint(PathDown))},
	{0x7B, mixed(heavyPiece(part(PathDownLeft)), lightJoint(PathRight))},
	{0x4A, mixed(heavyPiece(part(PathDownRight)), lightJoint(PathLeft))},
	{0x2B, heavy(downAndHorizontal...)},
	{0x6B, light(upAndHorizontal...)},
	{0x46, mixed(lightPiece(part(PathUpRight)), heavyJoint(PathLeft))},
	{0x77, mixed(lightPiece(part(PathUpLeft)), heavyJoint(PathRight))},
	{0x94, mixed(heavyPiece(part(PathHorizontal)), lightJoint(PathUp))},
	{0x88, mixed(lightPiece(part(PathHorizontal)), heavyJoint(PathUp))},
	{0x7D, mixed(heavyPiece(part(PathUpLeft)), lightJoint(PathRight))},
	{0x4C, mixed(heavyPiece(part(PathUpRight)), lightJoint(PathLeft))},
	{0x38, heavy(upAndHorizontal...)},

	// U+253C
	{0x6F, light(verticalAndHorizontal...)},
	{0x48, mixed(lightPiece(verticalAndRight...), heavyJoint(PathLeft))},
	{0x79, mixed(lightPiece(verticalAndLeft...), heavyJoint(PathRight))},
	{0xAA, mixed(heavyPiece(part(PathHorizontal)), lightPiece(part(PathVertical)))},
	{0x86, mixed(lightPiece(downAndHorizontal...), heavyJoint(PathUp))},
	{0x18, mixed(lightPiece(upAndHorizontal...), heavyJoint(PathDown))},
	{0xA4, mixed(lightPiece(part(PathHorizontal)), heavyPiece(part(PathVertical)))},
	{0x50, mixed(lightPiece(part(PathDownRight)), heavyPiece(part(PathUpLeft)))},
	{0x81, mixed(lightPiece(part(PathDownLeft)), heavyPiece(part(PathUpRight)))},
	{0x42, mixed(lightPiece(part(PathUpRight)), heavyPiece(part(PathDownLeft)))},
	{0x73, mixed(lightPiece(part(PathUpLeft)), heavyPiece(part(PathDownRight)))},
	{0x24, mixed(heavyPiece(upAndHorizontal...), lightJoint(PathDown))},
	{0x92, mixed(heavyPiece(downAndHorizontal...), lightJoint(PathUp))},
	{0x7F, mixed(heavyPiece(verticalAndLeft...), lightJoint(PathRight))},
	{0x4E, mixed(heavyPiece(verticalAndRight...), lightJoint(PathLeft))},
	{0x3E, heavy(verticalAndHorizontal...)},

	// U+254C
	{0x59, dashed(Light, PathHorizontal, 2)},
	{0x29, dashed(Heavy, PathHorizontal, 2)},
	{0x5A, dashed(Light, PathVertical, 2)},
	{0x2A, dashed(Heavy, PathVertical, 2)},

	// U+2550
	{0x03, light(doubleHorizontal...)},
	{0x0A, light(doubleVertical...)},
	{0x28, light(append(doubleRight(), longDown)...)},
	{0x0D, light(append(doubleDown(), longRight)...)},
	{0x02, light(doubleDownAndRight...)},
	{0x27, light(append(doubleLeft(), longDown)...)},
	{0x0C, light(append(doubleDown(), longLeft)...)},
	{0x01, light(doubleDownAndLeft...)},
	{0xA0, light(append(doubleRight(), longUp)...)},
	{0x85, light(append(doubleUp(), longRight)...)},
	{0x06, light(doubleUpAndRight...)},
	{0x9F, light(append(doubleLeft(), longUp)...)},
	{0x84, light(append(doubleUp(), longLeft)...)},
	{0x05, light(doubleUpAndLeft...)},
	{0xB2, light(append(doubleRight(), part(PathVertical))...)},
	{0xA3, light(append(doubleVerticalCopy(), shortRight)...)},
	{0x09, light(doubleVerticalAndRight...)},
	{0xB1, light(append(doubleLeft(), part(PathVertical))...)},
	{0xA2, light(append(doubleVerticalCopy(), shortLeft)...)},
	{0x08, light(doubleVerticalAndLeft...)},
	{0x26, light(append(doubleHorizontalCopy(), shortDown)...)},
	{0x0B, light(append(doubleDown(), part(PathHorizontal))...)},
	{0x00, light(doubleDownAndHorizontal...)},
	{0x9E, light(append(doubleHorizontalCopy(), shortUp)...)},
	{0x83, light(append(doubleUp(), part(PathHorizontal))...)},
	{0x04, light(doubleUpAndHorizontal...)},
	{0xB0, light(append(doubleHorizontalCopy(), part(PathVertical))...)},
	{0xA1, light(append(doubleVerticalCopy(), part(PathHorizontal))...)},
	{0x07, light(doubleVerticalAndHorizontal...)},

	// U+256D
	{0x53, arc(PathDownRight)},
	{0x52, arc(PathDownLeft)},
	{0x54, arc(PathUpLeft)},
	{0x55, arc(PathUpRight)},
	{0x58, Shape{ Family: FamilyDiagonals, Diagonals: 0b01 }},
	{0x57, Shape{ Family: FamilyDiagonals, Diagonals: 0b10 }},
	{0x56, Shape{ Family: FamilyDiagonals, Diagonals: 0b11 }},

	// U+2574
	{0x63, light(part(PathLeft))},
	{0x6E, light(part(PathUp))},
	{0x66, light(part(PathRight))},
	{0x5E, light(part(PathDown))},
	{0x32, heavy(part(PathLeft))},
	{0x3D, heavy(part(PathUp))},
	{0x35, heavy(part(PathRight))},
	{0x2E, heavy(part(PathDown))},
	{0x61, mixed(heavyJoint(PathRight), lightJoint(PathLeft))},
	{0x69, mixed(heavyJoint(PathDown), lightJoint(PathUp))},
	{0x30, mixed(lightJoint(PathRight), heavyJoint(PathLeft))},
	{0x3A, mixed(lightJoint(PathDown), heavyJoint(PathUp))},
}

// U+1FBAF, light horizontal with vertical stroke.
var lightWithVerticalStroke = light(part(PathHorizontal), part(PathVerticalStroke))

// multi-part single lines
var (
	verticalAndRight = []Part{ part(PathRight), part(PathVertical) }
	verticalAndLeft = []Part{ part(PathLeft), part(PathVertical) }
	downAndHorizontal = []Part{ part(PathHorizontal), part(PathDown) }
	upAndHorizontal = []Part{ part(PathHorizontal), part(PathUp) }
	verticalAndHorizontal = []Part{ part(PathHorizontal), part(PathVertical) }
)

// halves of double lines, warped one stroke width away from the center
var (
	bottomOfDoubleHorizontal = warped(PathHorizontal, 0, 1)
	topOfDoubleHorizontal = warped(PathHorizontal, 0, -1)
	rightOfDoubleVertical = warped(PathVertical, 1, 0)
	leftOfDoubleVertical = warped(PathVertical, -1, 0)

	bottomOfDoubleLeft = warped(PathLeft, 0, 1)
	topOfDoubleLeft = warped(PathLeft, 0, -1)
	rightOfDoubleUp = warped(PathUp, 1, 0)
	leftOfDoubleUp = warped(PathUp, -1, 0)
	bottomOfDoubleRight = warped(PathRight, 0, 1)
	topOfDoubleRight = warped(PathRight, 0, -1)
	rightOfDoubleDown = warped(PathDown, 1, 0)
	leftOfDoubleDown = warped(PathDown, -1, 0)

	innerDownAndRight = warped(PathDownRight, 1, 1)
	innerDownAndLeft = warped(PathDownLeft, -1, 1)
	innerUpAndRight = warped(PathUpRight, 1, -1)
	innerUpAndLeft = warped(PathUpLeft, -1, -1)
	outerUpAndLeft = warped(PathUpLeft, 1, 1)
	outerUpAndRight = warped(PathUpRight, -1, 1)
	outerDownAndLeft = warped(PathDownLeft, 1, -1)
	outerDownAndRight = warped(PathDownRight, -1, -1)
)

// full double lines
var (
	doubleHorizontal = []Part{ bottomOfDoubleHorizontal, topOfDoubleHorizontal }
	doubleVertical = []Part{ rightOfDoubleVertical, leftOfDoubleVertical }
	doubleDownAndRight = []Part{ innerDownAndRight, outerDownAndRight }
	doubleDownAndLeft = []Part{ innerDownAndLeft, outerDownAndLeft }
	doubleUpAndRight = []Part{ outerUpAndRight, innerUpAndRight }
	doubleUpAndLeft = []Part{ outerUpAndLeft, innerUpAndLeft }
	doubleVerticalAndRight = []Part{ innerDownAndRight, innerUpAndRight, leftOfDoubleVertical }
	doubleVerticalAndLeft = []Part{ innerDownAndLeft, innerUpAndLeft, rightOfDoubleVertical }
	doubleDownAndHorizontal = []Part{ topOfDoubleHorizontal, innerDownAndRight, innerDownAndLeft }
	doubleUpAndHorizontal = []Part{ bottomOfDoubleHorizontal, innerUpAndRight, innerUpAndLeft }
	doubleVerticalAndHorizontal = []Part{ innerDownAndRight, innerDownAndLeft, innerUpAndRight, innerUpAndLeft }
)

// Single half lines meeting a double line. Short halves stop at the
// nearest stroke of the double line, long ones reach the farthest.
var (
	shortLeft = shifted(PathLeft, -1, 0)
	longLeft = shifted(PathLeft, 1, 0)
	shortUp = shifted(PathUp, 0, -1)
	longUp = shifted(PathUp, 0, 1)
	shortRight = shifted(PathRight, 1, 0)
	longRight = shifted(PathRight, -1, 0)
	shortDown = shifted(PathDown, 0, 1)
	longDown = shifted(PathDown, 0, -1)
)

// Double half lines are returned as fresh slices so the table entries
// can append to them without sharing backing arrays.
func doubleLeft() []Part { return []Part{ bottomOfDoubleLeft, topOfDoubleLeft } }
func doubleUp() []Part { return []Part{ rightOfDoubleUp, leftOfDoubleUp } }
func doubleRight() []Part { return []Part{ bottomOfDoubleRight, topOfDoubleRight } }
func doubleDown() []Part { return []Part{ rightOfDoubleDown, leftOfDoubleDown } }
func doubleHorizontalCopy() []Part { return append([]Part(nil), doubleHorizontal...) }
func doubleVerticalCopy() []Part { return append([]Part(nil), doubleVertical...) }

func part(path Path) Part { return Part{ Path: path } }
func warped(path Path, x, y int8) Part { return Part{ Path: path, WarpX: x, WarpY: y } }
func shifted(path Path, x, y int8) Part { return Part{ Path: path, ShiftX: x, ShiftY: y } }

func light(parts ...Part) Shape {
	return Shape{ Family: FamilyLines, Pieces: []Piece{ lightPiece(parts...) } }
}

func heavy(parts ...Part) Shape {
	return Shape{ Family: FamilyLines, Pieces: []Piece{ heavyPiece(parts...) } }
}

func mixed(pieces ...Piece) Shape {
	return Shape{ Family: FamilyLines, Pieces: pieces }
}

func lightPiece(parts ...Part) Piece { return Piece{ Weight: Light, Parts: parts } }
func heavyPiece(parts ...Part) Piece { return Piece{ Weight: Heavy, Parts: parts } }
func lightJoint(path Path) Piece { return Piece{ Weight: Light, Joint: true, Parts: []Part{ part(path) } } }
func heavyJoint(path Path) Piece { return Piece{ Weight: Heavy, Joint: true, Parts: []Part{ part(path) } } }

func dashed(weight Weight, path Path, dashes uint8) Shape {
	piece := Piece{ Weight: weight, Parts: []Part{ part(path) } }
	return Shape{ Family: FamilyDashes, Pieces: []Piece{ piece }, Dashes: dashes }
}

func arc(corner Path) Shape {
	return Shape{ Family: FamilyArc, Pieces: []Piece{ lightPiece(part(corner)) } }
}
