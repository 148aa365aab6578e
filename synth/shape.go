package synth

import "strconv"

// Shape families. Each family is rendered by a single function that
// interprets the relevant fields of [Shape].
type Family uint8
const (
	FamilyNone Family = iota
	FamilyLines     // solid strokes, one image per piece
	FamilyDashes    // a single dashed horizontal or vertical stroke
	FamilyArc       // a rounded corner
	FamilyDiagonals // diagonal strokes on the unsnapped grid
	FamilyBlocks    // filled lattice cells
	FamilyShade     // filled lattice cells scaled to a fixed level
	FamilyInverse   // full block minus a lightly shaded region
	FamilyBraille   // dot patterns
)

func (self Family) String() string {
	switch self {
	case FamilyNone      : return "None"
	case FamilyLines     : return "Lines"
	case FamilyDashes    : return "Dashes"
	case FamilyArc       : return "Arc"
	case FamilyDiagonals : return "Diagonals"
	case FamilyBlocks    : return "Blocks"
	case FamilyShade     : return "Shade"
	case FamilyInverse   : return "Inverse"
	case FamilyBraille   : return "Braille"
	default:
		return "Family#" + strconv.Itoa(int(self))
	}
}

// Stroke weights for line pieces.
type Weight uint8
const (
	Light Weight = iota
	Heavy
)

// Paths through the 3 x 3 line grid. Points are named by their row
// and column, with row 0 at the top and column 0 on the left.
type Path uint8
const (
	PathHorizontal Path = iota // middle row, left to right
	PathVertical               // middle column, top to bottom
	PathVerticalStroke         // short vertical tick around the center
	PathLeft                   // center to the left edge
	PathUp                     // top edge to the center
	PathRight                  // center to the right edge
	PathDown                   // bottom edge to the center
	PathDownRight              // bottom edge, center, right edge
	PathDownLeft               // bottom edge, center, left edge
	PathUpRight                // top edge, center, right edge
	PathUpLeft                 // top edge, center, left edge
	pathSentinel
)

// Returns whether the path is one of the four half lines.
func (self Path) IsHalf() bool {
	return self >= PathLeft && self <= PathDown
}

// A path on the line grid. Warp moves the middle row and column of the
// grid before tracing the path, Shift moves only the center point. Both
// are given in multiples of the stroke width, and they are how double
// lines and their junctions are drawn.
type Part struct {
	Path Path
	WarpX, WarpY int8
	ShiftX, ShiftY int8
}

// A group of parts drawn with the same weight into a single image.
//
// When Joint is set, the parts are half lines that meet a stroke of
// the other weight at the center, and their center point is moved so
// the square caps of both weights end flush with each other.
type Piece struct {
	Weight Weight
	Joint bool
	Parts []Part
}

// A cell range on a cols x rows lattice laid over the block grid.
type Cell struct {
	Cols, Rows uint8
	X0, Y0 uint8
	X1, Y1 uint8
}

// Shape descriptor for a procedural glyph. Which fields are relevant
// depends on the family.
type Shape struct {
	Family Family
	Pieces []Piece // lines, dashes and arcs
	Dashes uint8   // number of dashes for FamilyDashes
	Diagonals uint8 // bit 0: upper right to lower left, bit 1: upper left to lower right
	Cells []Cell   // blocks, shades and the shaded region of inverse shades
	Level uint8    // maximum coverage for FamilyShade
	Dots uint8     // braille dot mask, bit n set for dot n + 1

	// Braille only: draw unset dots as small squares.
	Placeholders bool
}

// A procedural glyph definition.
type Drawing struct {
	ID uint16
	Key rune
	Shape Shape
}

func (self Drawing) String() string {
	return "drawing#" + strconv.Itoa(int(self.ID)) + " " + strconv.QuoteRune(self.Key) + " (" + self.Shape.Family.String() + ")"
}

// Base ids for each range of procedural glyphs.
const (
	BaseIDBoxDrawing uint16 = 1024
	BaseIDBlocks     uint16 = 2048
	BaseIDBraille    uint16 = 2560
	BaseIDOctants    uint16 = 3072
)

// Returns the procedural drawing for the given rune, if any.
func Lookup(r rune) (Drawing, bool) {
	switch {
	case r >= 0x2500 && r <= 0x257F:
		entry := boxDrawingTable[r - 0x2500]
		return Drawing{ ID: BaseIDBoxDrawing + entry.offset, Key: r, Shape: entry.shape }, true
	case r == 0x1FBAF:
		return Drawing{ ID: BaseIDBoxDrawing + 0x60, Key: r, Shape: lightWithVerticalStroke }, true
	case r >= 0x2800 && r <= 0x28FF:
		dots := uint8(r - 0x2800)
		return Drawing{ ID: BaseIDBraille + uint16(dots), Key: r, Shape: Shape{ Family: FamilyBraille, Dots: dots } }, true
	case r >= 0x1CD00 && r <= 0x1CDE5:
		index := int(r - 0x1CD00)
		shape := Shape{ Family: FamilyBlocks, Cells: octantCells(octantMasks[index]) }
		return Drawing{ ID: BaseIDOctants + uint16(index), Key: r, Shape: shape }, true
	default:
		index, found := blockIndex[r]
		if !found { return Drawing{}, false }
		return Drawing{ ID: BaseIDBlocks + uint16(index), Key: r, Shape: blockTable[index].shape }, true
	}
}

// Returns all the runes with procedural drawings, in increasing order.
func Runes() []rune {
	runes := make([]rune, 0, 0x80 + 0x100 + len(octantMasks) + len(blockTable) + 1)
	for r := rune(0x2500); r <= 0x257F; r++ { runes = append(runes, r) }
	for _, entry := range blockTable {
		if entry.key < 0x2800 { runes = append(runes, entry.key) }
	}
	for r := rune(0x2800); r <= 0x28FF; r++ { runes = append(runes, r) }
	for r := rune(0x1CD00); r <= 0x1CDE5; r++ { runes = append(runes, r) }
	for _, entry := range blockTable {
		if entry.key > 0x28FF && entry.key < 0x1FBAF { runes = append(runes, entry.key) }
	}
	runes = append(runes, 0x1FBAF)
	for _, entry := range blockTable {
		if entry.key > 0x1FBAF { runes = append(runes, entry.key) }
	}
	return runes
}
