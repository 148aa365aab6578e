package synth

import "math/bits"

// Block elements and legacy computing mosaics, sorted by key. Glyph ids
// are BaseIDBlocks plus the index in the table.
var blockTable = []struct {
	key rune
	shape Shape
}{
	{0x2580, blocks(rows(2, 0, 1))},
	{0x2581, blocks(rows(8, 7, 8))},
	{0x2582, blocks(rows(4, 3, 4))},
	{0x2583, blocks(rows(8, 5, 8))},
	{0x2584, blocks(rows(2, 1, 2))},
	{0x2585, blocks(rows(8, 3, 8))},
	{0x2586, blocks(rows(4, 1, 4))},
	{0x2587, blocks(rows(8, 1, 8))},
	{0x2588, blocks(fullBlock)},
	{0x2589, blocks(cols(8, 0, 7))},
	{0x258A, blocks(cols(4, 0, 3))},
	{0x258B, blocks(cols(8, 0, 5))},
	{0x258C, blocks(cols(2, 0, 1))},
	{0x258D, blocks(cols(8, 0, 3))},
	{0x258E, blocks(cols(4, 0, 1))},
	{0x258F, blocks(cols(8, 0, 1))},
	{0x2590, blocks(cols(2, 1, 2))},
	{0x2591, shade(64, fullBlock)},
	{0x2592, shade(128, fullBlock)},
	{0x2593, shade(192, fullBlock)},
	{0x2594, blocks(rows(8, 0, 1))},
	{0x2595, blocks(cols(8, 7, 8))},
	{0x2596, blocks(lattice(2, 2, 3)...)},
	{0x2597, blocks(lattice(2, 2, 4)...)},
	{0x2598, blocks(lattice(2, 2, 1)...)},
	{0x2599, blocks(lattice(2, 2, 1, 3, 4)...)},
	{0x259A, blocks(lattice(2, 2, 1, 4)...)},
	{0x259B, blocks(lattice(2, 2, 1, 2, 3)...)},
	{0x259C, blocks(lattice(2, 2, 1, 2, 4)...)},
	{0x259D, blocks(lattice(2, 2, 2)...)},
	{0x259E, blocks(lattice(2, 2, 2, 3)...)},
	{0x259F, blocks(lattice(2, 2, 2, 3, 4)...)},

	// one sixteenth blocks, U+1CE90
	{0x1CE90, blocks(lattice(4, 4, 1)...)},
	{0x1CE91, blocks(lattice(4, 4, 2)...)},
	{0x1CE92, blocks(lattice(4, 4, 3)...)},
	{0x1CE93, blocks(lattice(4, 4, 4)...)},
	{0x1CE94, blocks(lattice(4, 4, 5)...)},
	{0x1CE95, blocks(lattice(4, 4, 6)...)},
	{0x1CE96, blocks(lattice(4, 4, 7)...)},
	{0x1CE97, blocks(lattice(4, 4, 8)...)},
	{0x1CE98, blocks(lattice(4, 4, 9)...)},
	{0x1CE99, blocks(lattice(4, 4, 10)...)},
	{0x1CE9A, blocks(lattice(4, 4, 11)...)},
	{0x1CE9B, blocks(lattice(4, 4, 12)...)},
	{0x1CE9C, blocks(lattice(4, 4, 13)...)},
	{0x1CE9D, blocks(lattice(4, 4, 14)...)},
	{0x1CE9E, blocks(lattice(4, 4, 15)...)},
	{0x1CE9F, blocks(lattice(4, 4, 16)...)},

	// one quarter blocks along the edges
	{0x1CEA0, blocks(lattice(4, 2, 8)...)},
	{0x1CEA1, blocks(lattice(4, 4, 14, 15, 16)...)},
	{0x1CEA2, blocks(lattice(4, 4, 13, 14, 15)...)},
	{0x1CEA3, blocks(lattice(4, 2, 7)...)},
	{0x1CEA4, blocks(lattice(2, 4, 5)...)},
	{0x1CEA5, blocks(lattice(4, 4, 5, 9, 13)...)},
	{0x1CEA6, blocks(lattice(4, 4, 1, 5, 9)...)},
	{0x1CEA7, blocks(lattice(2, 4, 1)...)},
	{0x1CEA8, blocks(lattice(4, 2, 1)...)},
	{0x1CEA9, blocks(lattice(4, 4, 1, 2, 3)...)},
	{0x1CEAA, blocks(lattice(4, 4, 2, 3, 4)...)},
	{0x1CEAB, blocks(lattice(4, 2, 2)...)},
	{0x1CEAC, blocks(lattice(2, 4, 8)...)},
	{0x1CEAD, blocks(lattice(4, 4, 8, 12, 16)...)},
	{0x1CEAE, blocks(lattice(4, 4, 4, 8, 12)...)},
	{0x1CEAF, blocks(lattice(2, 4, 4)...)},

	// sextants, U+1FB00 to U+1FB3B, are appended by init()

	{0x1FB70, blocks(cols(8, 1, 2))},
	{0x1FB71, blocks(cols(8, 2, 3))},
	{0x1FB72, blocks(cols(8, 3, 4))},
	{0x1FB73, blocks(cols(8, 4, 5))},
	{0x1FB74, blocks(cols(8, 5, 6))},
	{0x1FB75, blocks(cols(8, 6, 7))},
	{0x1FB76, blocks(rows(8, 1, 2))},
	{0x1FB77, blocks(rows(8, 2, 3))},
	{0x1FB78, blocks(rows(8, 3, 4))},
	{0x1FB79, blocks(rows(8, 4, 5))},
	{0x1FB7A, blocks(rows(8, 5, 6))},
	{0x1FB7B, blocks(rows(8, 6, 7))},
	{0x1FB7C, blocks(rows(8, 7, 8), cols(8, 0, 1))},
	{0x1FB7D, blocks(rows(8, 0, 1), cols(8, 0, 1))},
	{0x1FB7E, blocks(rows(8, 0, 1), cols(8, 7, 8))},
	{0x1FB7F, blocks(rows(8, 7, 8), cols(8, 7, 8))},
	{0x1FB80, blocks(rows(8, 7, 8), rows(8, 0, 1))},
	{0x1FB81, blocks(rows(8, 7, 8), rows(8, 4, 5), rows(8, 2, 3), rows(8, 0, 1))},
	{0x1FB82, blocks(rows(4, 0, 1))},
	{0x1FB83, blocks(rows(8, 0, 3))},
	{0x1FB84, blocks(rows(8, 0, 5))},
	{0x1FB85, blocks(rows(4, 0, 3))},
	{0x1FB86, blocks(rows(8, 0, 7))},
	{0x1FB87, blocks(cols(4, 3, 4))},
	{0x1FB88, blocks(cols(8, 5, 8))},
	{0x1FB89, blocks(cols(8, 3, 8))},
	{0x1FB8A, blocks(cols(4, 1, 4))},
	{0x1FB8B, blocks(cols(8, 1, 8))},
	{0x1FB8C, shade(128, cols(2, 0, 1))},
	{0x1FB8D, shade(128, cols(2, 1, 2))},
	{0x1FB8E, shade(128, rows(2, 0, 1))},
	{0x1FB8F, shade(128, rows(2, 1, 2))},
	{0x1FB90, inverse(fullBlock)},
	{0x1FB91, inverse(rows(2, 1, 2))},
	{0x1FB92, inverse(rows(2, 0, 1))},
	{0x1FB94, inverse(cols(2, 0, 1))},
	{0x1FB95, blocks(lattice(4, 4, 1, 3, 6, 8, 9, 11, 14, 16)...)},
	{0x1FB96, blocks(lattice(4, 4, 2, 4, 5, 7, 10, 12, 13, 15)...)},
	{0x1FB97, blocks(lattice(4, 1, 2, 4)...)},

	{0x1FBCE, blocks(cols(3, 0, 2))},
	{0x1FBCF, blocks(cols(3, 0, 1))},
	{0x1FBE4, blocks(lattice(2, 4, 2, 3)...)},
	{0x1FBE5, blocks(lattice(2, 4, 6, 7)...)},
	{0x1FBE6, blocks(lattice(4, 2, 3, 5)...)},
	{0x1FBE7, blocks(lattice(4, 2, 4, 6)...)},
}

var blockIndex map[rune]int

// Octant cell masks for U+1CD00 to U+1CDE5, in code point order. Bit n
// stands for octant n + 1, numbered left to right and top to bottom.
var octantMasks []uint8

func init() {
	// sextants skip the patterns already encoded as half blocks
	sextants := make([]struct{ key rune; shape Shape }, 0, 60)
	key := rune(0x1FB00)
	for mask := 1; mask < 63; mask++ {
		if mask == 0b010101 || mask == 0b101010 { continue }
		sextants = append(sextants, struct{ key rune; shape Shape }{ key, blocks(maskCells(3, 2, uint8(mask))...) })
		key += 1
	}
	for i, entry := range blockTable {
		if entry.key > 0x1FB00 {
			tail := append(sextants, blockTable[i : ]...)
			blockTable = append(blockTable[ : i : i], tail...)
			break
		}
	}

	blockIndex = make(map[rune]int, len(blockTable))
	for i, entry := range blockTable {
		blockIndex[entry.key] = i
	}

	// octants skip the patterns encoded elsewhere: quadrant unions,
	// edge quarters, upper and lower eighths and middle quarters
	var encoded [256]bool
	quadrants := [4]uint8{ 0x05, 0x0A, 0x50, 0xA0 }
	for combo := 0; combo < 16; combo++ {
		var mask uint8
		for i, quadrant := range quadrants {
			if combo & (1 << i) != 0 { mask |= quadrant }
		}
		encoded[mask] = true
	}
	for _, mask := range []uint8{ 0x01, 0x02, 0x40, 0x80, 0x03, 0xC0, 0x3F, 0xFC, 0x14, 0x28 } {
		encoded[mask] = true
	}
	octantMasks = make([]uint8, 0, 230)
	for mask := 1; mask < 255; mask++ {
		if !encoded[mask] { octantMasks = append(octantMasks, uint8(mask)) }
	}
	if len(octantMasks) != 0x1CDE5 - 0x1CD00 + 1 { panic("octant table size mismatch") }
}

var fullBlock = Cell{ Cols: 1, Rows: 1, X1: 1, Y1: 1 }

// A full width span of rows [y0, y1) on a lattice with n rows.
func rows(n, y0, y1 uint8) Cell {
	return Cell{ Cols: 1, Rows: n, X0: 0, Y0: y0, X1: 1, Y1: y1 }
}

// A full height span of columns [x0, x1) on a lattice with n columns.
func cols(n, x0, x1 uint8) Cell {
	return Cell{ Cols: n, Rows: 1, X0: x0, Y0: 0, X1: x1, Y1: 1 }
}

// Single cells of a numRows x numCols lattice, numbered from 1 in
// reading order.
func lattice(numRows, numCols uint8, numbers ...uint8) []Cell {
	cells := make([]Cell, 0, len(numbers))
	for _, number := range numbers {
		index := number - 1
		x, y := index % numCols, index / numCols
		cells = append(cells, Cell{ Cols: numCols, Rows: numRows, X0: x, Y0: y, X1: x + 1, Y1: y + 1 })
	}
	return cells
}

// Like lattice(), but with the cells given as a bit mask.
func maskCells(numRows, numCols uint8, mask uint8) []Cell {
	numbers := make([]uint8, 0, bits.OnesCount8(mask))
	for i := uint8(0); i < 8; i++ {
		if mask & (1 << i) != 0 { numbers = append(numbers, i + 1) }
	}
	return lattice(numRows, numCols, numbers...)
}

func octantCells(mask uint8) []Cell { return maskCells(4, 2, mask) }

func blocks(cells ...Cell) Shape {
	return Shape{ Family: FamilyBlocks, Cells: cells }
}

func shade(level uint8, cells ...Cell) Shape {
	return Shape{ Family: FamilyShade, Cells: cells, Level: level }
}

func inverse(shaded Cell) Shape {
	return Shape{ Family: FamilyInverse, Cells: []Cell{ shaded } }
}
