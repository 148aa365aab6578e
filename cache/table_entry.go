package cache

import "github.com/tinne26/btxt/glyph"

// A stored glyph chain with its precomputed size.
type tableEntry struct {
	Glyphs []glyph.Glyph // Read-only.
	ByteSize uint32 // Read-only.
}

// Creates a new table entry for the given glyphs. The slice is copied,
// so later modifications on the caller side can't leak into the table.
func newTableEntry(key string, glyphs []glyph.Glyph) *tableEntry {
	stored := make([]glyph.Glyph, len(glyphs))
	copy(stored, glyphs)
	return &tableEntry{
		Glyphs: stored,
		ByteSize: glyphsByteSize(key, stored),
	}
}

const constEntrySizeFactor = 56

func glyphsByteSize(key string, glyphs []glyph.Glyph) uint32 {
	size := len(key) + constEntrySizeFactor
	for i := range glyphs {
		unlinked := glyphs[i]
		unlinked.Next = nil // links are not owned by the entry
		size += unlinked.ByteSize()
	}
	return uint32(size)
}
