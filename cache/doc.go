// The cache subpackage provides the [Table] where synthesized glyphs
// are collected while a bitmap font is being built.
//
// Tables are concurrent-safe and designed for a "compute, then insert
// if absent" workflow: workers check whether a key is already present,
// render the glyphs outside of any lock and finally insert them. If two
// workers race on the same key, the second insert is a no-op, so the
// worst case is some duplicated work, never a corrupted entry.
//
// Tables also keep track of the approximate memory taken by the glyph
// images, which can be useful to decide how many sub-pixel positions or
// bits per pixel can be afforded for a font.
package cache
