// The raster subpackage turns vector paths into alpha masks.
//
// Paths are expressed as [sfnt.Segments], the same type used for font
// glyph outlines, so both procedurally built shapes and outlines loaded
// from font files go through the same code. Paths can be filled or
// stroked; strokes support butt and square caps, miter joins and dash
// patterns.
//
// The actual coverage computation is delegated to
// [golang.org/x/image/vector]. The returned masks have their bounds set
// to their placement in the path coordinate space, so a mask can be
// drawn directly at its Rect.Min.
package raster
