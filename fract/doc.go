// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, used by the renderer to keep track of the pen
// position while advancing through glyphs with fractional advance
// widths, and by the rasterizer to express sub-pixel origins.
//
// The internal representation is compatible with
// [golang.org/x/image/math/fixed.Int26_6], so conversions to and
// from sfnt segment coordinates are free.
package fract
