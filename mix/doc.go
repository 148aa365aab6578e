// Package mix implements the fixed point color math used to build
// colormaps and to blend overlapping glyph pixels.
//
// Colors are represented by [Color], a small value type tagged with
// the [Format] of the target surface. All the operations work on raw
// integer channels and are exactly reproducible: there's no floating
// point involved, so repeated calls never accumulate error.
package mix
