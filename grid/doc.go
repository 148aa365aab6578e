// The grid subpackage computes the coordinate grids and stroke metrics
// used to synthesize procedural glyphs (box drawing, block elements
// and braille patterns) for a given pixel size.
//
// Everything in this package is pure geometry: grids and metrics are
// created once per font size and weight, and they are read-only
// afterwards, so they can be shared freely between goroutines.
package grid
