// The font subpackage defines the [BitmapFont] type used by btxt
// renderers, and helper functions to parse the vector fonts that
// bitmap fonts can be built from.
//
// Bitmap fonts are usually generated ahead of time with the btxtgen
// command and embedded as static Go data, but they can also be built
// in memory with [Build]().
package font
