// The synth subpackage generates bitmap glyphs procedurally for box
// drawing, block element and braille characters, and rasterizes outline
// glyphs from sfnt fonts for everything else.
//
// Procedural shapes are described by a static table that maps each
// supported rune to a [Drawing]: an id, the rune itself and a [Shape]
// descriptor. Shapes are rendered on the grids of a [grid.Metrics] by
// one function per shape family, and [Scale]() turns the rendered masks
// into quantized [glyph.Glyph] chains with one image per sub-pixel
// position.
//
// [Build]() synthesizes a whole character set concurrently and collects
// the results in a [cache.Table].
package synth
