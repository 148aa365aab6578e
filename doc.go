// btxt is a package for drawing bitmap text on pixel-addressable
// surfaces, like small displays or game framebuffers.
//
// Bitmap fonts are built ahead of time from synthesized box-drawing,
// block and braille glyphs plus, optionally, glyphs rasterized from
// an outline font:
//   config := synth.Config{ PixelsPerEm: 15, Hint: true, Positions: 4, BitDepth: 4 }
//   bitmapFont, err := font.Build(ctx, config, "╔═══╗")
//   if err != nil { ... }
//
// The cmd/btxtgen tool writes the same fonts as static Go source, so
// they can be embedded without any parsing at runtime.
//
// Then, you create a [Renderer] and draw on a [Target]:
//   renderer := btxt.NewRenderer(bitmapFont, mix.Gray8)
//   target := btxt.NewDrawImageTarget(img, mix.Gray8)
//   next, err := renderer.DrawString(target, "╚═══╝", pt, btxt.BaselineTop)
//
// Renderers remember the right edge of the last glyph they drew, so
// text drawn piece by piece with [Renderer.DrawString]() and
// [Renderer.DrawWhitespace]() blends correctly at the seams, even when
// the colors change between calls.
package btxt
