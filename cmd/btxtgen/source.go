package main

import "bytes"
import "go/format"
import "image"
import "strconv"
import "strings"

import "github.com/pkg/errors"

import "github.com/tinne26/btxt"
import "github.com/tinne26/btxt/charmap"
import "github.com/tinne26/btxt/font"
import "github.com/tinne26/btxt/glyph"
import "github.com/tinne26/btxt/mix"

// Parameters of a generated source file.
type source struct {
	Package string
	Variable string
	Font *font.BitmapFont
	Kerning map[string][]charmap.KernPair
	Preview string // sample text drawn in the header comment, can be empty
	Args []string // command line, recorded in the header comment
}

// Returns the formatted Go source declaring the font.
func (self *source) generate() ([]byte, error) {
	var out bytes.Buffer
	out.WriteString("// Code generated by btxtgen. DO NOT EDIT.\n")
	if len(self.Args) > 0 {
		out.WriteString("//\n//   btxtgen " + strings.Join(self.Args, " ") + "\n")
	}
	if self.Preview != "" {
		preview, err := previewLines(self.Font, self.Preview)
		if err != nil { return nil, err }
		out.WriteString("//\n")
		for _, line := range preview {
			prefix := "//   "
			if line == "" { prefix = "//" }
			out.WriteString(prefix + line + "\n")
		}
	}
	out.WriteString("\npackage " + self.Package + "\n\n")
	out.WriteString("import \"github.com/tinne26/btxt/charmap\"\n")
	out.WriteString("import \"github.com/tinne26/btxt/font\"\n")
	out.WriteString("import \"github.com/tinne26/btxt/glyph\"\n\n")

	bitmapFont := self.Font
	out.WriteString("var " + self.Variable + " = &font.BitmapFont{\n")
	out.WriteString("Charmap: charmap.New([]charmap.Entry{\n")
	bitmapFont.Charmap.Entries(func(entry *charmap.Entry) bool {
		self.writeEntry(&out, entry)
		return true
	})
	fallback := bitmapFont.Charmap.Fallback()
	out.WriteString("}, charmap.Entry{ AdvanceChars: 1, AdvanceWidthTo: charmap.Advance(" +
		formatFloat(fallback.AdvanceWidth()) + ") }),\n")
	out.WriteString("Metrics: font.Metrics{ Ascent: " + strconv.Itoa(bitmapFont.Metrics.Ascent) +
		", Descent: " + strconv.Itoa(bitmapFont.Metrics.Descent) + " },\n")
	writeDecoration(&out, "Underline", bitmapFont.Underline)
	writeDecoration(&out, "Strikethrough", bitmapFont.Strikethrough)
	out.WriteString("BitDepth: " + strconv.Itoa(bitmapFont.BitDepth) + ",\n}\n")

	formatted, err := format.Source(out.Bytes())
	if err != nil { return nil, errors.Wrap(err, "format generated source") }
	return formatted, nil
}

func (self *source) writeEntry(out *bytes.Buffer, entry *charmap.Entry) {
	out.WriteString("{ Key: " + strconv.Quote(entry.Key) + ", Glyph: glyph.Link([]glyph.Glyph{\n")
	for g := entry.Glyph; g != nil; g = g.Next { writeGlyph(out, g) }
	out.WriteString("}),\n")

	advance := formatFloat(entry.AdvanceWidth())
	pairs := self.Kerning[entry.Key]
	if len(pairs) == 0 {
		out.WriteString("AdvanceWidthTo: charmap.Advance(" + advance + ") },\n")
		return
	}
	out.WriteString("AdvanceWidthTo: charmap.Kerning(" + advance + ", []charmap.KernPair{\n")
	for _, pair := range pairs {
		out.WriteString("{ Next: " + strconv.Quote(pair.Next) + ", Kern: " + formatFloat(pair.Kern) + " },\n")
	}
	out.WriteString("}) },\n")
}

func writeGlyph(out *bytes.Buffer, g *glyph.Glyph) {
	out.WriteString("{ ID: " + strconv.Itoa(int(g.ID)))
	if g.XOffset != 0 { out.WriteString(", XOffset: " + formatFloat(g.XOffset)) }
	if g.YOffset != 0 { out.WriteString(", YOffset: " + formatFloat(g.YOffset)) }
	out.WriteString(", Positions: " + strconv.Itoa(g.Positions))
	out.WriteString(", BitDepth: " + strconv.Itoa(g.BitDepth))
	out.WriteString(", AdvanceWidth: " + formatFloat(g.AdvanceWidth))
	out.WriteString(", Images: []glyph.Image{\n")
	for i := range g.Images {
		img := &g.Images[i]
		out.WriteString("{ Left: " + strconv.Itoa(img.Left) + ", Top: " + strconv.Itoa(img.Top) +
			", Width: " + strconv.Itoa(img.Width) + ", Height: " + strconv.Itoa(img.Height) +
			", Data: []uint8(" + strconv.Quote(string(img.Data)) + ") },\n")
	}
	out.WriteString("} },\n")
}

func writeDecoration(out *bytes.Buffer, field string, decoration font.Decoration) {
	out.WriteString(field + ": font.Decoration{ YOffset: " + strconv.Itoa(decoration.YOffset) +
		", StrokeWidth: " + strconv.Itoa(decoration.StrokeWidth) + " },\n")
}

func formatFloat(value float32) string {
	return strconv.FormatFloat(float64(value), 'g', -1, 32)
}

// ---- preview ----

const previewRamp = " .:-=+*#%@"

// Draws the text with the font and returns it as ascii art, one
// string per pixel row.
func previewLines(bitmapFont *font.BitmapFont, text string) ([]string, error) {
	renderer := btxt.NewRenderer(bitmapFont, mix.Gray8)
	metrics := renderer.MeasureString(text, image.Point{}, btxt.BaselineTop)
	bounds := metrics.BoundingBox
	bounds.Max.X = max(bounds.Max.X, metrics.NextPosition.X)
	if bounds.Empty() { return nil, nil }

	img := image.NewGray(bounds)
	target := btxt.NewDrawImageTarget(img, mix.Gray8)
	_, err := renderer.DrawString(target, text, image.Point{}, btxt.BaselineTop)
	if err != nil { return nil, errors.Wrap(err, "draw preview") }

	lines := make([]string, 0, bounds.Dy())
	var line strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		line.Reset()
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			value := int(img.GrayAt(x, y).Y)
			line.WriteByte(previewRamp[value*(len(previewRamp) - 1)/255])
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return lines, nil
}
