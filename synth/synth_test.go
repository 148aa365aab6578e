package synth

import "context"
import "errors"
import "image"
import "testing"

import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/sfnt"
import "github.com/google/go-cmp/cmp"

import "github.com/tinne26/btxt/glyph"
import "github.com/tinne26/btxt/grid"

func testMetrics() *grid.Metrics {
	return grid.NewMetrics(grid.Config{ PixelsPerEm: 15, Hint: true })
}

func mustLookup(t *testing.T, r rune) Drawing {
	drawing, found := Lookup(r)
	if !found { t.Fatalf("expected %q to have a drawing", r) }
	return drawing
}

func TestRenderFullBlock(t *testing.T) {
	masks, err := mustLookup(t, '█').Render(testMetrics(), grid.Point{})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(masks) != 1 { t.Fatalf("expected 1 mask, got %d", len(masks)) }
	if masks[0].Bounds() != image.Rect(0, 0, 7, 22) {
		t.Fatalf("expected bounds %v, got %v", image.Rect(0, 0, 7, 22), masks[0].Bounds())
	}
	for _, value := range masks[0].Pix {
		if value != 255 { t.Fatalf("expected full coverage, got %d", value) }
	}
}

func TestRenderLightHorizontal(t *testing.T) {
	masks, err := mustLookup(t, '─').Render(testMetrics(), grid.Point{})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	bounds := masks[0].Bounds()
	if bounds.Min.Y != 11 || bounds.Max.Y != 12 {
		t.Fatalf("expected a single row at y = 11, got %v", bounds)
	}
	for x := 1; x < 7; x++ {
		if a := masks[0].AlphaAt(x, 11).A; a != 255 {
			t.Fatalf("expected full coverage at x = %d, got %d", x, a)
		}
	}
}

func TestRenderShadeLevels(t *testing.T) {
	for _, test := range []struct{ in rune; level uint8 }{{'░', 64}, {'▒', 128}, {'▓', 192}} {
		masks, err := mustLookup(t, test.in).Render(testMetrics(), grid.Point{})
		if err != nil { t.Fatalf("unexpected error: %s", err) }
		for _, value := range masks[0].Pix {
			if value != test.level {
				t.Fatalf("expected level %d for %q, got %d", test.level, test.in, value)
			}
		}
	}
}

func TestRenderInverseShade(t *testing.T) {
	masks, err := mustLookup(t, 0x1FB91).Render(testMetrics(), grid.Point{})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	mask := masks[0]
	if a := mask.AlphaAt(3, 2).A; a != 255 { t.Fatalf("expected solid upper half, got %d", a) }
	if a := mask.AlphaAt(3, 20).A; a != 255 - 31 { t.Fatalf("expected shaded lower half, got %d", a) }
}

func TestRenderMixedWeightsAsChain(t *testing.T) {
	metrics := testMetrics()
	glyphs, err := Scale(mustLookup(t, '┍'), metrics, 4, 4)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(glyphs) != 2 { t.Fatalf("expected 2 glyphs, got %d", len(glyphs)) }
	if glyphs[0].ID != 1056 || glyphs[1].ID != 1057 {
		t.Fatalf("expected ids 1056 and 1057, got %d and %d", glyphs[0].ID, glyphs[1].ID)
	}
	if glyphs[0].AdvanceWidth != 7.5 || glyphs[0].XOffset != 0 {
		t.Fatalf("unexpected head advance %v and offset %v", glyphs[0].AdvanceWidth, glyphs[0].XOffset)
	}
	if glyphs[1].AdvanceWidth != 0 || glyphs[1].XOffset != -7.5 {
		t.Fatalf("unexpected tail advance %v and offset %v", glyphs[1].AdvanceWidth, glyphs[1].XOffset)
	}
	for i := range glyphs {
		if len(glyphs[i].Images) != 4 { t.Fatalf("expected 4 images, got %d", len(glyphs[i].Images)) }
		if glyphs[i].Positions != 4 || glyphs[i].BitDepth != 4 {
			t.Fatalf("unexpected glyph parameters %d and %d", glyphs[i].Positions, glyphs[i].BitDepth)
		}
	}
	if glyph.Link(glyphs).ChainLen() != 2 { t.Fatalf("expected chain of length 2") }
}

func TestScaleFullBlock(t *testing.T) {
	glyphs, err := Scale(mustLookup(t, '█'), testMetrics(), 2, 4)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(glyphs) != 1 || len(glyphs[0].Images) != 2 {
		t.Fatalf("expected a single glyph with 2 images")
	}
	img := glyphs[0].Images[0]
	if img.Left != 0 || img.Top != 18 || img.Width != 7 || img.Height != 22 {
		t.Fatalf("unexpected image placement %d, %d, %dx%d", img.Left, img.Top, img.Width, img.Height)
	}
	for _, level := range img.Data {
		if level != 15 { t.Fatalf("expected level 15, got %d", level) }
	}
	if glyphs[0].Images[1].Width != 8 {
		t.Fatalf("expected shifted image to span 8 pixels, got %d", glyphs[0].Images[1].Width)
	}
}

func TestScaleCodeFontsOnce(t *testing.T) {
	metrics := grid.NewMetrics(grid.Config{ PixelsPerEm: 15, Hint: true, Code: true, WidthUnits: 100 })
	glyphs, err := Scale(mustLookup(t, '▌'), metrics, 4, 2)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(glyphs[0].Images) != 1 { t.Fatalf("expected 1 image, got %d", len(glyphs[0].Images)) }
	if glyphs[0].AdvanceWidth != 7 { t.Fatalf("expected advance 7, got %v", glyphs[0].AdvanceWidth) }
}

func TestScaleSharesImages(t *testing.T) {
	glyphs, err := Scale(mustLookup(t, '⠀'), testMetrics(), 4, 4)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(glyphs) != 1 || len(glyphs[0].Images) != 1 {
		t.Fatalf("expected a single glyph with a single shared image")
	}
	if glyphs[0].Positions != 4 { t.Fatalf("expected 4 positions, got %d", glyphs[0].Positions) }
	if glyphs[0].ImageAt(48) != &glyphs[0].Images[0] { t.Fatalf("expected the shared image at every position") }

	// images that differ are all kept
	glyphs, err = Scale(mustLookup(t, '█'), testMetrics(), 4, 4)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(glyphs[0].Images) != 4 { t.Fatalf("expected 4 images, got %d", len(glyphs[0].Images)) }

	img := glyph.Image{ Width: 1, Height: 1, Data: []uint8{9} }
	if len(shareImages([]glyph.Image{img, img, img})) != 1 { t.Fatalf("expected equal images to be shared") }
	other := glyph.Image{ Width: 1, Height: 1, Data: []uint8{8} }
	if len(shareImages([]glyph.Image{img, img, other})) != 3 { t.Fatalf("expected different images to be kept") }
}

func TestScaleTooSmall(t *testing.T) {
	metrics := grid.NewMetrics(grid.Config{ PixelsPerEm: 1 })
	glyphs, err := Scale(mustLookup(t, '█'), metrics, 4, 4)
	if err != nil || glyphs != nil { t.Fatalf("expected no glyphs and no error, got %v, %v", glyphs, err) }
}

func TestScalePanics(t *testing.T) {
	drawing, metrics := mustLookup(t, '█'), testMetrics()
	if !panics(func() { Scale(drawing, metrics, 0, 4) }) { t.Fatalf("expected panic on zero positions") }
	if !panics(func() { Scale(drawing, metrics, 4, 9) }) { t.Fatalf("expected panic on bit depth 9") }
}

func TestScaleUnknownFamily(t *testing.T) {
	_, err := Scale(Drawing{ ID: 7, Key: 'x' }, testMetrics(), 1, 1)
	if err == nil { t.Fatalf("expected error for a drawing without shape") }
}

func TestScaleIsDeterministic(t *testing.T) {
	metrics := testMetrics()
	for _, r := range []rune{'╔', '┅', '╰', '╳', '▚', '⡇', 0x1FB94} {
		a, err := Scale(mustLookup(t, r), metrics, 4, 4)
		if err != nil { t.Fatalf("unexpected error: %s", err) }
		b, err := Scale(mustLookup(t, r), metrics, 4, 4)
		if err != nil { t.Fatalf("unexpected error: %s", err) }
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("%q glyphs differ between runs (-first +second):\n%s", r, diff)
		}
	}
}

func TestBraillePlaceholders(t *testing.T) {
	metrics := testMetrics()
	blank := mustLookup(t, '⠀')
	masks, err := blank.Render(metrics, grid.Point{})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if masks[0] != nil { t.Fatalf("expected no mask for blank braille") }

	blank.Shape.Placeholders = true
	masks, err = blank.Render(metrics, grid.Point{})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if masks[0] == nil { t.Fatalf("expected placeholder mask") }
}

func TestConfigValidate(t *testing.T) {
	valid := Config{ PixelsPerEm: 15, Positions: 4, BitDepth: 4 }
	if err := valid.Validate(); err != nil { t.Fatalf("unexpected error: %s", err) }

	invalid := []func(*Config){
		func(c *Config) { c.PixelsPerEm = 0 },
		func(c *Config) { c.PixelsPerEm = -3 },
		func(c *Config) { c.Positions = 0 },
		func(c *Config) { c.Positions = MaxPositions + 1 },
		func(c *Config) { c.BitDepth = 0 },
		func(c *Config) { c.BitDepth = 9 },
		func(c *Config) { c.WidthUnits = 101 },
		func(c *Config) { c.Workers = -1 },
		func(c *Config) { c.MaxBytes = -1 },
	}
	for i, modify := range invalid {
		config := valid
		modify(&config)
		if err := config.Validate(); err == nil { t.Fatalf("case #%d: expected error", i) }
	}
}

func testOutline(t *testing.T) *OutlineSource {
	font, err := sfnt.Parse(gomono.TTF)
	if err != nil { t.Fatalf("failed to parse gomono: %s", err) }
	return NewOutlineSource(font)
}

const testText = "Hello, world! ┏━┓┃ ╔═╗║ ╭─╮ ░▒▓█ ▘▝▖▗ ⠁⠂⣿ 🬀🬁 \U0001CD00"

func TestBuildWorkerEquality(t *testing.T) {
	outline := testOutline(t)
	config := Config{ PixelsPerEm: 15, Hint: true, Positions: 4, BitDepth: 4, Outline: outline }
	config.Workers = 1
	single, err := Build(context.Background(), config, testText)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	config.Workers = 5
	multi, err := Build(context.Background(), config, testText, "═══")
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	if diff := cmp.Diff(single.Keys(), multi.Keys()); diff != "" {
		t.Fatalf("key mismatch (-single +multi):\n%s", diff)
	}
	for _, key := range single.Keys() {
		a, _ := single.Get(key)
		b, _ := multi.Get(key)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("glyph mismatch for %q (-single +multi):\n%s", key, diff)
		}
	}
	if single.ApproxByteSize() != multi.ApproxByteSize() {
		t.Fatalf("expected equal sizes, got %d and %d", single.ApproxByteSize(), multi.ApproxByteSize())
	}
}

func TestBuildOutlineGlyphs(t *testing.T) {
	config := Config{ PixelsPerEm: 15, Positions: 2, BitDepth: 8, Outline: testOutline(t) }
	table, err := Build(context.Background(), config, "A 一")
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	glyphs, found := table.Get("A")
	if !found { t.Fatalf("expected 'A' in the table") }
	if glyphs[0].ID <= BaseIDOutline { t.Fatalf("expected outline id, got %d", glyphs[0].ID) }
	if glyphs[0].AdvanceWidth <= 0 { t.Fatalf("expected positive advance, got %v", glyphs[0].AdvanceWidth) }
	if len(glyphs[0].Images) != 2 || glyphs[0].Images[0].Empty() {
		t.Fatalf("expected 2 non-empty images")
	}

	space, found := table.Get(" ")
	if !found { t.Fatalf("expected ' ' in the table") }
	if len(space[0].Images) != 1 || !space[0].Images[0].Empty() {
		t.Fatalf("expected a single shared empty image for space")
	}
	if _, found := table.Get("一"); found { t.Fatalf("expected missing rune to be skipped") }

	withoutOutline, err := Build(context.Background(), Config{ PixelsPerEm: 15, Positions: 1, BitDepth: 1 }, "A█")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if withoutOutline.Len() != 1 { t.Fatalf("expected only the block glyph, got %d", withoutOutline.Len()) }
}

func TestBuildIntoSkipsPresentKeys(t *testing.T) {
	config := Config{ PixelsPerEm: 15, Positions: 1, BitDepth: 4 }
	table, err := Build(context.Background(), config, "█")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	before, _ := table.Get("█")

	config.PixelsPerEm = 30
	err = BuildInto(context.Background(), table, config, "█▀")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	after, _ := table.Get("█")
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("present key was replaced (-before +after):\n%s", diff)
	}
	if table.Len() != 2 { t.Fatalf("expected 2 entries, got %d", table.Len()) }
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, Config{ PixelsPerEm: 15, Positions: 1, BitDepth: 1 }, "█▀▄")
	if !errors.Is(err, context.Canceled) { t.Fatalf("expected context.Canceled, got %v", err) }

	_, err = Build(context.Background(), Config{}, "█")
	if err == nil { t.Fatalf("expected invalid config error") }
}

func TestKernWithoutTable(t *testing.T) {
	outline := testOutline(t)
	var buffer sfnt.Buffer
	if !outline.Has(&buffer, 'A') || outline.Has(&buffer, '一') {
		t.Fatalf("unexpected glyph coverage")
	}
	if _, err := outline.Kern(&buffer, 'A', 'V', 15); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	kern, err := outline.Kern(&buffer, 'A', '一', 15)
	if kern != 0 || err != nil { t.Fatalf("expected zero kern for missing glyph, got %v, %v", kern, err) }
}

func panics(function func()) (didPanic bool) {
	defer func() { didPanic = (recover() != nil) }()
	function()
	return
}
