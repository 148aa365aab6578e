package font

import "context"
import "strings"
import "testing"
import "testing/fstest"

import "golang.org/x/image/font/gofont/gomono"
import "github.com/google/go-cmp/cmp"

import "github.com/tinne26/btxt/synth"

func TestParse(t *testing.T) {
	font, name, err := ParseFromBytes(gomono.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if !strings.Contains(name, "Go Mono") { t.Fatalf("expected a Go Mono name, got %q", name) }

	missing, err := MissingRunes(font, "abcé€一二一")
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if diff := cmp.Diff([]rune{'一', '二'}, missing); diff != "" {
		t.Fatalf("missing runes mismatch (-want +got):\n%s", diff)
	}

	filesys := fstest.MapFS{ "fonts/mono.ttf": &fstest.MapFile{ Data: gomono.TTF } }
	_, name, err = ParseFromFS(filesys, "fonts/mono.ttf")
	if err != nil || !strings.Contains(name, "Go Mono") { t.Fatalf("unexpected result %q, %v", name, err) }

	for _, path := range []string{"mono.png", "ttf", "fonts/missing.ttf"} {
		if _, _, err := ParseFromFS(filesys, path); err == nil {
			t.Fatalf("expected error for %q", path)
		}
	}
	if _, _, err := ParseFromPath("not_a_font.txt"); err == nil { t.Fatalf("expected error for bad extension") }
}

func TestMetricsYOffset(t *testing.T) {
	metrics := Metrics{ Ascent: 18, Descent: 4 }
	tests := []struct {
		in Baseline
		out int
	}{
		{BaselineAlphabetic, 0}, {BaselineTop, 18}, {BaselineBottom, -4}, {BaselineMiddle, 7},
	}
	for i, test := range tests {
		if got := metrics.YOffset(test.in); got != test.out {
			t.Fatalf("test #%d (%s): expected %d, got %d", i, test.in, test.out, got)
		}
	}
	if metrics.LineHeight() != 22 { t.Fatalf("expected line height 22, got %d", metrics.LineHeight()) }
}

func TestBuild(t *testing.T) {
	sfntFont, _, err := ParseFromBytes(gomono.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	config := synth.Config{
		PixelsPerEm: 15, Hint: true, Positions: 4, BitDepth: 4,
		Outline: synth.NewOutlineSource(sfntFont),
	}
	font, err := Build(context.Background(), config, "AV ╔═╗")
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	if font.Metrics != (Metrics{ Ascent: 18, Descent: 4 }) {
		t.Fatalf("unexpected metrics %+v", font.Metrics)
	}
	if font.Charmap.Len() != 6 { t.Fatalf("expected 6 entries, got %d", font.Charmap.Len()) }
	if font.Levels() != 16 { t.Fatalf("expected 16 levels, got %d", font.Levels()) }

	entry := font.Charmap.Get("═╗")
	if entry.Key != "═" || entry.Glyph == nil { t.Fatalf("expected the double horizontal entry") }
	if entry.AdvanceWidthTo("╗") != 7.5 { t.Fatalf("expected advance 7.5, got %v", entry.AdvanceWidthTo("╗")) }

	fallback := font.Charmap.Get("x")
	if fallback.Glyph != nil || fallback.AdvanceWidth() != 7.5 {
		t.Fatalf("expected a blank halfwidth fallback")
	}
	if font.Underline.StrokeWidth != 1 || font.Underline.YOffset >= 0 {
		t.Fatalf("unexpected underline %+v", font.Underline)
	}
	if font.Strikethrough.YOffset <= 0 { t.Fatalf("unexpected strikethrough %+v", font.Strikethrough) }
}
