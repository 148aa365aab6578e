package glyph

import "image"
import "testing"

import "github.com/google/go-cmp/cmp"

import "github.com/tinne26/btxt/fract"

func TestFromAlpha(t *testing.T) {
	mask := image.NewAlpha(image.Rect(-1, 3, 2, 5))
	copy(mask.Pix, []uint8{0, 128, 255, 17, 200, 90})

	img := FromAlpha(mask, 10, 2)
	expected := Image{
		Left: -1, Top: 7, Width: 3, Height: 2,
		Data: []uint8{0, 2, 3, 0, 2, 1},
	}
	if diff := cmp.Diff(expected, img); diff != "" {
		t.Fatalf("image mismatch (-want +got):\n%s", diff)
	}
	if img.At(2, 0) != 3 { t.Fatalf("expected level 3, got %d", img.At(2, 0)) }
	if img.Bounds(10, 20) != image.Rect(9, 13, 12, 15) {
		t.Fatalf("unexpected placement %v", img.Bounds(10, 20))
	}

	empty := FromAlpha(nil, 10, 4)
	if !empty.Empty() { t.Fatalf("expected empty image") }
}

func TestImageEqual(t *testing.T) {
	a := Image{ Left: 1, Top: 4, Width: 2, Height: 1, Data: []uint8{3, 0} }
	b := a
	b.Data = []uint8{3, 0}
	if !a.Equal(&b) { t.Fatalf("expected equal images") }
	b.Data[1] = 1
	if a.Equal(&b) { t.Fatalf("expected different levels to make images different") }
	c := a
	c.Left = 0
	if a.Equal(&c) { t.Fatalf("expected different placements to make images different") }
	if !(&Image{}).Equal(&Image{}) { t.Fatalf("expected empty images to be equal") }
}

func TestImageAt(t *testing.T) {
	glyph := Glyph{ Positions: 4, Images: make([]Image, 4) }
	for i := range glyph.Images { glyph.Images[i].Left = i }

	tests := []struct { x fract.Unit; index int }{
		{0, 0}, {15, 0}, {16, 1}, {32, 2}, {63, 3}, {64, 0}, {64*5 + 40, 2}, {-16, 3},
	}
	for _, test := range tests {
		img := glyph.ImageAt(test.x)
		if img.Left != test.index {
			t.Fatalf("x = %v: expected image #%d, got #%d", test.x, test.index, img.Left)
		}
	}

	shared := Glyph{ Positions: 4, Images: make([]Image, 1) }
	if shared.ImageAt(48) != &shared.Images[0] { t.Fatalf("expected the shared image") }
	if (&Glyph{ Positions: 4 }).ImageAt(0) != nil { t.Fatalf("expected nil image") }
}

func TestLink(t *testing.T) {
	head := Link([]Glyph{ {ID: 1, AdvanceWidth: 7}, {ID: 2, XOffset: -7}, {ID: 3, XOffset: -7} })
	if head.ChainLen() != 3 { t.Fatalf("expected chain of 3, got %d", head.ChainLen()) }
	var ids []uint16
	for glyph := head; glyph != nil; glyph = glyph.Next { ids = append(ids, glyph.ID) }
	if diff := cmp.Diff([]uint16{1, 2, 3}, ids); diff != "" {
		t.Fatalf("chain mismatch (-want +got):\n%s", diff)
	}
	if Link(nil) != nil { t.Fatalf("expected nil chain") }

	head.Images = []Image{ {Width: 2, Height: 2, Data: make([]uint8, 4)} }
	expected := 3*glyphOverhead + 4 + imageOverhead
	if head.ByteSize() != expected { t.Fatalf("expected %d bytes, got %d", expected, head.ByteSize()) }
}
