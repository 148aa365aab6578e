package mix

import "image/color"
import "testing"

import "github.com/google/go-cmp/cmp"

func TestConvertChannel(t *testing.T) {
	tests := []struct { size int; value, start, end, expected uint8 }{
		{256, 255, 0, 255, 255},
		{256, 255, 0, 128, 128},
		{256, 128, 0, 128, 64},
		{256, 128, 0, 64, 32},
		{256, 64, 0, 64, 16},

		{256, 255, 255, 0, 0},
		{256, 255, 255, 128, 128},
		{256, 128, 255, 128, 255 - 128/2},
		{256, 128, 255, 64, 255 - 128/4*3},
		{256, 64, 255, 64, 255 - 64/4*3},

		{32, 31, 0, 255, 255},
		{16, 15, 0, 255, 255},
		{8, 7, 0, 255, 255},
		{4, 3, 0, 255, 255},
		{2, 1, 0, 255, 255},
	}
	for i, test := range tests {
		got := convertChannel(test.value, test.start, test.end, test.size)
		if got != test.expected {
			t.Fatalf("test #%d (size %d, %d in %d..%d): expected %d, got %d", i, test.size, test.value, test.start, test.end, test.expected, got)
		}
	}
}

func TestLinearEndpoints(t *testing.T) {
	for _, size := range []int{2, 4, 16, 256} {
		for start := 0; start < 256; start++ {
			for end := 0; end < 256; end++ {
				s, e := uint8(start), uint8(end)
				first := convertChannel(0, s, e, size)
				last  := convertChannel(uint8(size - 1), s, e, size)
				if first != s || last != e {
					t.Fatalf("size %d, %d..%d: expected endpoints (%d, %d), got (%d, %d)", size, s, e, s, e, first, last)
				}
			}
		}
	}
}

func TestLinearColormap(t *testing.T) {
	gray := Linear(Luma(Gray8, 0), Luma(Gray8, 128), 256)
	if gray.Size() != 256 { t.Fatalf("expected size 256, got %d", gray.Size()) }
	if gray.At(128) != Luma(Gray8, 64) { t.Fatalf("expected Gray8(64), got %v", gray.At(128)) }
	inverse := Linear(Luma(Gray8, 255), Luma(Gray8, 128), 256)
	if inverse.At(128) != Luma(Gray8, 191) { t.Fatalf("expected Gray8(191), got %v", inverse.At(128)) }

	start, end := RGB(RGB565, 31, 0, 4), RGB(RGB565, 0, 63, 20)
	for _, size := range []int{2, 4, 16, 256} {
		colormap := Linear(start, end, size)
		if colormap.First() != start || colormap.Last() != end {
			t.Fatalf("size %d: expected endpoints %v and %v, got %v and %v", size, start, end, colormap.First(), colormap.Last())
		}
	}

	off, on := Luma(Binary, 0), Luma(Binary, 1)
	binary := Linear(off, on, 16)
	for level := 0; level < 16; level++ {
		expected := on
		if level < 8 { expected = off }
		if binary.At(uint8(level)) != expected {
			t.Fatalf("binary level %d: expected %v, got %v", level, expected, binary.At(uint8(level)))
		}
	}

	// levels wrap around the colormap size
	small := Linear(Luma(Gray2, 0), Luma(Gray2, 3), 4)
	if small.At(5) != small.At(1) { t.Fatalf("expected level 5 to wrap to level 1") }
}

func TestLinearPanics(t *testing.T) {
	cases := []func(){
		func() { Linear(Luma(Gray8, 0), Luma(Gray8, 1), 1) },
		func() { Linear(Luma(Gray8, 0), Luma(Gray8, 1), 257) },
		func() { Linear(Luma(Gray8, 0), Luma(Gray4, 1), 16) },
		func() { Luma(Gray2, 4) },
		func() { RGB(RGB565, 32, 0, 0) },
		func() { RGB(Gray8, 1, 1, 1) },
	}
	for i, fn := range cases {
		if !panics(fn) { t.Fatalf("case #%d: expected panic", i) }
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct { coverage uint8; bitDepth int; expected uint8 }{
		{0, 4, 0}, {255, 4, 15}, {136, 4, 8}, {127, 1, 0}, {128, 1, 1},
		{255, 2, 3}, {42, 3, 1}, {200, 8, 200},
	}
	for i, test := range tests {
		got := Quantize(test.coverage, test.bitDepth)
		if got != test.expected {
			t.Fatalf("test #%d: expected %d, got %d", i, test.expected, got)
		}
	}

	data := []uint8{0, 17, 128, 255}
	QuantizeData(data, 2)
	if diff := cmp.Diff([]uint8{0, 0, 2, 3}, data); diff != "" {
		t.Fatalf("QuantizeData mismatch (-want +got):\n%s", diff)
	}
	if !panics(func() { Quantize(1, 9) }) { t.Fatalf("expected panic for bit depth 9") }
}

func TestScreenChannel(t *testing.T) {
	tests := []struct { first, second, start, end, expected uint8 }{
		{255, 255, 0, 255, 255},
		{128, 128, 0, 255, 128 + 128/2},
		{64, 64, 0, 255, 64 + 64/4*3},
		{32, 32, 0, 255, 32 + 32/8*7},
		{0, 0, 0, 255, 0},

		{255, 255, 255, 0, 255},
		{224, 224, 255, 0, 224 - 224/8},
		{192, 192, 255, 0, 192 - 192/4},
		{128, 128, 255, 0, 128 - 128/2},
		{0, 0, 255, 0, 0},

		{255, 0, 0, 255, 255},
		{128, 64, 0, 255, 128 + 64/2},
		{128, 32, 0, 255, 128 + 32/2},
		{64, 128, 0, 255, 64 + 128/4*3},
		{32, 128, 0, 255, 32 + 128/8*7},

		{255, 0, 255, 0, 0},
		{224, 192, 255, 0, 224/4*3},
		{224, 128, 255, 0, 224/2},
		{192, 224, 255, 0, 192/8*7},
		{128, 224, 255, 0, 128/8*7},

		{128, 128, 0, 128, 128},
		{64, 64, 0, 128, 64 + 64/2},
		{64, 64, 0, 64, 64},
		{32, 32, 0, 64, 32 + 32/2},
		{32, 32, 0, 32, 32},

		{128, 128, 128, 0, 128},
		{128, 64, 128, 0, 64},
		{128, 32, 128, 0, 32},
		{64, 128, 128, 0, 64},
		{32, 128, 128, 0, 32},

		{255, 255, 255, 255, 255},
		{255, 255, 128, 128, 128},
		{128, 128, 128, 128, 128},
		{0, 0, 128, 128, 128},
		{0, 0, 0, 0, 0},
	}
	for i, test := range tests {
		got := screenChannel(test.first, test.second, test.start, test.end)
		if got != test.expected {
			t.Fatalf("test #%d (%d, %d on %d..%d): expected %d, got %d", i, test.first, test.second, test.start, test.end, test.expected, got)
		}
	}
}

func TestWeightedAvgChannel(t *testing.T) {
	tests := []struct { first, second, firstStart, firstEnd, secondStart, secondEnd, expected uint8 }{
		{255, 255, 0, 255, 0, 255, 255},
		{128, 128, 0, 255, 0, 255, 128},
		{64, 192, 0, 255, 0, 255, 160},
		{32, 96, 0, 255, 0, 255, 80},
		{32, 224, 0, 255, 0, 255, 200},

		{128, 255, 128, 0, 128, 255, 255},
		{128, 128, 128, 0, 128, 255, 128},
		{64, 192, 128, 0, 128, 255, 128},
		{0, 255, 128, 0, 128, 255, 128},
		{0, 128, 128, 0, 128, 255, 0},

		{255, 255, 255, 0, 0, 255, 255},
		{192, 192, 255, 0, 0, 255, 192},
		{128, 128, 255, 0, 0, 255, 128},
		{64, 64, 255, 0, 0, 255, 64},
		{0, 0, 255, 0, 0, 255, 0},

		{255, 128, 255, 0, 0, 255, 128},
		{255, 0, 255, 0, 0, 255, 128},
		{64, 192, 255, 0, 0, 255, 128},
		{0, 255, 255, 0, 0, 255, 128},

		{255, 255, 255, 255, 255, 255, 255},
		{192, 255, 0, 255, 255, 255, 192},
		{128, 255, 0, 255, 255, 255, 128},
		{0, 128, 0, 0, 128, 128, 64},
		{0, 0, 0, 0, 0, 0, 0},
	}
	for i, test := range tests {
		got := weightedAvgChannel(test.first, test.second, test.firstStart, test.firstEnd, test.secondStart, test.secondEnd)
		if got != test.expected {
			t.Fatalf("test #%d: expected %d, got %d", i, test.expected, got)
		}
	}
}

func TestWeightedAvgSymmetry(t *testing.T) {
	ranges := [][2]uint8{ {0, 255}, {255, 0}, {128, 0}, {10, 200}, {7, 7} }
	for _, r := range ranges {
		for a := 0; a < 256; a++ {
			for b := 0; b < 256; b++ {
				ab := weightedAvgChannel(uint8(a), uint8(b), r[0], r[1], r[0], r[1])
				ba := weightedAvgChannel(uint8(b), uint8(a), r[0], r[1], r[0], r[1])
				if ab != ba {
					t.Fatalf("range %v: weighted avg of (%d, %d) is %d but (%d, %d) gives %d", r, a, b, ab, b, a, ba)
				}
			}
		}
	}
}

func TestBlendColors(t *testing.T) {
	black, white := RGB(RGB888, 0, 0, 0), RGB(RGB888, 255, 255, 255)
	got := Screen(RGB(RGB888, 128, 64, 0), RGB(RGB888, 128, 128, 0), black, white)
	if got != RGB(RGB888, 192, 160, 0) { t.Fatalf("expected RGB888(192, 160, 0), got %v", got) }

	got = WeightedAvg(RGB(RGB888, 64, 32, 255), RGB(RGB888, 192, 96, 255), black, white, black, white)
	if got != RGB(RGB888, 160, 80, 255) { t.Fatalf("expected RGB888(160, 80, 255), got %v", got) }

	if Invert(RGB(RGB565, 1, 2, 3)) != RGB(RGB565, 30, 61, 28) { t.Fatalf("unexpected RGB565 inversion") }
	if Invert(Luma(Gray4, 3)) != Luma(Gray4, 12) { t.Fatalf("unexpected Gray4 inversion") }
	if Invert(Default(Gray8)) != Luma(Gray8, 255) { t.Fatalf("unexpected Gray8 inversion") }
}

func TestBinaryBlends(t *testing.T) {
	off, on := Luma(Binary, 0), Luma(Binary, 1)
	if Invert(on) != off || Invert(off) != on { t.Fatalf("binary inversion must flip") }

	if Screen(off, on, off, on) != on { t.Fatalf("expected screen to reach end") }
	if Screen(off, off, off, on) != off { t.Fatalf("expected screen to stay at start") }

	// same starts: end if a is end or b is the other end
	if WeightedAvg(off, on, off, on, off, on) != on { t.Fatalf("expected on") }
	if WeightedAvg(off, off, off, on, off, on) != off { t.Fatalf("expected off") }
	// different starts: a is returned unchanged
	if WeightedAvg(on, off, off, on, on, off) != on { t.Fatalf("expected a unchanged") }
	if WeightedAvg(off, off, off, on, on, off) != off { t.Fatalf("expected a unchanged") }
}

func TestFromRGBA(t *testing.T) {
	tests := []struct { format Format; in color.Color; expected Color }{
		{RGB565, color.White, RGB(RGB565, 31, 63, 31)},
		{BGR888, color.RGBA{1, 2, 3, 255}, RGB(BGR888, 1, 2, 3)},
		{Gray4, color.White, Luma(Gray4, 15)},
		{Gray8, color.Gray{77}, Luma(Gray8, 77)},
		{Binary, color.Black, Luma(Binary, 0)},
		{Binary, color.Gray{200}, Luma(Binary, 1)},
	}
	for i, test := range tests {
		got := FromRGBA(test.format, test.in)
		if got != test.expected {
			t.Fatalf("test #%d: expected %v, got %v", i, test.expected, got)
		}
	}

	for v := 0; v < 32; v++ {
		c := RGB(RGB565, uint8(v), uint8(v*2), uint8(31 - v))
		if back := FromRGBA(RGB565, c); back != c {
			t.Fatalf("expected %v to survive the RGBA round trip, got %v", c, back)
		}
	}
	for v := 0; v < 256; v++ {
		c := Luma(Gray8, uint8(v))
		if back := FromRGBA(Gray8, c); back != c {
			t.Fatalf("expected %v to survive the RGBA round trip, got %v", c, back)
		}
	}
}

func TestPack(t *testing.T) {
	tests := []struct { in Color; expected uint32 }{
		{RGB(RGB565, 31, 0, 0), 0xF800},
		{RGB(BGR565, 31, 0, 0), 0x001F},
		{RGB(RGB565, 0, 63, 0), 0x07E0},
		{RGB(RGB888, 1, 2, 3), 0x010203},
		{RGB(BGR888, 1, 2, 3), 0x030201},
		{Luma(Gray4, 9), 9},
	}
	for i, test := range tests {
		if got := test.in.Pack(); got != test.expected {
			t.Fatalf("test #%d: expected %#x, got %#x", i, test.expected, got)
		}
	}
}

func panics(function func()) (didPanic bool) {
	defer func() { didPanic = (recover() != nil) }()
	function()
	return
}
