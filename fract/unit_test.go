package fract

import "math"
import "testing"

func TestFract(t *testing.T) {
	tests := []struct {
		in  Unit
		out Unit
	}{
		{0, 0}, {32, 32}, {64, 0}, {63, 63}, {127, 63}, {96, 32},
		{-32, 32}, {-1, 63}, {-16, 48}, {-64, 0}, {-65, 63},
	}

	for i, test := range tests {
		out := test.in.Fract()
		if out != test.out {
			t.Fatalf("test #%d: in %d (%f) expected %d, got %d", i, test.in, test.in.ToFloat64(), test.out, out)
		}
	}
}

func TestToIntFloor(t *testing.T) {
	tests := []struct {
		in  Unit
		out int
	}{
		{0, 0}, {32, 0}, {64, 1}, {127, 1}, {129, 2}, {480, 7},
		{-1, -1}, {-64, -1}, {-65, -2}, {-128, -2}, {-129, -3},
	}

	for i, test := range tests {
		out := test.in.ToIntFloor()
		if out != test.out {
			t.Fatalf("test #%d: in %d (%f) expected %d, got %d", i, test.in, test.in.ToFloat64(), test.out, out)
		}
	}
}

func TestSlot(t *testing.T) {
	tests := []struct {
		in  Unit
		n   int
		out int
	}{
		{0, 4, 0}, {15, 4, 0}, {16, 4, 1}, {32, 4, 2}, {63, 4, 3},
		{64, 4, 0}, {80, 4, 1}, {-16, 4, 3}, {480, 2, 1}, {100, 1, 0},
	}

	for i, test := range tests {
		out := test.in.Slot(test.n)
		if out != test.out {
			t.Fatalf("test #%d: in %d with %d slots, expected %d, got %d", i, test.in, test.n, test.out, out)
		}
	}
}

func TestFromFloat64(t *testing.T) {
	tests := []struct {
		in  float64
		out Unit
	}{
		{0, 0}, {math.Copysign(0, -1), 0}, {1, 64}, {-1, -64}, {0.5, 32},
		{7.5, 480}, {3.14, 201}, {-3.14, -201},
		{8.3359375, 534}, {-8.3359375, -533}, // ties round up
	}

	for i, test := range tests {
		out := FromFloat64(test.in)
		if out != test.out {
			t.Fatalf("test #%d: in %f expected %d, got %d", i, test.in, test.out, out)
		}
	}
	if FromFloat32(7.5) != 480 { t.Fatalf("expected 480, got %d", FromFloat32(7.5)) }
	if FromInt(-3) != -192 { t.Fatalf("expected -192, got %d", FromInt(-3)) }
}

func TestPointToFixed(t *testing.T) {
	pt := Float64sToPoint(1.5, -0.25).ToFixed()
	if pt.X != 96 || pt.Y != -16 { t.Fatalf("expected (96, -16), got (%d, %d)", pt.X, pt.Y) }
}
