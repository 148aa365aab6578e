package btxt

import "image"

// Rectangle helpers for the compositor. Unlike [image.Rectangle.Intersect],
// these keep the position of empty results, which is needed to track
// where the previous glyph ends.

// Part of a with x < b.Min.X.
func leftOf(a, b image.Rectangle) image.Rectangle {
	a.Max.X = clamp(b.Min.X, a.Min.X, a.Max.X)
	return a
}

// Part of a with x >= b.Max.X.
func rightOf(a, b image.Rectangle) image.Rectangle {
	a.Min.X = clamp(b.Max.X, a.Min.X, a.Max.X)
	return a
}

// Part of a with y < b.Min.Y.
func above(a, b image.Rectangle) image.Rectangle {
	a.Max.Y = clamp(b.Min.Y, a.Min.Y, a.Max.Y)
	return a
}

// Part of a with y >= b.Max.Y.
func below(a, b image.Rectangle) image.Rectangle {
	a.Min.Y = clamp(b.Max.Y, a.Min.Y, a.Max.Y)
	return a
}

// Moves the left edge of a to x. If x is past the right edge, the
// result is empty and positioned at x.
func indentTo(a image.Rectangle, x int) image.Rectangle {
	a.Min.X = max(a.Min.X, x)
	a.Max.X = max(a.Max.X, a.Min.X)
	return a
}

// Replaces the vertical span of a.
func yExtend(a image.Rectangle, top, bottom int) image.Rectangle {
	a.Min.Y, a.Max.Y = top, max(top, bottom)
	return a
}

// Clamps the vertical span of a to [top, bottom).
func yReduce(a image.Rectangle, top, bottom int) image.Rectangle {
	a.Min.Y = clamp(a.Min.Y, top, bottom)
	a.Max.Y = clamp(a.Max.Y, a.Min.Y, bottom)
	return a
}

func leftHalf(a image.Rectangle) image.Rectangle {
	a.Max.X = a.Min.X + a.Dx()/2
	return a
}

func clamp(value, low, high int) int {
	if value < low { return low }
	if value > high { return high }
	return value
}
