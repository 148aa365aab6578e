package raster

import "image"

import "golang.org/x/image/math/fixed"

// Returns a copy of the mask without its fully transparent borders.
// Returns nil if the mask is nil or completely transparent.
func Trim(mask *image.Alpha) *image.Alpha {
	if mask == nil { return nil }
	bounds := mask.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if mask.AlphaAt(x, y).A == 0 { continue }
			if x < minX { minX = x }
			if x >= maxX { maxX = x + 1 }
			if y < minY { minY = y }
			if y >= maxY { maxY = y + 1 }
		}
	}
	if minX >= maxX || minY >= maxY { return nil }
	return Crop(mask, image.Rect(minX, minY, maxX, maxY))
}

// Returns a copy of the mask restricted to the given vertical span.
// Returns nil if nothing is left.
func CropY(mask *image.Alpha, top, bottom int) *image.Alpha {
	if mask == nil { return nil }
	bounds := mask.Bounds()
	return Crop(mask, image.Rect(bounds.Min.X, top, bounds.Max.X, bottom))
}

// Returns a copy of the intersection of the mask and the given rect,
// keeping its placement. Returns nil if the intersection is empty.
func Crop(mask *image.Alpha, rect image.Rectangle) *image.Alpha {
	if mask == nil { return nil }
	rect = rect.Intersect(mask.Bounds())
	if rect.Empty() { return nil }
	cropped := image.NewAlpha(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		srcStart := mask.PixOffset(rect.Min.X, y)
		dstStart := cropped.PixOffset(rect.Min.X, y)
		copy(cropped.Pix[dstStart : dstStart + rect.Dx()], mask.Pix[srcStart : srcStart + rect.Dx()])
	}
	return cropped
}

func fixedToFloat(value fixed.Int26_6) float64 { return float64(value)/64 }
