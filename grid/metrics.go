package grid

import "math"

// Halfwidth classification for a pixel size.
type HalfwidthKind uint8
const (
	HalfwidthZero  HalfwidthKind = iota // too small to draw anything
	HalfwidthCeil                       // rounded up to a single pixel
	HalfwidthFloor                      // regular size, Value holds the halfwidth
)

// The width of a halfwidth character cell, in pixels.
type Halfwidth struct {
	Kind HalfwidthKind
	Value float64 // only meaningful for HalfwidthFloor
}

// Whether glyphs should be drawn at all for this halfwidth.
func (self Halfwidth) Drawable() bool {
	return self.Kind == HalfwidthFloor || self.Kind == HalfwidthCeil
}

// Returns the halfwidth for the given pixels per em. Code fonts use
// a variable width axis (widthUnits, typically in [0, 100]); other
// fonts are half an em wide.
func HalfwidthFor(pixelsPerEm float64, code bool, widthUnits int) Halfwidth {
	emPerHalfwidth := 0.5
	if code { emPerHalfwidth = float64(widthUnits)*(0.4/100.0) + 0.1 }

	switch {
	case pixelsPerEm < 1.25: return Halfwidth{ Kind: HalfwidthZero }
	case pixelsPerEm < 2.0 : return Halfwidth{ Kind: HalfwidthCeil }
	default:
		return Halfwidth{ Kind: HalfwidthFloor, Value: pixelsPerEm*emPerHalfwidth }
	}
}

// Line cap styles.
type Cap uint8
const (
	CapButt Cap = iota
	CapSquare
)

// Stroke width and cap style used to outline line glyphs.
type Stroke struct {
	Width float64
	Cap Cap
}

// A 3 x 3 grid paired with the stroke used to draw on it.
type StyledGrid struct {
	Grid Grid
	Stroke Stroke
}

// Configuration for [NewMetrics]().
type Config struct {
	PixelsPerEm float64
	Hint bool // snap grids to the pixel grid and use whole stroke widths
	Code bool // monospaced code font with a variable width axis
	WidthUnits int // width axis value, only used when Code is true
}

// Precomputed glyph metrics for a font size. Metrics are immutable
// and may be shared across goroutines.
type Metrics struct {
	Halfwidth Halfwidth
	Code bool
	Width float64 // advance width of a halfwidth glyph
	Top float64 // pixels from the baseline up to the top of the em box
	Bottom float64 // negative distance from the baseline down to the bottom
	Height float64 // grid height

	Light StyledGrid // thin strokes, snapped for the thin width
	Heavy StyledGrid // thick strokes, snapped for the thick width
	Cross StyledGrid // thin strokes, unsnapped (diagonals)
	Block Grid // 25 x 25, snapped to pixel corners
	Shape Grid // 25 x 25, snapped to pixel centers
}

// Creates the glyph metrics for the given configuration. The function
// panics if the pixels per em are negative or not a number.
func NewMetrics(config Config) *Metrics {
	ppem := config.PixelsPerEm
	if ppem < 0 || math.IsNaN(ppem) { panic("grid: invalid pixels per em") }

	halfwidth := HalfwidthFor(ppem, config.Code, config.WidthUnits)
	var width float64
	switch halfwidth.Kind {
	case HalfwidthFloor:
		width = halfwidth.Value
		if config.Code { width = math.Floor(width) }
	case HalfwidthCeil:
		width = 1
	case HalfwidthZero:
		if !config.Code { width = 0.5 }
	}

	topFactor, bottomFactor := 1.16, -0.288
	if config.Code { topFactor, bottomFactor = 1.235, -0.27 }
	top := math.Ceil(ppem*topFactor)
	bottom := math.Ceil(ppem*bottomFactor)
	var height float64
	switch halfwidth.Kind {
	case HalfwidthFloor: height = top - bottom
	case HalfwidthCeil : height = 2
	case HalfwidthZero :
		if !config.Code { height = 1 }
	}

	thinWidth := ppem*0.05
	if config.Hint { thinWidth = math.Ceil(thinWidth) }
	thickWidth := 2*thinWidth

	return &Metrics{
		Halfwidth: halfwidth,
		Code: config.Code,
		Width: width,
		Top: top,
		Bottom: bottom,
		Height: height,
		Light: StyledGrid{
			Grid: New(3, width, height, strokeSnap(config.Hint, thinWidth)),
			Stroke: Stroke{ Width: thinWidth, Cap: CapSquare },
		},
		Heavy: StyledGrid{
			Grid: New(3, width, height, strokeSnap(config.Hint, thickWidth)),
			Stroke: Stroke{ Width: thickWidth, Cap: CapSquare },
		},
		Cross: StyledGrid{
			Grid: New(3, width, height, nil),
			Stroke: Stroke{ Width: thinWidth, Cap: CapSquare },
		},
		Block: New(25, width, height, fixedSnap(config.Hint, 0)),
		Shape: New(25, width, height, fixedSnap(config.Hint, 0.5)),
	}
}

// Odd stroke widths are centered on pixel centers, even widths on
// pixel corners.
func strokeSnap(hint bool, strokeWidth float64) *Snap {
	if !hint { return nil }
	offset := math.Mod(strokeWidth, 2)/2
	return &Snap{ DX: offset, DY: offset }
}

func fixedSnap(hint bool, offset float64) *Snap {
	if !hint { return nil }
	return &Snap{ DX: offset, DY: offset }
}
