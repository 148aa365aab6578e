package font

import "github.com/tinne26/btxt/charmap"

// Vertical alignment of text relative to the y coordinate of the
// drawing position.
type Baseline uint8
const (
	BaselineAlphabetic Baseline = iota // y is the baseline
	BaselineTop // y is the top of the line
	BaselineBottom // y is the bottom of the line
	BaselineMiddle // y is halfway between the top and the bottom
)

func (self Baseline) String() string {
	switch self {
	case BaselineAlphabetic: return "Alphabetic"
	case BaselineTop: return "Top"
	case BaselineBottom: return "Bottom"
	case BaselineMiddle: return "Middle"
	default:
		return "Baseline(?)"
	}
}

// Vertical metrics of a bitmap font, in whole pixels.
type Metrics struct {
	Ascent int // from the baseline up to the top of the line
	Descent int // from the baseline down to the bottom of the line
}

// Returns the offset from the drawing y coordinate to the baseline for
// the given baseline mode.
func (self Metrics) YOffset(baseline Baseline) int {
	switch baseline {
	case BaselineTop: return self.Ascent
	case BaselineBottom: return -self.Descent
	case BaselineMiddle: return (self.Ascent - self.Descent)/2
	default:
		return 0
	}
}

// Returns the height of a line of text.
func (self Metrics) LineHeight() int { return self.Ascent + self.Descent }

// Placement of an underline or strikethrough stroke.
type Decoration struct {
	YOffset int // distance from the baseline up to the top of the stroke
	StrokeWidth int
}

// A bitmap font: a charmap with its metrics. Bitmap fonts are immutable
// and can be shared by any number of renderers.
type BitmapFont struct {
	Charmap *charmap.Charmap
	Metrics Metrics
	Underline Decoration
	Strikethrough Decoration
	BitDepth int // bits per pixel of the glyph images
}

// Returns the number of levels of the glyph images.
func (self *BitmapFont) Levels() int { return 1 << self.BitDepth }
