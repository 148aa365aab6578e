package btxt

import "log/slog"

import "github.com/tinne26/btxt/font"
import "github.com/tinne26/btxt/internal/logger"
import "github.com/tinne26/btxt/mix"

// Vertical alignment of the drawing position. See [font.Baseline].
type Baseline = font.Baseline

const (
	BaselineAlphabetic = font.BaselineAlphabetic
	BaselineTop = font.BaselineTop
	BaselineBottom = font.BaselineBottom
	BaselineMiddle = font.BaselineMiddle
)

// Sets the logger used by btxt and all its subpackages. Logging is
// disabled by default. Passing nil disables it again.
func SetLogger(l *slog.Logger) { logger.Set(l) }

// Color mode of an underline or strikethrough.
type Decoration struct {
	mode decorationMode
	color mix.Color
}

type decorationMode uint8
const (
	decorationNone decorationMode = iota
	decorationTextColor
	decorationCustom
)

var (
	DecorationNone = Decoration{} // the decoration is not drawn
	DecorationTextColor = Decoration{ mode: decorationTextColor } // drawn with the text color
)

// A decoration drawn with its own color.
func DecorationCustom(color mix.Color) Decoration {
	return Decoration{ mode: decorationCustom, color: color }
}

// The [Renderer] draws strings from a bitmap font onto a [Target].
//
// Renderers keep track of the glyph pixels that were drawn past the
// end of the last string (the carryover), so a following call can
// blend with them instead of painting over them. Renderers are not
// safe for concurrent use.
type Renderer struct {
	font *font.BitmapFont
	format mix.Format

	textColor mix.Color
	backgroundColor mix.Color
	underline Decoration
	strikethrough Decoration

	carryover *carryover
	colorBuffer []mix.Color
}

// Creates a renderer for the given font, drawing colors of the given
// format. The text color defaults to the inverse of [mix.Default]()
// and the background color to [mix.Default]().
func NewRenderer(bitmapFont *font.BitmapFont, format mix.Format) *Renderer {
	if bitmapFont == nil { panic("nil bitmap font") }
	if !format.Valid() { panic("invalid renderer format") }
	mix.SizeForBitDepth(bitmapFont.BitDepth) // validates the bit depth
	renderer := &Renderer{ font: bitmapFont, format: format }
	renderer.SetTextColor(nil)
	renderer.SetBackgroundColor(nil)
	return renderer
}

// Returns the font of the renderer.
func (self *Renderer) Font() *font.BitmapFont { return self.font }

// Returns the color format of the renderer.
func (self *Renderer) Format() mix.Format { return self.format }

// Sets the text color. nil restores the default.
func (self *Renderer) SetTextColor(color *mix.Color) {
	if color == nil {
		self.textColor = mix.Invert(mix.Default(self.format))
	} else {
		self.textColor = self.checkFormat(*color)
	}
}

// Returns the text color.
func (self *Renderer) TextColor() mix.Color { return self.textColor }

// Sets the background color. nil restores the default.
func (self *Renderer) SetBackgroundColor(color *mix.Color) {
	if color == nil {
		self.backgroundColor = mix.Default(self.format)
	} else {
		self.backgroundColor = self.checkFormat(*color)
	}
}

// Returns the background color.
func (self *Renderer) BackgroundColor() mix.Color { return self.backgroundColor }

// Sets the underline color mode. Underlines are not drawn by default.
func (self *Renderer) SetUnderlineColor(decoration Decoration) {
	if decoration.mode == decorationCustom { self.checkFormat(decoration.color) }
	self.underline = decoration
}

// Sets the strikethrough color mode. Strikethroughs are not drawn
// by default.
func (self *Renderer) SetStrikethroughColor(decoration Decoration) {
	if decoration.mode == decorationCustom { self.checkFormat(decoration.color) }
	self.strikethrough = decoration
}

// Returns the height of a line of text, in pixels.
func (self *Renderer) LineHeight() int { return self.font.Metrics.LineHeight() }

// Discards the carryover, so the next draw paints over whatever the
// target contains.
func (self *Renderer) ResetCarryover() { self.carryover = nil }

func (self *Renderer) checkFormat(color mix.Color) mix.Color {
	if color.Format != self.format {
		panic("color format " + color.Format.String() + " on " + self.format.String() + " renderer")
	}
	return color
}

func (self *Renderer) levels() int { return self.font.Levels() }

// Returns the color the decoration is drawn with and whether it's
// drawn at all.
func (self *Renderer) decorationColor(decoration Decoration) (mix.Color, bool) {
	switch decoration.mode {
	case decorationTextColor: return self.textColor, true
	case decorationCustom: return decoration.color, true
	default:
		return mix.Color{}, false
	}
}
