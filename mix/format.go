package mix

import "strconv"

// Pixel encodings supported by the compositor. The BGR formats only
// differ from their RGB counterparts on the packed channel order;
// [Color] always stores channels as r, g, b.
type Format uint8
const (
	Binary Format = iota
	Gray2
	Gray4
	Gray8
	RGB555
	BGR555
	RGB565
	BGR565
	RGB666
	BGR666
	RGB888
	BGR888
	formatSentinel
)

var formatMaxChannels = [formatSentinel][3]uint8{
	Binary: {1, 0, 0},
	Gray2:  {3, 0, 0},
	Gray4:  {15, 0, 0},
	Gray8:  {255, 0, 0},
	RGB555: {31, 31, 31},
	BGR555: {31, 31, 31},
	RGB565: {31, 63, 31},
	BGR565: {31, 63, 31},
	RGB666: {63, 63, 63},
	BGR666: {63, 63, 63},
	RGB888: {255, 255, 255},
	BGR888: {255, 255, 255},
}

var formatNames = [formatSentinel]string{
	"Binary", "Gray2", "Gray4", "Gray8", "RGB555", "BGR555",
	"RGB565", "BGR565", "RGB666", "BGR666", "RGB888", "BGR888",
}

// Returns whether the format is one of the known formats.
func (self Format) Valid() bool { return self < formatSentinel }

// Returns the number of meaningful channels: 1 for binary and gray
// formats, 3 for the rest.
func (self Format) Channels() int {
	if self <= Gray8 { return 1 }
	return 3
}

// Returns the maximum value of each channel. Unused channels are 0.
func (self Format) MaxChannel() [3]uint8 {
	if !self.Valid() { panic("invalid mix.Format " + strconv.Itoa(int(self))) }
	return formatMaxChannels[self]
}

// Returns the number of bits used by a packed color of this format.
func (self Format) BitsPerPixel() int {
	switch self {
	case Binary: return 1
	case Gray2:  return 2
	case Gray4:  return 4
	case Gray8:  return 8
	case RGB555, BGR555: return 15
	case RGB565, BGR565: return 16
	case RGB666, BGR666: return 18
	case RGB888, BGR888: return 24
	default:
		panic("invalid mix.Format " + strconv.Itoa(int(self)))
	}
}

func (self Format) String() string {
	if !self.Valid() { return "Format(" + strconv.Itoa(int(self)) + ")" }
	return formatNames[self]
}
