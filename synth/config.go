package synth

import "math"
import "runtime"

import "github.com/pkg/errors"

import "github.com/tinne26/btxt/grid"

// Maximum number of sub-pixel positions per glyph.
const MaxPositions = 64

// Configuration for [Build]().
type Config struct {
	PixelsPerEm float64
	Hint bool // snap grids to whole pixels
	Code bool // monospaced code font with a variable width axis
	WidthUnits int // width axis value in [0, 100], code fonts only

	Positions int // sub-pixel positions per glyph, in [1, MaxPositions]
	BitDepth int // bits per quantized pixel, in [1, 8]

	// Number of goroutines used by [Build](). Zero means
	// runtime.GOMAXPROCS(0).
	Workers int

	// Draws unset braille dots as small squares.
	AltBraille bool

	// Size limit for the table created by [Build](). Zero means
	// no limit.
	MaxBytes int

	// Optional source for the runes that have no procedural drawing.
	Outline *OutlineSource
}

// Returns an error if any of the configuration values is out of range.
func (self *Config) Validate() error {
	if !(self.PixelsPerEm > 0) || math.IsInf(self.PixelsPerEm, 0) {
		return errors.Errorf("invalid pixels per em %v", self.PixelsPerEm)
	}
	if self.Positions < 1 || self.Positions > MaxPositions {
		return errors.Errorf("positions %d outside [1, %d]", self.Positions, MaxPositions)
	}
	if self.BitDepth < 1 || self.BitDepth > 8 {
		return errors.Errorf("bit depth %d outside [1, 8]", self.BitDepth)
	}
	if self.WidthUnits < 0 || self.WidthUnits > 100 {
		return errors.Errorf("width units %d outside [0, 100]", self.WidthUnits)
	}
	if self.Workers < 0 { return errors.Errorf("negative worker count %d", self.Workers) }
	if self.MaxBytes < 0 { return errors.Errorf("negative byte limit %d", self.MaxBytes) }
	return nil
}

// Returns the glyph metrics for the configured size.
func (self *Config) Metrics() *grid.Metrics {
	return grid.NewMetrics(grid.Config{
		PixelsPerEm: self.PixelsPerEm,
		Hint: self.Hint,
		Code: self.Code,
		WidthUnits: self.WidthUnits,
	})
}

func (self *Config) workers() int {
	if self.Workers > 0 { return self.Workers }
	return runtime.GOMAXPROCS(0)
}
