// Package ledstrip contains drivers for addressable LED strips.
package ledstrip

import (
	"errors"
	"image/color"
	"os"

	"github.com/BeatGlow/ledstrip/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("LEDSTRIP_DEBUG") != ""
}

// Errors
var (
	ErrMissingWriter = errors.New("ledstrip: no writer")
	ErrPixelCount    = errors.New("ledstrip: invalid pixel count")
	ErrChannelOrder  = errors.New("ledstrip: channel order not supported by chip")
	ErrPulseCapacity = errors.New("ledstrip: frame exceeds pulse writer capacity")
)

// Strip is an addressable LED strip.
type Strip interface {
	// Close the strip driver, blanking the strip.
	Close() error

	// Len returns the number of pixels on the strip.
	Len() int

	// Clear turns all pixels off.
	Clear()

	// At returns the color of the pixel at index i.
	At(i int) color.Color

	// Set the pixel color at index i.
	Set(i int, c color.Color)

	// Fill sets all pixels to the same color.
	Fill(c color.Color)

	// ColorModel used by the strip.
	ColorModel() color.Model

	// SetBrightness adjusts the strip brightness level between 0 and 1.
	SetBrightness(level float64)

	// SetCorrection adjusts the per channel color correction.
	SetCorrection(c pixel.Correction)

	// Refresh serializes the pixels and sends a complete frame to the strip.
	Refresh() error
}

// Config is the LED strip configuration.
type Config struct {
	// Count is the number of pixels on the strip.
	Count int

	// Brightness is the initial brightness level between 0 and 1. The zero
	// value selects full brightness.
	Brightness float64

	// Correction is the per channel color correction. The zero value
	// selects pixel.NoCorrection.
	Correction pixel.Correction

	// Gamma is the gamma encoding applied when pixels are serialized. The
	// zero value selects 1 (linear).
	Gamma float64

	// Order overrides the order in which color channels are serialized.
	// The zero value selects the chip default.
	Order pixel.Order
}

type baseStrip struct {
	pix        []pixel.RGB
	brightness float64
	correction pixel.Correction
	gamma      float64
	order      pixel.Order
}

func (s *baseStrip) init(config *Config, defaultOrder pixel.Order) error {
	if config == nil {
		config = new(Config)
	}
	if config.Count <= 0 {
		return ErrPixelCount
	}

	order := config.Order
	if order == 0 {
		order = defaultOrder
	}
	if order.Channels() != defaultOrder.Channels() {
		return ErrChannelOrder
	}

	s.pix = make([]pixel.RGB, config.Count)
	s.order = order

	s.brightness = 1
	if config.Brightness > 0 && config.Brightness <= 1 {
		s.brightness = config.Brightness
	}

	s.correction = config.Correction
	if s.correction == (pixel.Correction{}) {
		s.correction = pixel.NoCorrection
	}

	s.gamma = config.Gamma
	if s.gamma <= 0 {
		s.gamma = 1
	}

	return nil
}

func (s *baseStrip) Len() int {
	return len(s.pix)
}

func (s *baseStrip) ColorModel() color.Model {
	return pixel.LinearModel
}

func (s *baseStrip) At(i int) color.Color {
	if i < 0 || i >= len(s.pix) {
		return color.Transparent
	}
	return s.pix[i]
}

func (s *baseStrip) Set(i int, c color.Color) {
	if i < 0 || i >= len(s.pix) {
		return
	}
	s.pix[i] = pixel.LinearModel.Convert(c).(pixel.RGB)
}

func (s *baseStrip) Fill(c color.Color) {
	v := pixel.LinearModel.Convert(c).(pixel.RGB)
	for i := range s.pix {
		s.pix[i] = v
	}
}

func (s *baseStrip) Clear() {
	for i := range s.pix {
		s.pix[i] = pixel.RGB{}
	}
}

func (s *baseStrip) SetBrightness(level float64) {
	switch {
	case level < 0:
		level = 0
	case level > 1:
		level = 1
	}
	s.brightness = level
}

func (s *baseStrip) SetCorrection(c pixel.Correction) {
	s.correction = c
}
