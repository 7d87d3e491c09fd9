package ledstrip

import "github.com/BeatGlow/ledstrip/pixel"

// clockedStrip is the base for strips that receive pixel data over a
// clocked serial bus such as SPI.
type clockedStrip struct {
	baseStrip
	c      Writer
	buf    []byte
	halted bool
}

func (s *clockedStrip) init(w Writer, config *Config, defaultOrder pixel.Order) error {
	if w == nil {
		return ErrMissingWriter
	}
	if err := s.baseStrip.init(config, defaultOrder); err != nil {
		return err
	}
	s.c = w
	return nil
}

// endFrame returns the number of zero bytes that latch a frame of n
// pixels. Each pixel delays the clock by half a cycle, so the bus needs
// another n-1 edges after the last pixel, 16 per zero byte.
func endFrame(n int) int {
	if n < 1 {
		return 0
	}
	return (n + 14) / 16
}

// map16to8 converts a 16-bit channel to 8 bits with rounding, keeping
// full scale at full scale.
func map16to8(v uint16) uint8 {
	switch {
	case v == 0:
		return 0
	case v >= 0xff00:
		return 0xff
	default:
		return uint8((v + 128) >> 8)
	}
}
