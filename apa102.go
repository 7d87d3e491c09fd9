package ledstrip

import (
	"fmt"

	"github.com/BeatGlow/ledstrip/conn"
	"github.com/BeatGlow/ledstrip/pixel"
)

type apa102 struct {
	clockedStrip
}

// APA102 opens an APA102 (DotStar) LED strip on the provided writer.
//
// Each pixel carries a 5-bit global brightness field next to its 8-bit
// color channels. The driver trades residual global brightness into the
// color channels, so dim colors keep more of their 16-bit resolution
// than the 8-bit wire format suggests.
func APA102(w Writer, config *Config) (Strip, error) {
	s := new(apa102)
	if err := s.init(w, config, pixel.OrderBGR); err != nil {
		return nil, err
	}

	if spi, ok := w.(SPI); ok {
		if err := spi.SetMode(conn.SPIMode0); err != nil {
			return nil, err
		}
		if err := spi.SetMaxSpeed(8_000_000); err != nil {
			return nil, err
		}
	}

	s.buf = make([]byte, 0, 4+s.Len()*4+endFrame(s.Len()))
	return s, nil
}

func (s *apa102) Close() error {
	if !s.halted {
		s.Clear()
		if err := s.Refresh(); err != nil {
			_ = s.c.Close()
			return err
		}
		s.halted = true
	}
	return s.c.Close()
}

func (s *apa102) String() string {
	return fmt.Sprintf("APA102 %d pixels", s.Len())
}

func (s *apa102) Refresh() error {
	buf := s.buf[:0]
	buf = append(buf, 0x00, 0x00, 0x00, 0x00)

	level := uint8(s.brightness * 255)
	for _, p := range s.pix {
		c := p.Correct(s.correction, s.gamma, 1)
		r, g, b := c.RGB16()
		rgb, b5 := fiveBitBitshift(r, g, b, level)
		chans := s.order.Reorder3(rgb[0], rgb[1], rgb[2])
		buf = append(buf, 0xe0|b5, chans[0], chans[1], chans[2])
	}

	for i := endFrame(len(s.pix)); i > 0; i-- {
		buf = append(buf, 0x00)
	}

	s.buf = buf
	return s.c.Write(buf)
}

// fiveBitBitshift splits 16-bit color channels and an 8-bit brightness
// into 8-bit channels and a 5-bit brightness. Brightness resolution is
// traded for color resolution as long as the channels have headroom.
func fiveBitBitshift(r, g, b uint16, brightness uint8) ([3]uint8, uint8) {
	if brightness == 0 {
		return [3]uint8{}, 0
	}
	if r|g|b == 0 {
		if brightness > 31 {
			brightness = 31
		}
		return [3]uint8{}, brightness
	}

	// Start with a half-scale 5-bit value and halve it while the 8-bit
	// brightness can still double.
	b5 := uint8(0b00010000)
	brightnessBitshift8(&b5, &brightness, 4)

	// Halve the 5-bit value further while the brightest channel keeps
	// two bits of headroom per step, then shift that gain into the
	// channels.
	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	if shift := brightnessBitshift16(&b5, &max, 4, 2); shift > 0 {
		r <<= shift
		g <<= shift
		b <<= shift
	}

	if brightness != 0xff {
		r = scale16by8(r, brightness)
		g = scale16by8(g, brightness)
		b = scale16by8(b, brightness)
	}

	// Fill the lower bits so full scale maps to full scale.
	if b5 > 1 {
		b5 |= b5 - 1
	}

	return [3]uint8{map16to8(r), map16to8(g), map16to8(b)}, b5
}

// brightnessBitshift8 halves src while doubling dst, up to maxShift
// times, stopping before src degenerates or dst overflows. It returns
// the number of shifts applied.
func brightnessBitshift8(src, dst *uint8, maxShift int) int {
	var shifts int
	for i := 0; i < maxShift; i++ {
		if *src <= 1 {
			break
		}
		if *dst&0b1000_0000 != 0 {
			break
		}
		shifts++
		*dst <<= 1
		*src >>= 1
	}
	return shifts
}

// brightnessBitshift16 halves src while probing dst with steps bits of
// headroom per shift. It returns the number of shifts applied.
func brightnessBitshift16(src *uint8, dst *uint16, maxShift, steps int) int {
	overflow := ^(uint16(0xffff) >> steps)
	var shifts int
	for i := 0; i < maxShift; i++ {
		if *src&0x1 != 0 {
			break
		}
		if *dst&overflow != 0 {
			break
		}
		shifts++
		*dst <<= steps
		*src >>= 1
	}
	return shifts
}

// scale16by8 scales a 16-bit value by an 8-bit fraction, keeping full
// scale at full scale.
func scale16by8(v uint16, scale uint8) uint16 {
	return uint16((uint32(v) * (uint32(scale) + 1)) >> 8)
}

// Interface checks
var (
	_ Strip = (*apa102)(nil)
)
