package ledstrip

import (
	"fmt"

	"github.com/BeatGlow/ledstrip/conn"
	"github.com/BeatGlow/ledstrip/pixel"
)

type lpd8806 struct {
	clockedStrip
}

// LPD8806 opens an LPD8806 LED strip on the provided writer.
//
// The chip takes 7 bits per color channel with the top bit of every
// byte set, in GRB order. Brightness is folded into the color channels
// before quantization.
func LPD8806(w Writer, config *Config) (Strip, error) {
	s := new(lpd8806)
	if err := s.init(w, config, pixel.OrderGRB); err != nil {
		return nil, err
	}

	if spi, ok := w.(SPI); ok {
		if err := spi.SetMode(conn.SPIMode0); err != nil {
			return nil, err
		}
		if err := spi.SetMaxSpeed(2_000_000); err != nil {
			return nil, err
		}
	}

	s.buf = make([]byte, 0, 4+s.Len()*3+endFrame(s.Len()))
	return s, nil
}

func (s *lpd8806) Close() error {
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

func (s *lpd8806) String() string {
	return fmt.Sprintf("LPD8806 %d pixels", s.Len())
}

func (s *lpd8806) Refresh() error {
	buf := s.buf[:0]
	buf = append(buf, 0x00, 0x00, 0x00, 0x00)

	for _, p := range s.pix {
		c := p.Correct(s.correction, s.gamma, s.brightness)
		r, g, b := c.RGB16()
		chans := s.order.Reorder3(to7bit(r), to7bit(g), to7bit(b))
		buf = append(buf, chans[0], chans[1], chans[2])
	}

	for i := endFrame(len(s.pix)); i > 0; i-- {
		buf = append(buf, 0x00)
	}

	s.buf = buf
	return s.c.Write(buf)
}

// to7bit converts a 16-bit channel to the 7-bit wire format with the
// marker bit set.
func to7bit(v uint16) uint8 {
	return map16to8(v)>>1 | 0x80
}
