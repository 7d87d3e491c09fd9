package ledstrip

import (
	"time"

	"github.com/BeatGlow/ledstrip/pixel"
)

// Pulse is one high and low period on the data line.
type Pulse struct {
	High time.Duration
	Low  time.Duration
}

// Timing describes how a clockless chip encodes bits on its data line.
type Timing struct {
	// T0H and T0L are the high and low periods encoding a 0 bit.
	T0H, T0L time.Duration

	// T1H and T1L are the high and low periods encoding a 1 bit.
	T1H, T1L time.Duration

	// Reset is the idle period that latches a frame.
	Reset time.Duration
}

// PulseWriter is the connection interface for strips that clock
// themselves from pulse lengths on a single data line.
type PulseWriter interface {
	String() string

	// Close the connection.
	Close() error

	// Cap returns the maximum number of pulses a single WritePulses
	// call takes, or 0 when there is no limit.
	Cap() int

	// WritePulses sends a pulse train.
	WritePulses([]Pulse) error
}

// clocklessStrip is the base for strips that receive pixel data as a
// self-clocking pulse train.
type clocklessStrip struct {
	baseStrip
	c      PulseWriter
	timing Timing
	pulses []Pulse
	halted bool
}

func (s *clocklessStrip) init(w PulseWriter, config *Config, defaultOrder pixel.Order, timing Timing) error {
	if w == nil {
		return ErrMissingWriter
	}
	if err := s.baseStrip.init(config, defaultOrder); err != nil {
		return err
	}

	n := len(s.pix)*s.order.Channels()*8 + 1
	if max := w.Cap(); max > 0 && n > max {
		return ErrPulseCapacity
	}

	s.c = w
	s.timing = timing
	s.pulses = make([]Pulse, 0, n)
	return nil
}

func (s *clocklessStrip) Close() error {
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

func (s *clocklessStrip) Refresh() error {
	pulses := s.pulses[:0]

	switch s.order.Channels() {
	case 4:
		for _, p := range s.pix {
			c := p.ExtractWhite().Correct(s.correction, s.gamma, s.brightness)
			r, g, b, w := c.RGBW8()
			chans := s.order.Reorder4(r, g, b, w)
			for _, v := range chans {
				pulses = s.appendByte(pulses, v)
			}
		}
	default:
		for _, p := range s.pix {
			c := p.Correct(s.correction, s.gamma, s.brightness)
			r, g, b := c.RGB8()
			chans := s.order.Reorder3(r, g, b)
			for _, v := range chans {
				pulses = s.appendByte(pulses, v)
			}
		}
	}

	pulses = append(pulses, Pulse{Low: s.timing.Reset})

	s.pulses = pulses
	if max := s.c.Cap(); max > 0 && len(pulses) > max {
		return ErrPulseCapacity
	}
	return s.c.WritePulses(pulses)
}

// appendByte encodes one byte as eight pulses, most significant bit
// first.
func (s *clocklessStrip) appendByte(pulses []Pulse, v uint8) []Pulse {
	for mask := uint8(0b1000_0000); mask != 0; mask >>= 1 {
		if v&mask != 0 {
			pulses = append(pulses, Pulse{High: s.timing.T1H, Low: s.timing.T1L})
		} else {
			pulses = append(pulses, Pulse{High: s.timing.T0H, Low: s.timing.T0L})
		}
	}
	return pulses
}
