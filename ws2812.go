package ledstrip

import (
	"fmt"
	"time"

	"github.com/BeatGlow/ledstrip/pixel"
)

// WS2812Timing is the pulse timing of WS2812 and WS2812B chips.
var WS2812Timing = Timing{
	T0H:   400 * time.Nanosecond,
	T0L:   850 * time.Nanosecond,
	T1H:   800 * time.Nanosecond,
	T1L:   450 * time.Nanosecond,
	Reset: 50 * time.Microsecond,
}

type ws2812 struct {
	clocklessStrip
}

// WS2812 opens a WS2812 (NeoPixel) LED strip on the provided writer.
//
// Pixels are serialized in GRB order, 8 bits per channel.
func WS2812(w PulseWriter, config *Config) (Strip, error) {
	s := new(ws2812)
	if err := s.init(w, config, pixel.OrderGRB, WS2812Timing); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ws2812) String() string {
	return fmt.Sprintf("WS2812 %d pixels", s.Len())
}
