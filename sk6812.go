package ledstrip

import (
	"fmt"
	"time"

	"github.com/BeatGlow/ledstrip/pixel"
)

// SK6812Timing is the pulse timing of SK6812 RGBW chips.
var SK6812Timing = Timing{
	T0H:   300 * time.Nanosecond,
	T0L:   900 * time.Nanosecond,
	T1H:   600 * time.Nanosecond,
	T1L:   600 * time.Nanosecond,
	Reset: 80 * time.Microsecond,
}

type sk6812 struct {
	clocklessStrip
}

// SK6812 opens an SK6812 RGBW LED strip on the provided writer.
//
// A white channel is split off from the color before serialization, and
// pixels go out in RBGW order, 8 bits per channel.
func SK6812(w PulseWriter, config *Config) (Strip, error) {
	s := new(sk6812)
	if err := s.init(w, config, pixel.OrderRBGW, SK6812Timing); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *sk6812) String() string {
	return fmt.Sprintf("SK6812 %d pixels", s.Len())
}
