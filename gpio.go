package ledstrip

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// GPIO errors.
var (
	ErrDataPin  = errors.New("ledstrip: data GPIO pin is invalid")
	ErrClockPin = errors.New("ledstrip: clock GPIO pin is invalid")
)

// BitBangConfig describes a bit-banged serial bus on two GPIO pins.
type BitBangConfig struct {
	// Data is the serial data out pin.
	Data gpio.PinOut

	// Clock is the serial clock pin.
	Clock gpio.PinOut

	// DataRate is the clock frequency. The zero value selects 1MHz.
	DataRate physic.Frequency
}

type bitBangWriter struct {
	data      gpio.PinOut
	clock     gpio.PinOut
	halfCycle time.Duration
}

// OpenBitBang opens a bit-banged serial bus for clocked strips on any
// two GPIO pins.
func OpenBitBang(config *BitBangConfig) (Writer, error) {
	if config == nil {
		config = new(BitBangConfig)
	}
	if config.Data == nil || config.Data == gpio.INVALID {
		return nil, ErrDataPin
	}
	if config.Clock == nil || config.Clock == gpio.INVALID {
		return nil, ErrClockPin
	}

	rate := config.DataRate
	if rate == 0 {
		rate = physic.MegaHertz
	}

	w := &bitBangWriter{
		data:      config.Data,
		clock:     config.Clock,
		halfCycle: rate.Period() / 2,
	}
	if err := w.clock.Out(gpio.Low); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *bitBangWriter) String() string {
	return fmt.Sprintf("bit-bang data=%s clock=%s", w.data, w.clock)
}

func (w *bitBangWriter) Close() error {
	if err := w.data.Out(gpio.Low); err != nil {
		return err
	}
	return w.clock.Out(gpio.Low)
}

func (w *bitBangWriter) Write(data []byte) error {
	for _, v := range data {
		for mask := uint8(0b1000_0000); mask != 0; mask >>= 1 {
			if err := w.data.Out(gpio.Level(v&mask != 0)); err != nil {
				return err
			}
			if err := w.clock.Out(gpio.High); err != nil {
				return err
			}
			nanospin(w.halfCycle)
			if err := w.clock.Out(gpio.Low); err != nil {
				return err
			}
			nanospin(w.halfCycle)
		}
	}
	return nil
}

// PulsePinConfig describes the data pin of a clockless strip.
type PulsePinConfig struct {
	// Pin is the data out pin.
	Pin gpio.PinOut
}

type pulsePinWriter struct {
	pin gpio.PinOut
}

// OpenPulsePin opens a single GPIO data pin for clockless strips.
// Pulse periods are busy-waited in user space, so the resulting jitter
// only suits chips with lenient timing, or testing.
func OpenPulsePin(config *PulsePinConfig) (PulseWriter, error) {
	if config == nil {
		config = new(PulsePinConfig)
	}
	if config.Pin == nil || config.Pin == gpio.INVALID {
		return nil, ErrDataPin
	}
	return &pulsePinWriter{pin: config.Pin}, nil
}

func (w *pulsePinWriter) String() string {
	return fmt.Sprintf("pulse pin %s", w.pin)
}

func (w *pulsePinWriter) Close() error {
	return w.pin.Out(gpio.Low)
}

func (w *pulsePinWriter) Cap() int {
	return 0
}

func (w *pulsePinWriter) WritePulses(pulses []Pulse) error {
	for _, p := range pulses {
		if p.High > 0 {
			if err := w.pin.Out(gpio.High); err != nil {
				return err
			}
			nanospin(p.High)
		}
		if p.Low > 0 {
			if err := w.pin.Out(gpio.Low); err != nil {
				return err
			}
			nanospin(p.Low)
		}
	}
	return nil
}

// nanospin busy-waits. time.Sleep overshoots by orders of magnitude at
// these scales.
func nanospin(d time.Duration) {
	for t := time.Now(); time.Since(t) < d; {
	}
}
