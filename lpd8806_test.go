package ledstrip

import (
	"bytes"
	"testing"

	"github.com/BeatGlow/ledstrip/pixel"
)

func TestLPD8806Frame(t *testing.T) {
	w := new(testWriter)
	s, err := LPD8806(w, &Config{Count: 2})
	if err != nil {
		t.Fatal(err)
	}

	s.Set(0, pixel.RGB{R: 1})
	s.Set(1, pixel.RGB{G: 1})
	if err = s.Refresh(); err != nil {
		t.Fatal(err)
	}

	want := []byte{
		0x00, 0x00, 0x00, 0x00, // start frame
		0x80, 0xff, 0x80, // red, in GRB order
		0xff, 0x80, 0x80, // green
		0x00, // end frame
	}
	if !bytes.Equal(w.frames[0], want) {
		t.Errorf("expected frame\n%#v, got\n%#v", want, w.frames[0])
	}
}

func TestLPD8806Brightness(t *testing.T) {
	w := new(testWriter)
	s, err := LPD8806(w, &Config{Count: 1, Brightness: 0.5})
	if err != nil {
		t.Fatal(err)
	}

	s.Set(0, pixel.RGB{R: 1, G: 1, B: 1})
	if err = s.Refresh(); err != nil {
		t.Fatal(err)
	}

	want := []byte{0x00, 0x00, 0x00, 0x00, 0xc0, 0xc0, 0xc0}
	if !bytes.Equal(w.frames[0], want) {
		t.Errorf("expected frame %#v, got %#v", want, w.frames[0])
	}
}

func TestLPD8806MarkerBit(t *testing.T) {
	w := new(testWriter)
	s, err := LPD8806(w, &Config{Count: 8})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < s.Len(); i++ {
		s.Set(i, pixel.RGB{R: float64(i) / 8, G: 0.1, B: 0.9})
	}
	if err = s.Refresh(); err != nil {
		t.Fatal(err)
	}

	frame := w.frames[0]
	for i := 4; i < 4+8*3; i++ {
		if frame[i]&0x80 == 0 {
			t.Fatalf("expected the marker bit on byte %d, got %#02x", i, frame[i])
		}
	}
}

func TestTo7bit(t *testing.T) {
	var testCases = []struct {
		v    uint16
		want uint8
	}{
		{0x0000, 0x80},
		{0x8000, 0xc0},
		{0xffff, 0xff},
	}
	for _, test := range testCases {
		if v := to7bit(test.v); v != test.want {
			t.Errorf("expected to7bit(%#04x) to be %#02x, got %#02x", test.v, test.want, v)
		}
	}
}
