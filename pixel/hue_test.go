package pixel

import "testing"

func TestSpectrum(t *testing.T) {
	testCases := []struct {
		h    float64
		want RGB
	}{
		{0, RGB{R: 1}},
		{1.0 / 6, RGB{R: 0.5, G: 0.5}},
		{1.0 / 3, RGB{G: 1}},
		{0.5, RGB{G: 0.5, B: 0.5}},
		{2.0 / 3, RGB{B: 1}},
		{5.0 / 6, RGB{R: 0.5, B: 0.5}},
		{1, RGB{R: 1}},
		{-0.5, RGB{G: 0.5, B: 0.5}},
	}
	for _, test := range testCases {
		if got := (Spectrum{}).HueRGB(test.h); !rgbNear(got, test.want) {
			t.Errorf("expected hue %v to map to %+v, got %+v", test.h, test.want, got)
		}
	}
}

func TestRainbow(t *testing.T) {
	const third = 1.0 / 3.0
	testCases := []struct {
		h    float64
		want RGB
	}{
		{0, RGB{R: 1}},
		{0.125, RGB{R: 2 * third, G: third}},
		{0.25, RGB{R: 2 * third, G: 2 * third}},
		{0.375, RGB{G: 1}},
		{0.5, RGB{G: 2 * third, B: third}},
		{0.625, RGB{B: 1}},
		{0.75, RGB{R: third, B: 2 * third}},
		{0.875, RGB{R: 2 * third, B: third}},
		{1, RGB{R: 1}},
	}
	for _, test := range testCases {
		if got := (Rainbow{}).HueRGB(test.h); !rgbNear(got, test.want) {
			t.Errorf("expected hue %v to map to %+v, got %+v", test.h, test.want, got)
		}
	}
}

// Both hue maps must be continuous across their section boundaries and
// across the wrap from 1 back to 0.
func TestHueContinuity(t *testing.T) {
	const step = 1e-7

	maps := []struct {
		name     string
		m        HueMap
		sections int
	}{
		{"spectrum", Spectrum{}, 3},
		{"rainbow", Rainbow{}, 8},
	}
	for _, test := range maps {
		t.Run(test.name, func(it *testing.T) {
			for i := 1; i <= test.sections; i++ {
				h := float64(i) / float64(test.sections)
				lo := test.m.HueRGB(h - step)
				hi := test.m.HueRGB(h + step)
				if !rgbNear(lo, hi) {
					it.Errorf("expected continuity at hue %v, got %+v and %+v", h, lo, hi)
				}
			}
		})
	}
}

func TestHSV(t *testing.T) {
	// Zero saturation is gray, regardless of hue.
	if got := NewHSV[Spectrum](0.4, 0, 0.5).Linear(); !rgbNear(got, RGB{R: 0.5, G: 0.5, B: 0.5}) {
		t.Errorf("expected gray, got %+v", got)
	}

	// Zero value is black, regardless of hue and saturation.
	if got := NewHSV[Spectrum](0.7, 1, 0).Linear(); got != (RGB{}) {
		t.Errorf("expected black, got %+v", got)
	}

	// Full saturation and value is the pure hue.
	if got := NewHSV[Spectrum](0, 1, 1).Linear(); !rgbNear(got, RGB{R: 1}) {
		t.Errorf("expected pure red, got %+v", got)
	}
	if got := NewHSV[Rainbow](0.5, 1, 1).Linear(); !rgbNear(got, RGB{G: 2.0 / 3, B: 1.0 / 3}) {
		t.Errorf("expected aqua, got %+v", got)
	}

	// Partial saturation blends towards gray.
	got := HSV[Spectrum]{H: 0, S: 0.5, V: 0.8}.Linear()
	if want := (RGB{R: 0.8, G: 0.4, B: 0.4}); !rgbNear(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestHSI(t *testing.T) {
	if got := NewHSI[Rainbow](0.2, 0, 0.25).Linear(); !rgbNear(got, RGB{R: 0.25, G: 0.25, B: 0.25}) {
		t.Errorf("expected gray, got %+v", got)
	}

	if got := NewHSI[Rainbow](0, 1, 0.5).Linear(); !rgbNear(got, RGB{R: 0.5}) {
		t.Errorf("expected half red, got %+v", got)
	}

	got := HSI[Spectrum]{H: 1.0 / 3, S: 0.5, I: 0.8}.Linear()
	if want := (RGB{R: 0.4, G: 0.8, B: 0.4}); !rgbNear(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
