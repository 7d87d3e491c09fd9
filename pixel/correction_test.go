package pixel

import (
	"math"
	"testing"
)

func TestCorrect(t *testing.T) {
	c := RGB{R: 0.5, G: 0.5, B: 0.5}

	if got := c.Correct(NoCorrection, 1, 1); got != c {
		t.Errorf("expected neutral settings to pass the color through, got %+v", got)
	}

	got := c.Correct(Correction{R: 1, G: 0.5, B: 0.25}, 1, 0.5)
	if want := (RGB{R: 0.25, G: 0.125, B: 0.0625}); !rgbNear(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	// Correction applies before the gamma encoding, brightness after.
	got = RGB{R: 0.5}.Correct(Correction{R: 0.5, G: 1, B: 1}, 2, 0.5)
	if want := math.Sqrt(0.25) * 0.5; math.Abs(got.R-want) > testEpsilon {
		t.Errorf("expected red %v, got %v", want, got.R)
	}
}

func TestCorrectClamp(t *testing.T) {
	got := RGB{R: 0.8, G: -0.2, B: 2}.Correct(NoCorrection, 1, 2)
	if got.R != 1 || got.G != 0 || got.B != 1 {
		t.Errorf("expected the result to clamp to [0, 1], got %+v", got)
	}
}

func TestTemperatureCorrection(t *testing.T) {
	if got := TemperatureCorrection(6600); got != NoCorrection {
		t.Errorf("expected 6600K to be neutral, got %+v", got)
	}

	warm := TemperatureCorrection(1000)
	if warm.R != 1 || warm.B != 0 {
		t.Errorf("expected candle light to be pure warm, got %+v", warm)
	}
	if warm.G < 0.2 || warm.G > 0.3 {
		t.Errorf("expected candle light green factor between 0.2 and 0.3, got %v", warm.G)
	}

	cool := TemperatureCorrection(20000)
	if cool.B != 1 || cool.R >= 1 {
		t.Errorf("expected a cool white to attenuate red, got %+v", cool)
	}

	// Out of range temperatures clamp to the supported range.
	if got := TemperatureCorrection(100); got != TemperatureCorrection(1000) {
		t.Errorf("expected temperatures below 1000K to clamp, got %+v", got)
	}
	if got := TemperatureCorrection(1e6); got != TemperatureCorrection(40000) {
		t.Errorf("expected temperatures above 40000K to clamp, got %+v", got)
	}
}

func TestTemperatureCorrectionMonotonic(t *testing.T) {
	prev := TemperatureCorrection(1000)
	for kelvin := 1100.0; kelvin <= 40000; kelvin += 100 {
		cur := TemperatureCorrection(kelvin)
		if cur.R > prev.R+testEpsilon {
			t.Fatalf("expected red to fall with temperature, got %v after %v at %vK", cur.R, prev.R, kelvin)
		}
		if cur.B < prev.B-testEpsilon {
			t.Fatalf("expected blue to rise with temperature, got %v after %v at %vK", cur.B, prev.B, kelvin)
		}
		prev = cur
	}
}

func TestExtractWhite(t *testing.T) {
	got := RGB{R: 0.5, G: 0.2, B: 0.8}.ExtractWhite()
	if want := (RGBW{R: 0.3, G: 0, B: 0.6, W: 0.2}); !rgbwNear(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	// Gray maps entirely to the white channel.
	got = RGB{R: 0.4, G: 0.4, B: 0.4}.ExtractWhite()
	if want := (RGBW{W: 0.4}); !rgbwNear(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	// Folding the white channel back in restores the original color.
	for _, c := range testColors {
		want := c.Linear()
		if got := want.ExtractWhite().RGB(); !rgbNear(got, want) {
			t.Errorf("expected %+v to survive a white extraction, got %+v", want, got)
		}
	}
}

func TestRGBWCorrect(t *testing.T) {
	// Correction factors only touch the color channels.
	c := RGBW{R: 0.5, G: 0.5, B: 0.5, W: 1}
	got := c.Correct(Correction{R: 0.5, G: 0.5, B: 0.5}, 1, 1)
	if want := (RGBW{R: 0.25, G: 0.25, B: 0.25, W: 1}); !rgbwNear(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	// Brightness scales all four channels.
	got = c.Correct(NoCorrection, 1, 0.5)
	if want := (RGBW{R: 0.25, G: 0.25, B: 0.25, W: 0.5}); !rgbwNear(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestRGBW8(t *testing.T) {
	r, g, b, w := RGBW{R: 1, G: 0.5, B: 0, W: 1}.RGBW8()
	if r != 255 || g != 127 || b != 0 || w != 255 {
		t.Errorf("expected (255, 127, 0, 255), got (%d, %d, %d, %d)", r, g, b, w)
	}
}

func rgbwNear(a, b RGBW) bool {
	return math.Abs(a.R-b.R) <= testEpsilon &&
		math.Abs(a.G-b.G) <= testEpsilon &&
		math.Abs(a.B-b.B) <= testEpsilon &&
		math.Abs(a.W-b.W) <= testEpsilon
}
