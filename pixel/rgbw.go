package pixel

import "math"

// RGBW is a linear RGB color with a separate white channel, as driven by
// RGBW LED chips such as the SK6812.
type RGBW struct {
	R, G, B, W float64
}

// ExtractWhite splits the white component out of the color.
//
// The white channel takes the smallest of the three color channels, and that
// amount is subtracted from each of them, so at least one of the resulting
// color channels is zero. [RGBW.RGB] reverses the split.
func (c RGB) ExtractWhite() RGBW {
	w := math.Min(c.R, math.Min(c.G, c.B))
	return RGBW{
		R: c.R - w,
		G: c.G - w,
		B: c.B - w,
		W: w,
	}
}

// RGB folds the white channel back into the color channels.
func (c RGBW) RGB() RGB {
	return RGB{
		R: c.R + c.W,
		G: c.G + c.W,
		B: c.B + c.W,
	}
}

// Correct applies color correction factors, a gamma encoding and a
// brightness level, and clamps the result to [0, 1].
//
// The correction factors compensate for the tint of the color LEDs and so
// apply to the color channels only; gamma and brightness apply to all four
// channels.
func (c RGBW) Correct(cor Correction, gamma, brightness float64) RGBW {
	r := c.R * cor.R
	g := c.G * cor.G
	b := c.B * cor.B
	w := c.W
	if gamma > 0 && gamma != 1 {
		r = gammaEncode(r, gamma)
		g = gammaEncode(g, gamma)
		b = gammaEncode(b, gamma)
		w = gammaEncode(w, gamma)
	}
	return RGBW{
		R: clamp01(r * brightness),
		G: clamp01(g * brightness),
		B: clamp01(b * brightness),
		W: clamp01(w * brightness),
	}
}

// RGBW8 quantizes the color to four 8-bit channel values.
func (c RGBW) RGBW8() (r, g, b, w uint8) {
	r = uint8(clamp01(c.R) * 255)
	g = uint8(clamp01(c.G) * 255)
	b = uint8(clamp01(c.B) * 255)
	w = uint8(clamp01(c.W) * 255)
	return
}

func (c RGBW) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}
