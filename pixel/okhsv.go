package pixel

import "math"

// Okhsv is a hue, saturation and value transform of [Oklab].
//
// The hue is measured in turns, so 0 and 1 both are the positive A axis of
// Oklab. Saturation scales the chroma against an approximate maximum for the
// value, so a saturation of 1 stays close to the edge of the displayable
// gamut at any value.
//
// Conversions do not clamp their inputs; use [NewOkhsv] to construct a
// normalized color.
type Okhsv struct {
	H, S, V float64
}

// Okhsl is a hue, saturation and lightness transform of [Oklab].
//
// It behaves like [Okhsv] but scales chroma against the lightness in both
// directions, so colors desaturate towards both black and white.
type Okhsl struct {
	H, S, L float64
}

// NewOkhsv returns an Okhsv color with the hue wrapped to [0, 1) and the
// saturation and value clamped to [0, 1].
func NewOkhsv(h, s, v float64) Okhsv {
	return Okhsv{H: wrapHue(h), S: clamp01(s), V: clamp01(v)}
}

// NewOkhsl returns an Okhsl color with the hue wrapped to [0, 1) and the
// saturation and lightness clamped to [0, 1].
func NewOkhsl(h, s, l float64) Okhsl {
	return Okhsl{H: wrapHue(h), S: clamp01(s), L: clamp01(l)}
}

// Oklab converts the color to Oklab.
func (c Okhsv) Oklab() Oklab {
	chroma := c.S * okhsvMaxChroma(c.V)
	angle := 2 * math.Pi * c.H
	return Oklab{
		L: c.V,
		A: chroma * math.Cos(angle),
		B: chroma * math.Sin(angle),
	}
}

// Linear converts the color to linear RGB.
func (c Okhsv) Linear() RGB {
	return c.Oklab().Linear()
}

func (c Okhsv) RGBA() (r, g, b, a uint32) {
	return c.Linear().RGBA()
}

// Oklab converts the color to Oklab.
func (c Okhsl) Oklab() Oklab {
	chroma := c.S * okhslMaxChroma(c.L)
	angle := 2 * math.Pi * c.H
	return Oklab{
		L: c.L,
		A: chroma * math.Cos(angle),
		B: chroma * math.Sin(angle),
	}
}

// Linear converts the color to linear RGB.
func (c Okhsl) Linear() RGB {
	return c.Oklab().Linear()
}

func (c Okhsl) RGBA() (r, g, b, a uint32) {
	return c.Linear().RGBA()
}

// Okhsv converts the color to Okhsv. Colors near the gamut edge can come out
// with a saturation above 1.
func (c RGB) Okhsv() Okhsv {
	return c.Oklab().Okhsv()
}

// Okhsl converts the color to Okhsl.
func (c RGB) Okhsl() Okhsl {
	return c.Oklab().Okhsl()
}

// Okhsv converts the color to Okhsv.
func (c Oklab) Okhsv() Okhsv {
	chroma, h := polarChroma(c.A, c.B)
	var s float64
	if max := okhsvMaxChroma(c.L); max > 0 {
		s = chroma / max
	}
	return Okhsv{H: h, S: s, V: c.L}
}

// Okhsl converts the color to Okhsl.
func (c Oklab) Okhsl() Okhsl {
	chroma, h := polarChroma(c.A, c.B)
	var s float64
	if max := okhslMaxChroma(c.L); max > 0 {
		s = chroma / max
	}
	return Okhsl{H: h, S: s, L: c.L}
}

// okhsvMaxChroma approximates the maximum chroma of the sRGB gamut at value v.
func okhsvMaxChroma(v float64) float64 {
	return 0.4 * v
}

// okhslMaxChroma approximates the maximum chroma of the sRGB gamut at
// lightness l, falling off towards both black and white.
func okhslMaxChroma(l float64) float64 {
	if l < 0.5 {
		return 0.4 * l
	}
	return 0.4 * (1 - l)
}

// polarChroma converts the opponent axes to a chroma and a hue in turns.
func polarChroma(a, b float64) (chroma, hue float64) {
	chroma = math.Hypot(a, b)
	hue = math.Atan2(b, a) / (2 * math.Pi)
	if hue < 0 {
		hue++
	}
	return
}

// wrapHue wraps a hue to [0, 1) turns.
func wrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	return h
}
