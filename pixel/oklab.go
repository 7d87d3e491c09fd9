package pixel

import "math"

// LMS holds the long, medium and short cone responses of a color. It is the
// intermediate space of the Oklab transform.
type LMS struct {
	L, M, S float64
}

// Oklab is a perceptual color space with lightness L and the green-red and
// blue-yellow opponent axes A and B.
//
// Distances in Oklab correspond much better to perceived color differences
// than distances in RGB, which makes it the space of choice for smooth
// gradients and color blending on a LED strip.
type Oklab struct {
	L, A, B float64
}

// LMS converts the color to cone responses.
func (c RGB) LMS() LMS {
	return LMS{
		L: 0.4122214708*c.R + 0.5363325363*c.G + 0.0514459929*c.B,
		M: 0.2119034982*c.R + 0.6806995451*c.G + 0.1073969566*c.B,
		S: 0.0883024619*c.R + 0.2817188376*c.G + 0.6299787005*c.B,
	}
}

// Oklab converts the color to Oklab.
func (c RGB) Oklab() Oklab {
	return c.LMS().Oklab()
}

// Linear converts the cone responses to linear RGB.
func (c LMS) Linear() RGB {
	return RGB{
		R: 4.0767416621*c.L - 3.3077115913*c.M + 0.2309699292*c.S,
		G: -1.2684380046*c.L + 2.6097574011*c.M - 0.3413193965*c.S,
		B: -0.0041960863*c.L - 0.7034186147*c.M + 1.7076147010*c.S,
	}
}

// XYZ converts the cone responses to CIE XYZ.
func (c LMS) XYZ() XYZ {
	return c.Linear().XYZ()
}

// Oklab converts the cone responses to Oklab by taking the cube root of each
// response and applying the Oklab opponent matrix.
func (c LMS) Oklab() Oklab {
	l := math.Cbrt(c.L)
	m := math.Cbrt(c.M)
	s := math.Cbrt(c.S)
	return Oklab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

func (c LMS) RGBA() (r, g, b, a uint32) {
	return c.Linear().RGBA()
}

// LMS converts the color to cone responses by inverting the opponent matrix
// and cubing the result.
func (c Oklab) LMS() LMS {
	l := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	m := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	s := c.L - 0.0894841775*c.A - 1.2914855480*c.B
	return LMS{
		L: l * l * l,
		M: m * m * m,
		S: s * s * s,
	}
}

// Linear converts the color to linear RGB.
func (c Oklab) Linear() RGB {
	return c.LMS().Linear()
}

func (c Oklab) RGBA() (r, g, b, a uint32) {
	return c.Linear().RGBA()
}
