package pixel

import (
	"image/color"
	"math"
)

// RGB is a color in linear RGB space, the working space of this package.
//
// All other color models convert through linear RGB, and the LED drivers
// consume it when they serialize a frame. Components are nominally in the
// [0, 1] range; out of range values are preserved by conversions and only
// clamped on quantization.
type RGB struct {
	R, G, B float64
}

// SRGB is a gamma-encoded sRGB color.
//
// This is the encoding used by [image/color] and by practically all 8-bit
// image data. Use [SRGB.Linear] before doing any math on the components.
type SRGB struct {
	R, G, B float64
}

// GammaRGB is an RGB color encoded with a simple power-law gamma.
type GammaRGB struct {
	R, G, B float64
	Gamma   float64
}

// Linear decodes the color to linear RGB using the piecewise sRGB transfer
// function.
func (c SRGB) Linear() RGB {
	return RGB{
		R: srgbDecode(c.R),
		G: srgbDecode(c.G),
		B: srgbDecode(c.B),
	}
}

func (c SRGB) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R)*0xffff + 0.5)
	g = uint32(clamp01(c.G)*0xffff + 0.5)
	b = uint32(clamp01(c.B)*0xffff + 0.5)
	a = 0xffff
	return
}

// SRGB encodes the color with the piecewise sRGB transfer function.
func (c RGB) SRGB() SRGB {
	return SRGB{
		R: srgbEncode(c.R),
		G: srgbEncode(c.G),
		B: srgbEncode(c.B),
	}
}

// Gamma encodes the color with a power-law gamma.
func (c RGB) Gamma(gamma float64) GammaRGB {
	return GammaRGB{
		R:     gammaEncode(c.R, gamma),
		G:     gammaEncode(c.G, gamma),
		B:     gammaEncode(c.B, gamma),
		Gamma: gamma,
	}
}

// Correct applies color correction factors, a gamma encoding and a
// brightness level, in that order, and clamps the result to [0, 1].
//
// This is the final adjustment a driver applies before quantizing a pixel
// for the wire. A gamma of 0 or 1 leaves the gamma step out, a brightness
// of 1 leaves the level untouched.
func (c RGB) Correct(cor Correction, gamma, brightness float64) RGB {
	r := c.R * cor.R
	g := c.G * cor.G
	b := c.B * cor.B
	if gamma > 0 && gamma != 1 {
		r = gammaEncode(r, gamma)
		g = gammaEncode(g, gamma)
		b = gammaEncode(b, gamma)
	}
	return RGB{
		R: clamp01(r * brightness),
		G: clamp01(g * brightness),
		B: clamp01(b * brightness),
	}
}

// RGB8 quantizes the color to three 8-bit channel values.
func (c RGB) RGB8() (r, g, b uint8) {
	r = uint8(clamp01(c.R) * 255)
	g = uint8(clamp01(c.G) * 255)
	b = uint8(clamp01(c.B) * 255)
	return
}

// RGB16 quantizes the color to three 16-bit channel values.
func (c RGB) RGB16() (r, g, b uint16) {
	r = uint16(clamp01(c.R) * 65535)
	g = uint16(clamp01(c.G) * 65535)
	b = uint16(clamp01(c.B) * 65535)
	return
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.SRGB().RGBA()
}

// Linear decodes the color to linear RGB.
func (c GammaRGB) Linear() RGB {
	return RGB{
		R: gammaDecode(c.R, c.Gamma),
		G: gammaDecode(c.G, c.Gamma),
		B: gammaDecode(c.B, c.Gamma),
	}
}

func (c GammaRGB) RGBA() (r, g, b, a uint32) {
	return c.Linear().RGBA()
}

func srgbDecode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func srgbEncode(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func gammaEncode(v, gamma float64) float64 {
	return math.Pow(v, 1/gamma)
}

func gammaDecode(v, gamma float64) float64 {
	return math.Pow(v, gamma)
}

// clamp01 clamps v to [0, 1], mapping NaN to 0.
func clamp01(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v > 0:
		return v
	default:
		return 0
	}
}

// Models for the color types in this package.
var (
	LinearModel color.Model = color.ModelFunc(linearModel)
	SRGBModel   color.Model = color.ModelFunc(srgbModel)
)

func linearModel(c color.Color) color.Color {
	if v, ok := toLinear(c); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return SRGB{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
	}.Linear()
}

func srgbModel(c color.Color) color.Color {
	if c, ok := c.(SRGB); ok {
		return c
	}
	return linearModel(c).(RGB).SRGB()
}

// toLinear converts any of the package's own color types to linear RGB
// without passing through the lossy 16-bit RGBA interface.
func toLinear(c color.Color) (RGB, bool) {
	switch c := c.(type) {
	case RGB:
		return c, true
	case SRGB:
		return c.Linear(), true
	case GammaRGB:
		return c.Linear(), true
	case XYZ:
		return c.Linear(), true
	case LMS:
		return c.Linear(), true
	case Oklab:
		return c.Linear(), true
	case Okhsv:
		return c.Linear(), true
	case Okhsl:
		return c.Linear(), true
	case HSV[Spectrum]:
		return c.Linear(), true
	case HSV[Rainbow]:
		return c.Linear(), true
	case HSI[Spectrum]:
		return c.Linear(), true
	case HSI[Rainbow]:
		return c.Linear(), true
	case RGBW:
		return c.RGB(), true
	}
	return RGB{}, false
}
