package pixel

import "math"

// Correction holds per channel scaling factors that compensate for the
// different relative intensities of the red, green and blue LEDs on a strip.
// Factors are in the [0, 1] range and applied in linear light.
type Correction struct {
	R, G, B float64
}

// NoCorrection leaves all channels at full intensity.
var NoCorrection = Correction{R: 1, G: 1, B: 1}

// TemperatureCorrection returns correction factors that tint the strip
// towards the color of a black body radiator at the given temperature in
// Kelvin. The temperature is clamped to the 1000K to 40000K range.
//
// The factors use Tanner Helland's well known curve fit of the black body
// locus, normalized so that no factor exceeds 1.
func TemperatureCorrection(kelvin float64) Correction {
	t := math.Min(math.Max(kelvin, 1000), 40000) / 100

	var r, g, b float64
	if t <= 66 {
		r = 255
		g = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}
	switch {
	case t >= 66:
		b = 255
	case t <= 19:
		b = 0
	default:
		b = 138.5177312231*math.Log(t-10) - 305.0447927307
	}

	return Correction{
		R: clamp01(r / 255),
		G: clamp01(g / 255),
		B: clamp01(b / 255),
	}
}
