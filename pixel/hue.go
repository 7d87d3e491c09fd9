package pixel

// HueMap converts a hue in [0, 1) turns to a fully saturated color.
//
// It is used as a type parameter on [HSV] and [HSI], so the hue mapping of a
// color is fixed at compile time and carries no per-value cost.
type HueMap interface {
	HueRGB(h float64) RGB
}

// Spectrum is a [HueMap] that divides the hue circle in three equal sections
// that linearly blend red to green, green to blue and blue to red.
type Spectrum struct{}

// HueRGB implements the HueMap interface.
func (Spectrum) HueRGB(h float64) RGB {
	x := wrapHue(h) * 3
	section := int(x)
	rise := x - float64(section)
	fall := 1 - rise
	switch section % 3 {
	case 0:
		return RGB{R: fall, G: rise}
	case 1:
		return RGB{G: fall, B: rise}
	default:
		return RGB{R: rise, B: fall}
	}
}

// Rainbow is a [HueMap] that divides the hue circle in eight sections with a
// widened yellow band, which reads as a more evenly spaced rainbow on LEDs
// than the plain [Spectrum] blend.
type Rainbow struct{}

// HueRGB implements the HueMap interface.
func (Rainbow) HueRGB(h float64) RGB {
	const (
		third     = 1.0 / 3.0
		twoThirds = 2.0 / 3.0
	)

	x := wrapHue(h) * 8
	section := int(x)
	p := x - float64(section)

	switch section % 8 {
	case 0: // red to orange
		return RGB{R: 1 - p*third, G: p * third}
	case 1: // orange to yellow
		return RGB{R: twoThirds, G: third + p*third}
	case 2: // yellow to green
		return RGB{R: twoThirds * (1 - p), G: twoThirds + p*third}
	case 3: // green to aqua
		return RGB{G: 1 - p*third, B: p * third}
	case 4: // aqua to blue
		return RGB{G: twoThirds * (1 - p), B: third + p*twoThirds}
	case 5: // blue to purple
		return RGB{R: p * third, B: 1 - p*third}
	case 6: // purple to pink
		return RGB{R: third + p*third, B: twoThirds - p*third}
	default: // pink to red
		return RGB{R: twoThirds + p*third, B: third * (1 - p)}
	}
}
