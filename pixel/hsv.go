package pixel

// HSV is a hue, saturation and value color over the hue map M.
//
// The channels produced by the hue map are treated as linear RGB, so the
// blend towards gray and black happens in linear light.
type HSV[M HueMap] struct {
	H, S, V float64
}

// HSI is a hue, saturation and intensity color over the hue map M. It blends
// exactly like [HSV], with the intensity taking the role of the value.
type HSI[M HueMap] struct {
	H, S, I float64
}

// NewHSV returns a HSV color with the hue wrapped to [0, 1) and the
// saturation and value clamped to [0, 1].
func NewHSV[M HueMap](h, s, v float64) HSV[M] {
	return HSV[M]{H: wrapHue(h), S: clamp01(s), V: clamp01(v)}
}

// NewHSI returns a HSI color with the hue wrapped to [0, 1) and the
// saturation and intensity clamped to [0, 1].
func NewHSI[M HueMap](h, s, i float64) HSI[M] {
	return HSI[M]{H: wrapHue(h), S: clamp01(s), I: clamp01(i)}
}

// Linear converts the color to linear RGB.
func (c HSV[M]) Linear() RGB {
	var m M
	return hueBlend(m.HueRGB(c.H), c.S, c.V)
}

func (c HSV[M]) RGBA() (r, g, b, a uint32) {
	return c.Linear().RGBA()
}

// Linear converts the color to linear RGB.
func (c HSI[M]) Linear() RGB {
	var m M
	return hueBlend(m.HueRGB(c.H), c.S, c.I)
}

func (c HSI[M]) RGBA() (r, g, b, a uint32) {
	return c.Linear().RGBA()
}

// hueBlend scales a pure hue color by value v and blends it towards gray for
// saturations below 1.
func hueBlend(hue RGB, s, v float64) RGB {
	switch {
	case s <= 0:
		return RGB{R: v, G: v, B: v}
	case v <= 0:
		return RGB{}
	case s >= 1:
		return RGB{R: hue.R * v, G: hue.G * v, B: hue.B * v}
	}

	gray := v * (1 - s)
	return RGB{
		R: hue.R*s*v + gray,
		G: hue.G*s*v + gray,
		B: hue.B*s*v + gray,
	}
}
