package pixel

// XYZ is a color in the CIE 1931 XYZ color space with a D65 white point.
type XYZ struct {
	X, Y, Z float64
}

// XYZ converts the color to CIE XYZ.
func (c RGB) XYZ() XYZ {
	return XYZ{
		X: 0.4124564*c.R + 0.3575761*c.G + 0.1804375*c.B,
		Y: 0.2126729*c.R + 0.7151522*c.G + 0.0721750*c.B,
		Z: 0.0193339*c.R + 0.1191920*c.G + 0.9503041*c.B,
	}
}

// Linear converts the color to linear RGB.
func (c XYZ) Linear() RGB {
	return RGB{
		R: 3.2404542*c.X - 1.5371385*c.Y - 0.4985314*c.Z,
		G: -0.9692660*c.X + 1.8760108*c.Y + 0.0415560*c.Z,
		B: 0.0556434*c.X - 0.2040259*c.Y + 1.0572252*c.Z,
	}
}

// LMS converts the color to cone responses.
func (c XYZ) LMS() LMS {
	return c.Linear().LMS()
}

func (c XYZ) RGBA() (r, g, b, a uint32) {
	return c.Linear().RGBA()
}
