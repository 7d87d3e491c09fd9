// Package pixel implements the color models used by addressable LED strips.
//
// This module provides linear and gamma-encoded sRGB colors, the CIE XYZ,
// cone response and Oklab color spaces, hue based models for animations, and
// the channel ordering and color correction applied when pixels are
// serialized for a LED driver chip. All color types are compatible with Go's
// native [image/color.Color] interface.
package pixel
