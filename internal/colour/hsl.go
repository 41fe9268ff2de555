package colour

import "math"

// HSL is a colour in hue (degrees, [0, 360)), saturation and lightness
// ([0, 1]) form.
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// WithLightness returns a copy with lightness set to l clamped to [0, 1].
func (c HSL) WithLightness(l float64) HSL {
	c.L = math.Max(0, math.Min(1, l))
	return c
}

// RGBToHSL converts RGB to HSL colour space.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic (grey).
		return HSL{L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	return HSL{H: h * 60, S: s, L: l}
}

// HSLToRGB converts HSL to RGB colour space, rounding each channel.
// A round trip through HSL may move a channel by at most 1.
func HSLToRGB(c HSL) RGB {
	return RGBFromFloat(hslChannels(c))
}

// hslChannels returns the unrounded RGB channels in [0, 255].
func hslChannels(c HSL) (r, g, b float64) {
	if c.S == 0 {
		v := c.L * 255
		return v, v, v
	}

	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q

	return hueToRGB(p, q, c.H+120) * 255,
		hueToRGB(p, q, c.H) * 255,
		hueToRGB(p, q, c.H-120) * 255
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}
