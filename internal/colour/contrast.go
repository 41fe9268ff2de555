package colour

import "math"

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect converts an sRGB component to linear light.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The result does not depend on argument order.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// LuminanceHex is Luminance for a hex colour string.
func LuminanceHex(s string) (float64, error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return 0, err
	}
	return Luminance(rgb), nil
}

// ContrastRatioHex is ContrastRatio for two hex colour strings.
func ContrastRatioHex(a, b string) (float64, error) {
	ra, err := ParseHex(a)
	if err != nil {
		return 0, err
	}
	rb, err := ParseHex(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(ra, rb), nil
}
