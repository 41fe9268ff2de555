// Package colour is the colour engine used by chart builders.
//
// It converts between hex, RGB and HSL, computes WCAG relative luminance and
// contrast ratios, searches for accessible variants of a colour and generates
// categorical, sequential and diverging chart palettes. Every function is pure
// and safe for concurrent use.
package colour

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a string is not a 6 digit hex colour.
var ErrInvalidColorFormat = errors.New("invalid color format")

// DefaultFillAlpha is the alpha used for translucent chart fills.
const DefaultFillAlpha = 0.2

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ParseHex parses "#rrggbb" or "rrggbb" (either case) into RGB.
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidColorFormat, s)
	}

	var b [3]byte
	if _, err := hex.Decode(b[:], []byte(digits)); err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, s, err)
	}

	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// RGBFromFloat builds an RGB from fractional channel values, rounding to the
// nearest integer and clamping to [0, 255].
func RGBFromFloat(r, g, b float64) RGB {
	return RGB{R: channel(r), G: channel(g), B: channel(b)}
}

// HexFromFloat formats fractional channel values as "#rrggbb".
func HexFromFloat(r, g, b float64) string {
	return RGBFromFloat(r, g, b).Hex()
}

func channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// HexToRGBA converts a hex colour to a CSS "rgba(r, g, b, alpha)" string for
// translucent fills. Alpha is clamped to [0, 1].
func HexToRGBA(s string, alpha float64) (string, error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	alpha = math.Max(0, math.Min(1, alpha))
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B, strconv.FormatFloat(alpha, 'f', -1, 64)), nil
}
