package colour

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Resolve accepts a hex colour or an SVG 1.1 colour keyword such as "navy"
// (case-insensitive) and returns it as lowercase "#rrggbb".
func Resolve(input string) (string, error) {
	s := strings.TrimSpace(input)

	if rgb, err := ParseHex(s); err == nil {
		return rgb.Hex(), nil
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return ToRGB(c).Hex(), nil
	}

	return "", fmt.Errorf("%w: %q is neither a hex colour nor a colour name", ErrInvalidColorFormat, input)
}
