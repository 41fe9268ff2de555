package colour

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultSwatchWidth = 8

// Swatch returns a solid terminal block of the given colour.
func Swatch(hex string, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", width))
}

// SwatchWithText renders text in fg over bg, padded by one cell each side.
func SwatchWithText(fg, bg, text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(text)
}

// FormatWithPreview formats a colour with its swatch and hex code.
func FormatWithPreview(hex string, width int) string {
	return Swatch(hex, width) + " " + hex
}
