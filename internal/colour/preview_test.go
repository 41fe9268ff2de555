package colour

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSwatch(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "explicit width", width: 4, want: 4},
		{name: "default width", width: 0, want: defaultSwatchWidth},
		{name: "negative width", width: -1, want: defaultSwatchWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lipgloss.Width(Swatch("#1e40af", tt.width)); got != tt.want {
				t.Errorf("Swatch() width = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSwatchWithText(t *testing.T) {
	got := SwatchWithText("#ffffff", "#1e40af", "label")
	if !strings.Contains(got, "label") {
		t.Errorf("SwatchWithText() = %q, want it to contain the text", got)
	}
	if w := lipgloss.Width(got); w != len("label")+2 {
		t.Errorf("SwatchWithText() width = %d, want %d", w, len("label")+2)
	}
}

func TestFormatWithPreview(t *testing.T) {
	got := FormatWithPreview("#059669", 3)
	if !strings.HasSuffix(got, " #059669") {
		t.Errorf("FormatWithPreview() = %q, want hex suffix", got)
	}
	if w := lipgloss.Width(got); w != 3+1+7 {
		t.Errorf("FormatWithPreview() width = %d, want %d", w, 11)
	}
}
