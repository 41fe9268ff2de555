package colour

import (
	"errors"
	"math"
	"testing"
)

func TestLevelThreshold(t *testing.T) {
	tests := []struct {
		level  Level
		want   float64
		wantOK bool
	}{
		{level: LevelAA, want: 4.5, wantOK: true},
		{level: LevelAAA, want: 7.0, wantOK: true},
		{level: "A", want: 0, wantOK: false},
		{level: "aa", want: 0, wantOK: false},
		{level: "", want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			got, ok := tt.level.Threshold()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Threshold() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"AA":    LevelAA,
		"aa":    LevelAA,
		" aaa ": LevelAAA,
		"AAA":   LevelAAA,
		"A":     Level("A"),
	}
	for input, want := range tests {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIsAccessible(t *testing.T) {
	tests := []struct {
		name  string
		fg    string
		bg    string
		level Level
		want  bool
	}{
		{name: "blue on white AA", fg: "#1e40af", bg: "#ffffff", level: LevelAA, want: true},
		{name: "blue on white AAA", fg: "#1e40af", bg: "#ffffff", level: LevelAAA, want: true},
		{name: "subtitle grey AA", fg: "#6b7280", bg: "#ffffff", level: LevelAA, want: true},
		{name: "subtitle grey AAA", fg: "#6b7280", bg: "#ffffff", level: LevelAAA, want: false},
		{name: "light blue on white", fg: "#93c5fd", bg: "#ffffff", level: LevelAA, want: false},
		{name: "black on white unknown level", fg: "#000000", bg: "#ffffff", level: "A", want: false},
		{name: "black on white lowercase level", fg: "#000000", bg: "#ffffff", level: "aa", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsAccessible(tt.fg, tt.bg, tt.level)
			if err != nil {
				t.Fatalf("IsAccessible() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAccessible(%q, %q, %q) = %v, want %v", tt.fg, tt.bg, tt.level, got, tt.want)
			}
		})
	}
}

func TestIsAccessibleAAAImpliesAA(t *testing.T) {
	backgrounds := []string{"#ffffff", "#000000", "#1f2937", "#f8fafc", "#777777"}
	for _, bg := range backgrounds {
		for _, fg := range CategoricalPalette() {
			aaa, _ := IsAccessible(fg, bg, LevelAAA)
			aa, _ := IsAccessible(fg, bg, LevelAA)
			if aaa && !aa {
				t.Errorf("%s on %s passes AAA but not AA", fg, bg)
			}
		}
	}
}

func TestIsAccessibleInvalidColour(t *testing.T) {
	if _, err := IsAccessible("#12345", "#ffffff", LevelAA); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("IsAccessible() error = %v, want ErrInvalidColorFormat", err)
	}
}

func TestAccessibleVariant(t *testing.T) {
	tests := []struct {
		name  string
		fg    string
		bg    string
		level Level
		want  string
	}{
		{name: "already accessible keeps input", fg: "1E40AF", bg: "#ffffff", level: LevelAA, want: "1E40AF"},
		{name: "one step darker", fg: "#808080", bg: "#ffffff", level: LevelAA, want: "#737373"},
		{name: "darken blue AA", fg: "#3b82f6", bg: "#ffffff", level: LevelAA, want: "#0b63f3"},
		{name: "darken blue AAA", fg: "#3b82f6", bg: "#ffffff", level: LevelAAA, want: "#094fc2"},
		{name: "darken pale blue", fg: "#93c5fd", bg: "#ffffff", level: LevelAA, want: "#0469d9"},
		{name: "darken grey AAA", fg: "#6b7280", bg: "#ffffff", level: LevelAAA, want: "#545964"},
		{name: "lighten on black", fg: "#1e40af", bg: "#000000", level: LevelAA, want: "#5273e1"},
		{name: "lighten red on slate", fg: "#dc2626", bg: "#1f2937", level: LevelAA, want: "#e76868"},
		{name: "same colour falls back to white", fg: "#777777", bg: "#777777", level: LevelAAA, want: "#ffffff"},
		{name: "unknown level falls back to black", fg: "#000000", bg: "#ffffff", level: "AA+", want: "#000000"},
		{name: "unknown level on dark falls back to white", fg: "#ffffff", bg: "#000000", level: "", want: "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AccessibleVariant(tt.fg, tt.bg, tt.level)
			if err != nil {
				t.Fatalf("AccessibleVariant() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AccessibleVariant(%q, %q, %q) = %s, want %s", tt.fg, tt.bg, tt.level, got, tt.want)
			}
		})
	}
}

func TestAccessibleVariantPreservesHue(t *testing.T) {
	original, _ := ParseHex("#3b82f6")
	got, err := AccessibleVariant("#3b82f6", "#ffffff", LevelAAA)
	if err != nil {
		t.Fatalf("AccessibleVariant() unexpected error: %v", err)
	}
	variant, _ := ParseHex(got)

	before, after := RGBToHSL(original), RGBToHSL(variant)
	if math.Abs(before.H-after.H) > 1 {
		t.Errorf("hue changed from %.2f to %.2f", before.H, after.H)
	}
	if after.L >= before.L {
		t.Errorf("lightness %.3f should be below original %.3f on a light background", after.L, before.L)
	}
}

func TestAccessibleVariantTerminatesAndImproves(t *testing.T) {
	backgrounds := []string{"#ffffff", "#000000", "#1f2937", "#f8fafc", "#777777", "#3b82f6"}
	levels := []Level{LevelAA, LevelAAA, "bogus"}

	for _, bg := range backgrounds {
		for _, fg := range append(CategoricalPalette(), "#ffff00", "#93c5fd", "#777777") {
			for _, level := range levels {
				got, err := AccessibleVariant(fg, bg, level)
				if err != nil {
					t.Fatalf("AccessibleVariant(%s, %s, %s) unexpected error: %v", fg, bg, level, err)
				}
				ok, _ := IsAccessible(got, bg, level)
				if !ok && got != "#000000" && got != "#ffffff" {
					t.Errorf("AccessibleVariant(%s, %s, %s) = %s, neither accessible nor a fallback", fg, bg, level, got)
				}
			}
		}
	}
}

func TestExplainVariant(t *testing.T) {
	t.Run("adjusted", func(t *testing.T) {
		report, err := ExplainVariant("#93c5fd", "#ffffff", LevelAA)
		if err != nil {
			t.Fatalf("ExplainVariant() unexpected error: %v", err)
		}
		if !report.Adjusted || report.Fallback {
			t.Errorf("ExplainVariant() Adjusted=%v Fallback=%v, want true false", report.Adjusted, report.Fallback)
		}
		if report.Steps != 7 {
			t.Errorf("ExplainVariant() Steps = %d, want 7", report.Steps)
		}
		if report.After < ThresholdAA || report.Before >= ThresholdAA {
			t.Errorf("ExplainVariant() contrast %v -> %v does not cross %v", report.Before, report.After, ThresholdAA)
		}
	})

	t.Run("unchanged", func(t *testing.T) {
		report, err := ExplainVariant("#1e40af", "#ffffff", LevelAA)
		if err != nil {
			t.Fatalf("ExplainVariant() unexpected error: %v", err)
		}
		if report.Adjusted || report.Steps != 0 || report.Result != "#1e40af" {
			t.Errorf("ExplainVariant() = %+v, want unchanged result", report)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		report, err := ExplainVariant("#777777", "#777777", LevelAAA)
		if err != nil {
			t.Fatalf("ExplainVariant() unexpected error: %v", err)
		}
		if !report.Fallback || report.Steps != variantMaxSteps || report.Result != "#ffffff" {
			t.Errorf("ExplainVariant() = %+v, want white fallback after %d steps", report, variantMaxSteps)
		}
	})

	t.Run("invalid background", func(t *testing.T) {
		if _, err := ExplainVariant("#777777", "#77", LevelAA); !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("ExplainVariant() error = %v, want ErrInvalidColorFormat", err)
		}
	})
}
