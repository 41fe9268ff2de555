package colour

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", input: "#1e40af", want: RGB{R: 30, G: 64, B: 175}},
		{name: "without hash", input: "1e40af", want: RGB{R: 30, G: 64, B: 175}},
		{name: "uppercase", input: "#FFAA00", want: RGB{R: 255, G: 170, B: 0}},
		{name: "black", input: "#000000", want: RGB{}},
		{name: "too short", input: "#fff", wantErr: true},
		{name: "too long", input: "#1e40af00", wantErr: true},
		{name: "not hex", input: "#zzzzzz", wantErr: true},
		{name: "double hash", input: "##1e40af", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "signed", input: "+1e40a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColorFormat) {
					t.Fatalf("ParseHex(%q) error = %v, want ErrInvalidColorFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	inputs := append(CategoricalPalette(), "#FFFFFF", "#000000", "#AbCdEf", "#010203")
	for _, s := range inputs {
		rgb, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q) unexpected error: %v", s, err)
		}
		if got := rgb.Hex(); got != strings.ToLower(s) {
			t.Errorf("ParseHex(%q).Hex() = %s, want %s", s, got, strings.ToLower(s))
		}
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "#000000"},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	rgb := RGB{R: 30, G: 64, B: 175}
	if got, want := rgb.String(), "rgb(30, 64, 175)"; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestToRGB(t *testing.T) {
	got := ToRGB(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	if want := (RGB{R: 10, G: 20, B: 30}); got != want {
		t.Errorf("ToRGB() = %+v, want %+v", got, want)
	}
}

func TestHexFromFloat(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    string
	}{
		{name: "integers", r: 30, g: 64, b: 175, want: "#1e40af"},
		{name: "rounds to nearest", r: 127.5, g: 127.49, b: 0.6, want: "#807f01"},
		{name: "clamps high", r: 300, g: 255.7, b: 256, want: "#ffffff"},
		{name: "clamps low", r: -5, g: -0.4, b: 0, want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexFromFloat(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("HexFromFloat(%v, %v, %v) = %s, want %s", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestHexToRGBA(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		alpha   float64
		want    string
		wantErr bool
	}{
		{name: "default fill alpha", hex: "#1e40af", alpha: DefaultFillAlpha, want: "rgba(30, 64, 175, 0.2)"},
		{name: "opaque", hex: "ffffff", alpha: 1, want: "rgba(255, 255, 255, 1)"},
		{name: "clamped alpha", hex: "#000000", alpha: 3, want: "rgba(0, 0, 0, 1)"},
		{name: "invalid", hex: "#12", alpha: 0.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGBA(tt.hex, tt.alpha)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColorFormat) {
					t.Fatalf("HexToRGBA() error = %v, want ErrInvalidColorFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexToRGBA() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("HexToRGBA() = %s, want %s", got, tt.want)
			}
		})
	}
}
