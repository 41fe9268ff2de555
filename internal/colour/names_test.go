package colour

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "#1E40AF", want: "#1e40af"},
		{input: "1e40af", want: "#1e40af"},
		{input: "  #ffffff ", want: "#ffffff"},
		{input: "navy", want: "#000080"},
		{input: "White", want: "#ffffff"},
		{input: "rebeccablue", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColorFormat) {
					t.Fatalf("Resolve(%q) error = %v, want ErrInvalidColorFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
