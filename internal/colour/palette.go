package colour

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// ErrEmptyScale is returned when a scale has no anchor colours.
var ErrEmptyScale = errors.New("scale has no colors")

// Palette is an ordered list of hex colours. Colours may repeat.
type Palette []string

// Len returns the number of colors in the palette.
func (p Palette) Len() int {
	return len(p)
}

// ToRGBSlice converts the palette colors to RGB structs.
func (p Palette) ToRGBSlice() ([]RGB, error) {
	rgbColors := make([]RGB, len(p))
	for i, c := range p {
		rgb, err := ParseHex(c)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		rgbColors[i] = rgb
	}
	return rgbColors, nil
}

// String returns a human-readable string representation of the palette.
func (p Palette) String() string {
	if len(p) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colors:\n", len(p))
	for i, c := range p {
		fmt.Fprintf(&sb, "  %2d: %s\n", i+1, c)
	}
	return sb.String()
}

type scaleEntry struct {
	scale   Scale
	anchors []RGB
}

// Registry resolves palette types to colours. It is immutable once built and
// safe for concurrent use.
type Registry struct {
	categorical []string
	scales      map[string]scaleEntry
	order       []string
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(fmt.Sprintf("built-in scales are invalid: %v", err))
	}
	return r
})

// DefaultRegistry returns the registry of built-in scales.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// NewRegistry builds a registry from the built-in scales plus extra. An extra
// scale with the same kind and name as a built-in replaces it.
func NewRegistry(extra ...Scale) (*Registry, error) {
	r := &Registry{
		categorical: CategoricalPalette(),
		scales:      make(map[string]scaleEntry),
	}

	for _, s := range slices.Concat(BuiltinScales(), extra) {
		entry, err := newScaleEntry(s)
		if err != nil {
			return nil, err
		}
		key := s.PaletteType()
		if _, exists := r.scales[key]; !exists {
			r.order = append(r.order, key)
		}
		r.scales[key] = entry
	}

	return r, nil
}

func newScaleEntry(s Scale) (scaleEntry, error) {
	if s.Name == "" {
		return scaleEntry{}, errors.New("scale name is required")
	}
	if !s.Kind.Valid() {
		return scaleEntry{}, fmt.Errorf("scale %q: unknown kind %q (valid: %s, %s)", s.Name, s.Kind, ScaleSequential, ScaleDiverging)
	}
	if len(s.Colors) == 0 {
		return scaleEntry{}, fmt.Errorf("scale %q: %w", s.Name, ErrEmptyScale)
	}

	anchors, err := Palette(s.Colors).ToRGBSlice()
	if err != nil {
		return scaleEntry{}, fmt.Errorf("scale %q: %w", s.Name, err)
	}

	return scaleEntry{scale: s.clone(), anchors: anchors}, nil
}

// Scale returns the registered scale for a palette type such as "sequential_blue".
func (r *Registry) Scale(paletteType string) (Scale, bool) {
	entry, ok := r.scales[paletteType]
	if !ok {
		return Scale{}, false
	}
	return entry.scale.clone(), true
}

// Scales returns every registered scale in registration order.
func (r *Registry) Scales() []Scale {
	return lo.Map(r.order, func(key string, _ int) Scale {
		return r.scales[key].scale.clone()
	})
}

// Categorical returns a copy of the categorical list.
func (r *Registry) Categorical() []string {
	return slices.Clone(r.categorical)
}

// ChartColors returns count colours for paletteType.
//
// "categorical" cycles through the categorical list. "sequential_<name>" and
// "diverging_<name>" pick evenly spaced anchors from the named scale, or
// interpolate when more colours are requested than it has. Unknown types and
// unknown scale names fall back to categorical.
func (r *Registry) ChartColors(count int, paletteType string) Palette {
	if count <= 0 {
		return Palette{}
	}

	if entry, ok := r.scales[paletteType]; ok {
		return entry.colors(count)
	}

	return lo.Times(count, func(i int) string {
		return r.categorical[i%len(r.categorical)]
	})
}

// ChartColors is Registry.ChartColors on the default registry.
func ChartColors(count int, paletteType string) Palette {
	return DefaultRegistry().ChartColors(count, paletteType)
}

func (e scaleEntry) colors(count int) Palette {
	n := len(e.scale.Colors)
	if count > n {
		return interpolate(e.scale.Colors, e.anchors, count)
	}
	if count == 1 {
		return Palette{e.scale.Colors[0]}
	}

	out := make(Palette, count)
	for i := range count {
		idx := int(math.Round(float64(i*(n-1)) / float64(count-1)))
		out[i] = e.scale.Colors[idx]
	}
	return out
}

// Interpolate spreads count colours evenly along scale, blending RGB channels
// linearly between neighbouring anchors. Positions that land on an anchor
// return the anchor string unmodified. count <= 1 yields the first anchor.
func Interpolate(scale []string, count int) (Palette, error) {
	if len(scale) == 0 {
		return nil, ErrEmptyScale
	}
	anchors, err := Palette(scale).ToRGBSlice()
	if err != nil {
		return nil, err
	}
	return interpolate(scale, anchors, count), nil
}

func interpolate(scale []string, anchors []RGB, count int) Palette {
	if count <= 1 {
		return Palette{scale[0]}
	}

	last := len(scale) - 1
	out := make(Palette, count)
	for i := range count {
		pos := float64(i*last) / float64(count-1)
		lower := int(math.Floor(pos))
		upper := min(lower+1, last)
		frac := pos - float64(lower)

		if frac == 0 {
			out[i] = scale[lower]
			continue
		}

		a, b := anchors[lower], anchors[upper]
		out[i] = HexFromFloat(
			lerp(a.R, b.R, frac),
			lerp(a.G, b.G, frac),
			lerp(a.B, b.B, frac),
		)
	}
	return out
}

func lerp(a, b uint8, t float64) float64 {
	return float64(a) + t*(float64(b)-float64(a))
}
