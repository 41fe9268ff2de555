package colour

import (
	"maps"
	"slices"
)

// ScaleKind identifies how a scale is meant to be read.
type ScaleKind string

// Scale kinds, also used as palette type prefixes ("sequential_blue").
const (
	ScaleSequential ScaleKind = "sequential"
	ScaleDiverging  ScaleKind = "diverging"
)

// PaletteCategorical is the palette type for cycling categorical colours.
const PaletteCategorical = "categorical"

// Valid reports whether k is a known scale kind.
func (k ScaleKind) Valid() bool {
	return k == ScaleSequential || k == ScaleDiverging
}

// Scale is a named, ordered list of anchor colours used as interpolation
// control points.
type Scale struct {
	Name   string    `json:"name" yaml:"name"`
	Kind   ScaleKind `json:"kind" yaml:"kind"`
	Colors []string  `json:"colors" yaml:"colors"`
}

// PaletteType returns the palette type that selects this scale.
func (s Scale) PaletteType() string {
	return string(s.Kind) + "_" + s.Name
}

func (s Scale) clone() Scale {
	s.Colors = slices.Clone(s.Colors)
	return s
}

// categoricalPalette is used for charts with many series.
var categoricalPalette = [...]string{
	"#1e40af", // blue
	"#059669", // green
	"#dc2626", // red
	"#7c3aed", // purple
	"#ea580c", // orange
	"#0891b2", // cyan
	"#be185d", // pink
	"#16a34a", // green
	"#4f46e5", // indigo
	"#b45309", // amber
	"#0369a1", // light blue
	"#9d174d", // rose
}

var builtinScales = [...]Scale{
	{Name: "blue", Kind: ScaleSequential, Colors: []string{"#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"}},
	{Name: "green", Kind: ScaleSequential, Colors: []string{"#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b"}},
	{Name: "red", Kind: ScaleSequential, Colors: []string{"#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"}},
	{Name: "purple", Kind: ScaleSequential, Colors: []string{"#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95"}},
	{Name: "blue_red", Kind: ScaleDiverging, Colors: []string{"#1e40af", "#3b82f6", "#93c5fd", "#dbeafe", "#f8fafc", "#fee2e2", "#fca5a5", "#ef4444", "#dc2626"}},
	{Name: "green_purple", Kind: ScaleDiverging, Colors: []string{"#059669", "#10b981", "#6ee7b7", "#d1fae5", "#f8fafc", "#ede9fe", "#c4b5fd", "#8b5cf6", "#7c3aed"}},
}

// brandGroups are the dashboard's named colour families, darkest first.
var brandGroups = map[string][4]string{
	"primary":   {"#1e40af", "#3b82f6", "#6366f1", "#8b5cf6"},
	"secondary": {"#059669", "#10b981", "#34d399", "#6ee7b7"},
	"accent":    {"#dc2626", "#ef4444", "#f87171", "#fca5a5"},
	"neutral":   {"#374151", "#6b7280", "#9ca3af", "#d1d5db"},
}

// CategoricalPalette returns a copy of the fixed categorical list.
func CategoricalPalette() []string {
	return slices.Clone(categoricalPalette[:])
}

// BuiltinScales returns copies of the built-in sequential and diverging scales.
func BuiltinScales() []Scale {
	scales := make([]Scale, len(builtinScales))
	for i, s := range builtinScales {
		scales[i] = s.clone()
	}
	return scales
}

// BrandGroup returns the colours of a named brand group.
func BrandGroup(name string) ([]string, bool) {
	group, ok := brandGroups[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(group[:]), true
}

// BrandGroupNames returns the brand group names in sorted order.
func BrandGroupNames() []string {
	return slices.Sorted(maps.Keys(brandGroups))
}
