package colour

import "strings"

// Level is a WCAG conformance level.
type Level string

// Supported conformance levels.
const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Minimum contrast ratios for normal text.
const (
	ThresholdAA  = 4.5
	ThresholdAAA = 7.0
)

// Variant search parameters.
const (
	variantStep     = 0.05
	variantMaxSteps = 10

	// Backgrounds brighter than this are treated as light, so variants darken.
	lightBackground = 0.5
)

var (
	black = RGB{R: 0, G: 0, B: 0}
	white = RGB{R: 255, G: 255, B: 255}
)

// Threshold returns the minimum contrast ratio for the level.
// ok is false for anything other than AA or AAA.
func (l Level) Threshold() (threshold float64, ok bool) {
	switch l {
	case LevelAA:
		return ThresholdAA, true
	case LevelAAA:
		return ThresholdAAA, true
	default:
		return 0, false
	}
}

// ParseLevel normalises "aa" and " AAA " style input. Unrecognised input is
// returned as-is so that it still evaluates as not accessible.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(LevelAA):
		return LevelAA
	case string(LevelAAA):
		return LevelAAA
	default:
		return Level(s)
	}
}

// Passes reports whether ratio meets the level. Unknown levels never pass.
func Passes(ratio float64, level Level) bool {
	threshold, ok := level.Threshold()
	return ok && ratio >= threshold
}

// IsAccessible reports whether fg on bg meets the contrast threshold for level.
// An unknown level yields false without an error; only malformed colours error.
func IsAccessible(fg, bg string, level Level) (bool, error) {
	ratio, err := ContrastRatioHex(fg, bg)
	if err != nil {
		return false, err
	}
	return Passes(ratio, level), nil
}

// VariantReport describes the outcome of an accessible variant search.
type VariantReport struct {
	Original   string  `json:"original" yaml:"original"`
	Background string  `json:"background" yaml:"background"`
	Level      Level   `json:"level" yaml:"level"`
	Result     string  `json:"result" yaml:"result"`
	Before     float64 `json:"contrast_before" yaml:"contrast_before"`
	After      float64 `json:"contrast_after" yaml:"contrast_after"`
	Steps      int     `json:"steps" yaml:"steps"`
	Adjusted   bool    `json:"adjusted" yaml:"adjusted"`
	Fallback   bool    `json:"fallback" yaml:"fallback"`
}

// AccessibleVariant returns colour unchanged when it already meets level on
// bg. Otherwise it walks HSL lightness away from the background in fixed
// steps, keeping hue and saturation, and returns the first passing colour.
// If none passes it returns black for light backgrounds and white otherwise.
func AccessibleVariant(colour, bg string, level Level) (string, error) {
	report, err := ExplainVariant(colour, bg, level)
	if err != nil {
		return "", err
	}
	return report.Result, nil
}

// ExplainVariant runs the same search as AccessibleVariant and reports how
// the result was reached.
func ExplainVariant(colour, bg string, level Level) (VariantReport, error) {
	fg, err := ParseHex(colour)
	if err != nil {
		return VariantReport{}, err
	}
	bgRGB, err := ParseHex(bg)
	if err != nil {
		return VariantReport{}, err
	}

	report := VariantReport{
		Original:   colour,
		Background: bg,
		Level:      level,
		Before:     ContrastRatio(fg, bgRGB),
	}

	if Passes(report.Before, level) {
		report.Result = colour
		report.After = report.Before
		return report, nil
	}

	report.Adjusted = true
	darken := Luminance(bgRGB) > lightBackground
	delta := variantStep
	if darken {
		delta = -variantStep
	}

	hsl := RGBToHSL(fg)
	for step := 1; step <= variantMaxSteps; step++ {
		hsl = hsl.WithLightness(hsl.L + delta)
		candidate := HSLToRGB(hsl)
		ratio := ContrastRatio(candidate, bgRGB)
		if Passes(ratio, level) {
			report.Result = candidate.Hex()
			report.After = ratio
			report.Steps = step
			return report, nil
		}
	}

	fallback := white
	if darken {
		fallback = black
	}
	report.Result = fallback.Hex()
	report.After = ContrastRatio(fallback, bgRGB)
	report.Steps = variantMaxSteps
	report.Fallback = true
	return report, nil
}
