package colour

import "fmt"

// Theme holds the role colours applied to chart chrome.
type Theme struct {
	Background        string `json:"background" yaml:"background"`
	PlotBackground    string `json:"plot_bgcolor" yaml:"plot_bgcolor"`
	PaperBackground   string `json:"paper_bgcolor" yaml:"paper_bgcolor"`
	Grid              string `json:"grid_color" yaml:"grid_color"`
	Axis              string `json:"axis_color" yaml:"axis_color"`
	Text              string `json:"text_color" yaml:"text_color"`
	Title             string `json:"title_color" yaml:"title_color"`
	Subtitle          string `json:"subtitle_color" yaml:"subtitle_color"`
	LegendBackground  string `json:"legend_bgcolor" yaml:"legend_bgcolor"`
	LegendBorder      string `json:"legend_bordercolor" yaml:"legend_bordercolor"`
	TooltipBackground string `json:"tooltip_bgcolor" yaml:"tooltip_bgcolor"`
	TooltipBorder     string `json:"tooltip_bordercolor" yaml:"tooltip_bordercolor"`
}

// DefaultTheme returns the light dashboard theme.
func DefaultTheme() Theme {
	return Theme{
		Background:        "#ffffff",
		PlotBackground:    "#ffffff",
		PaperBackground:   "#ffffff",
		Grid:              "#f3f4f6",
		Axis:              "#d1d5db",
		Text:              "#374151",
		Title:             "#1f2937",
		Subtitle:          "#6b7280",
		LegendBackground:  "#ffffff",
		LegendBorder:      "#e5e7eb",
		TooltipBackground: "#ffffff",
		TooltipBorder:     "#d1d5db",
	}
}

// RoleContrast is the contrast of one text role against its background.
type RoleContrast struct {
	Role       string  `json:"role" yaml:"role"`
	Colour     string  `json:"colour" yaml:"colour"`
	Background string  `json:"background" yaml:"background"`
	Ratio      float64 `json:"ratio" yaml:"ratio"`
	Passes     bool    `json:"passes" yaml:"passes"`
	Suggestion string  `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Audit checks every text role against the surface it is drawn on and
// suggests an accessible variant for roles that fail level.
func (t Theme) Audit(level Level) ([]RoleContrast, error) {
	pairs := []struct {
		role, fg, bg string
	}{
		{"text", t.Text, t.PlotBackground},
		{"title", t.Title, t.PaperBackground},
		{"subtitle", t.Subtitle, t.PaperBackground},
		{"legend", t.Text, t.LegendBackground},
		{"tooltip", t.Text, t.TooltipBackground},
	}

	results := make([]RoleContrast, 0, len(pairs))
	for _, p := range pairs {
		ratio, err := ContrastRatioHex(p.fg, p.bg)
		if err != nil {
			return nil, fmt.Errorf("theme role %s: %w", p.role, err)
		}

		rc := RoleContrast{
			Role:       p.role,
			Colour:     p.fg,
			Background: p.bg,
			Ratio:      ratio,
			Passes:     Passes(ratio, level),
		}
		if !rc.Passes {
			suggestion, err := AccessibleVariant(p.fg, p.bg, level)
			if err != nil {
				return nil, fmt.Errorf("theme role %s: %w", p.role, err)
			}
			rc.Suggestion = suggestion
		}
		results = append(results, rc)
	}

	return results, nil
}
