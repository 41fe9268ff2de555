// Package config loads chartkit settings from defaults, an optional YAML
// file, a .env file and CHARTKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jmylchreest/chartkit/internal/colour"
)

// EnvPrefix is the prefix for environment overrides, e.g. CHARTKIT_LEVEL.
const EnvPrefix = "CHARTKIT"

// Configuration defaults.
const (
	DefaultLevel      = string(colour.LevelAA)
	DefaultBackground = "#ffffff"
	DefaultPalette    = colour.PaletteCategorical
	DefaultAlpha      = colour.DefaultFillAlpha
)

// Config keys.
const (
	KeyLevel      = "level"
	KeyBackground = "background"
	KeyPalette    = "palette"
	KeyAlpha      = "alpha"
	KeyScales     = "scales"
)

// envKeyReplacer maps nested keys onto environment variable names.
var envKeyReplacer = strings.NewReplacer(".", "_")

var validate = newValidator()

// Scale is a user-defined colour scale.
type Scale struct {
	Name   string   `mapstructure:"name" yaml:"name" validate:"required"`
	Kind   string   `mapstructure:"kind" yaml:"kind" validate:"oneof=sequential diverging"`
	Colors []string `mapstructure:"colors" yaml:"colors" validate:"min=1,dive,hexcolour"`
}

// Config holds chartkit settings.
type Config struct {
	// Level is the default WCAG level for check, variant and theme. Any
	// letter case is accepted; Load stores the canonical form.
	Level string `mapstructure:"level" yaml:"level" validate:"oneof=AA AAA"`

	// Background is the default background colour.
	Background string `mapstructure:"background" yaml:"background" validate:"required,hexcolour"`

	// Palette is the default palette type for the palette command.
	Palette string `mapstructure:"palette" yaml:"palette" validate:"required"`

	// Alpha is the default fill alpha for rgba output.
	Alpha float64 `mapstructure:"alpha" yaml:"alpha" validate:"gte=0,lte=1"`

	// Scales are added to the built-in scales, replacing any with the same
	// kind and name.
	Scales []Scale `mapstructure:"scales" yaml:"scales" validate:"dive"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Level:      DefaultLevel,
		Background: DefaultBackground,
		Palette:    DefaultPalette,
		Alpha:      DefaultAlpha,
	}
}

// Load reads configuration. When path is empty, chartkit.yaml is looked up in
// the working directory and the user config directory and may be absent; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	// A missing .env file is normal.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault(KeyLevel, defaults.Level)
	v.SetDefault(KeyBackground, defaults.Background)
	v.SetDefault(KeyPalette, defaults.Palette)
	v.SetDefault(KeyAlpha, defaults.Alpha)
	v.SetDefault(KeyScales, []Scale{})

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("chartkit")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "chartkit"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Level = string(colour.ParseLevel(cfg.Level))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and reports all failures in one error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s %s", e.Namespace(), formatValidationMessage(e)))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Registry builds a colour registry from the built-in and configured scales.
func (c *Config) Registry() (*colour.Registry, error) {
	scales := make([]colour.Scale, len(c.Scales))
	for i, s := range c.Scales {
		scales[i] = colour.Scale{
			Name:   s.Name,
			Kind:   colour.ScaleKind(s.Kind),
			Colors: s.Colors,
		}
	}
	return colour.NewRegistry(scales...)
}

// AccessibilityLevel returns the configured level in canonical form.
func (c *Config) AccessibilityLevel() colour.Level {
	return colour.ParseLevel(c.Level)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("hexcolour", func(fl validator.FieldLevel) bool {
		_, err := colour.ParseHex(fl.Field().String())
		return err == nil
	})
	return v
}

// formatValidationMessage creates a human-readable message from a validator error.
func formatValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", e.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "hexcolour":
		return fmt.Sprintf("%v is not a #rrggbb colour", e.Value())
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}
