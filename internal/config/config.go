// Package config loads the formwidgets command configuration from an optional
// YAML file, FORMWIDGETS_ environment variables and flag overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides: FORMWIDGETS_FORM_OPENAPI sets
// form.openapi.
const EnvPrefix = "FORMWIDGETS"

// Config holds the command configuration.
type Config struct {
	Env      string      `mapstructure:"env" validate:"omitempty,oneof=development debug production"`
	Renderer string      `mapstructure:"renderer" validate:"required,oneof=html tui bubble"`
	Output   string      `mapstructure:"output" validate:"required,oneof=json form pretty"`
	OutFile  string      `mapstructure:"out_file"`
	Form     FormConfig  `mapstructure:"form"`
	Theme    ThemeConfig `mapstructure:"theme"`
	TUI      TUIConfig   `mapstructure:"tui"`
}

// FormConfig selects the form source. OpenAPI wins over File, File wins over
// Preset.
type FormConfig struct {
	Preset    string `mapstructure:"preset" validate:"omitempty,oneof=payment-card"`
	File      string `mapstructure:"file"`
	OpenAPI   string `mapstructure:"openapi"`
	Operation string `mapstructure:"operation" validate:"required_with=OpenAPI"`
}

// ThemeConfig points at a directory of token documents.
type ThemeConfig struct {
	Dir     string `mapstructure:"dir"`
	Name    string `mapstructure:"name"`
	Variant string `mapstructure:"variant" validate:"omitempty,oneof=light dark"`
}

// TUIConfig tunes the prompt renderer.
type TUIConfig struct {
	MaxAttempts int `mapstructure:"max_attempts" validate:"gte=0"`
}

// Options control Load.
type Options struct {
	// File is an explicit config file. When empty, formwidgets.yaml is looked
	// up in the working directory and a missing file is not an error.
	File string
	// Overrides are applied last, keyed by dotted config key.
	Overrides map[string]any
}

var defaults = map[string]any{
	"env":              "",
	"renderer":         "html",
	"output":           "json",
	"out_file":         "",
	"form.preset":      "payment-card",
	"form.file":        "",
	"form.openapi":     "",
	"form.operation":   "",
	"theme.dir":        "",
	"theme.name":       "",
	"theme.variant":    "light",
	"tui.max_attempts": 3,
}

// Load resolves the configuration and validates it.
func Load(opts Options) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("formwidgets")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", describe(opts.File), err)
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	c.normalize()
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks c against its struct tags.
func Validate(c Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			problems := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				problems = append(problems, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(problems, "; "))
		}
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.Renderer = strings.ToLower(strings.TrimSpace(c.Renderer))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.Theme.Variant = strings.ToLower(strings.TrimSpace(c.Theme.Variant))
}

func describe(file string) string {
	if file == "" {
		return "formwidgets.yaml"
	}
	return file
}
