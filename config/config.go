// Package config loads patchwall settings from an optional YAML file and
// PATCHWALL_* environment variables. Command-line flags are applied on top
// by the caller.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/patchwall/gridgraph"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable setting of the patchwall CLI.
type Config struct {
	// LogLevel is the zap level: debug, info, warn or error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level" env:"PATCHWALL_LOG_LEVEL" validate:"oneof=debug info warn error"`
	// Strategy names the matching engine: kuhn or hopcroft-karp.
	Strategy string `mapstructure:"strategy" yaml:"strategy" env:"PATCHWALL_STRATEGY" validate:"oneof=kuhn hopcroft-karp"`
	// Verify cross-checks every matching with the other engine.
	Verify bool `mapstructure:"verify" yaml:"verify" env:"PATCHWALL_VERIFY"`
	// Workers bounds how many input files are solved at once.
	Workers int `mapstructure:"workers" yaml:"workers" env:"PATCHWALL_WORKERS" validate:"min=1,max=256"`
	// RepairMarker is the single rune that marks a cell needing repair.
	RepairMarker string `mapstructure:"repair_marker" yaml:"repair_marker" env:"PATCHWALL_REPAIR_MARKER" validate:"len=1"`
	// IntactMarker is the single rune used to render intact cells.
	IntactMarker string `mapstructure:"intact_marker" yaml:"intact_marker" env:"PATCHWALL_INTACT_MARKER" validate:"len=1,nefield=RepairMarker"`
	// Format is the report format of the plan command: text or yaml.
	Format string `mapstructure:"format" yaml:"format" env:"PATCHWALL_FORMAT" validate:"oneof=text yaml"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:     "warn",
		Strategy:     "kuhn",
		Workers:      4,
		RepairMarker: string(gridgraph.DefaultRepairMarker),
		IntactMarker: string(gridgraph.DefaultIntactMarker),
		Format:       "text",
	}
}

// Load builds a Config from defaults, the YAML file at path, and the
// environment, in increasing priority.
//
// An empty path looks for patchwall.yaml in the working directory and
// silently skips it when absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("strategy", cfg.Strategy)
	v.SetDefault("verify", cfg.Verify)
	v.SetDefault("workers", cfg.Workers)
	v.SetDefault("repair_marker", cfg.RepairMarker)
	v.SetDefault("intact_marker", cfg.IntactMarker)
	v.SetDefault("format", cfg.Format)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("patchwall")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return cfg, fmt.Errorf("config: read patchwall.yaml: %w", err)
			}
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Strategy = strings.ToLower(cfg.Strategy)

	return cfg, cfg.Validate()
}

// Validate checks every field constraint and returns an error wrapping
// ErrInvalidConfig that names the failed fields.
func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s", fe.Field(), fe.Value(), fe.ActualTag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// GridOptions returns the grid decoding options of c. It assumes c is valid.
func (c Config) GridOptions() gridgraph.GridOptions {
	repair, _ := utf8.DecodeRuneInString(c.RepairMarker)
	intact, _ := utf8.DecodeRuneInString(c.IntactMarker)
	return gridgraph.GridOptions{RepairMarker: repair, IntactMarker: intact}
}
