// internal/config/config.go

// Package config loads the optional scorecurve configuration. Without a
// file every value falls back to the built-in score list and curves.
package config

import (
	"fmt"
	"strings"

	"github.com/mwiater/scorecurve/curve"
	"github.com/spf13/viper"
)

const envPrefix = "SCORECURVE"

// Keys shared with the command-line flags bound in cmd/scorecurve.
const (
	KeyScores   = "scores"
	KeyCurves   = "curves"
	KeyLogLevel = "log_level"
	KeyDebug    = "debug"
)

// Config is the resolved run configuration.
type Config struct {
	Scores   []float64 `mapstructure:"scores"`
	Curves   []string  `mapstructure:"curves"`
	LogLevel string    `mapstructure:"log_level"`
	Debug    bool      `mapstructure:"debug"`
}

// New returns a viper instance carrying the defaults and the
// SCORECURVE_ environment overrides.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyScores, curve.Scores())
	v.SetDefault(KeyCurves, curve.DefaultSpecs())
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path into v, if path is set, and decodes the result.
// The file type follows the extension (yaml, json, toml).
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}
	if _, err := cfg.ResolveCurves(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// ResolveCurves parses the configured curve specs.
func (c *Config) ResolveCurves() ([]curve.Curve, error) {
	return curve.ParseCurves(c.Curves)
}
