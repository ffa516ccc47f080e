// Package config defines the toolkit configuration and its loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and ATS_ environment variables.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"fmt"

	"github.com/okian/ats/internal/domain/model"
	"github.com/okian/ats/internal/domain/query"
)

// Output and log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// DatasetPath points at the YAML file holding candidates and jobs.
	DatasetPath string `koanf:"dataset_path"`

	// OutputFormat selects the report formatter: text, json or yaml.
	OutputFormat string `koanf:"output_format"`

	// NoColor disables colored text output.
	NoColor bool `koanf:"no_color"`

	// MetricsFile, when set, receives the Prometheus metrics in textfile format.
	MetricsFile string `koanf:"metrics_file"`

	// SimilarityWindowDays is the largest birth date gap between duplicates.
	SimilarityWindowDays int `koanf:"similarity_window_days"`

	// FoldDiacritics maps accented letters to base letters before normalizing names.
	FoldDiacritics bool `koanf:"fold_diacritics"`

	// GenderWeight and SkillWeight split the 100 suitability points.
	GenderWeight int `koanf:"gender_weight"`
	SkillWeight  int `koanf:"skill_weight"`

	// HotThreshold is the suitability a match must exceed to count as hot.
	HotThreshold int `koanf:"hot_threshold"`

	// LevelWeights maps skill level names to their ranking weight.
	LevelWeights map[string]int `koanf:"level_weights"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            FormatText,
		OutputFormat:         FormatText,
		SimilarityWindowDays: 10,
		GenderWeight:         20,
		SkillWeight:          80,
		HotThreshold:         80,
		LevelWeights: map[string]int{
			"beginner": 1,
			"advanced": 5,
			"expert":   10,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: output_format must be text, json or yaml, got %q", ErrInvalidConfig, c.OutputFormat)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.SimilarityWindowDays < 0 {
		return fmt.Errorf("%w: similarity_window_days must not be negative", ErrInvalidConfig)
	}
	if c.GenderWeight < 0 || c.SkillWeight < 0 || c.GenderWeight+c.SkillWeight != 100 {
		return fmt.Errorf("%w: gender_weight and skill_weight must be non-negative and add up to 100", ErrInvalidConfig)
	}
	if c.HotThreshold < 0 || c.HotThreshold > 100 {
		return fmt.Errorf("%w: hot_threshold must be between 0 and 100", ErrInvalidConfig)
	}
	if _, err := c.SkillLevelWeights(); err != nil {
		return err
	}
	return nil
}

// SkillLevelWeights converts LevelWeights into ranking weights.
func (c *Config) SkillLevelWeights() (query.LevelWeights, error) {
	weights := make(query.LevelWeights, len(c.LevelWeights))
	for name, w := range c.LevelWeights {
		level, err := model.ParseSkillLevel(name)
		if err != nil {
			return nil, fmt.Errorf("%w: level_weights: %w", ErrInvalidConfig, err)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: level_weights.%s must not be negative", ErrInvalidConfig, name)
		}
		weights[level] = w
	}
	return weights, nil
}
