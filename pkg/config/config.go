// Package config loads and validates wordfreq configuration from an optional
// YAML file with environment-variable overrides. Defaults reproduce the
// classic analyzer: the fixed English stop-word list, ASCII punctuation and
// an 800x400 word cloud.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/Adithya-Monish-Kumar-K/wordfreq/pkg/errors"
)

// DefaultPunctuation is the ASCII punctuation set removed during
// normalization.
const DefaultPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Config is the top-level application configuration.
type Config struct {
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// AnalyzerConfig holds the vocabularies used by the text pipeline.
type AnalyzerConfig struct {
	StopWords   []string `yaml:"stopWords"`
	Punctuation string   `yaml:"punctuation"`
}

// RenderConfig controls where images are written and how large they are.
type RenderConfig struct {
	OutputDir     string `yaml:"outputDir"`
	ChartWidth    int    `yaml:"chartWidth"`
	ChartHeight   int    `yaml:"chartHeight"`
	CloudWidth    int    `yaml:"cloudWidth"`
	CloudHeight   int    `yaml:"cloudHeight"`
	CloudMaxWords int    `yaml:"cloudMaxWords"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the optional Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			StopWords: []string{
				"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
				"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
				"to", "was", "were", "will", "with",
			},
			Punctuation: DefaultPunctuation,
		},
		Render: RenderConfig{
			OutputDir:     ".",
			ChartWidth:    1200,
			ChartHeight:   600,
			CloudWidth:    800,
			CloudHeight:   400,
			CloudMaxWords: 200,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	dims := []struct {
		name  string
		value int
	}{
		{"render.chartWidth", c.Render.ChartWidth},
		{"render.chartHeight", c.Render.ChartHeight},
		{"render.cloudWidth", c.Render.CloudWidth},
		{"render.cloudHeight", c.Render.CloudHeight},
		{"render.cloudMaxWords", c.Render.CloudMaxWords},
	}
	for _, d := range dims {
		if d.value <= 0 {
			return apperrors.Newf(apperrors.ErrInvalidConfig, "%s must be positive, got %d", d.name, d.value)
		}
	}
	if c.Metrics.Enabled && (c.Metrics.Port <= 0 || c.Metrics.Port > 65535) {
		return apperrors.Newf(apperrors.ErrInvalidConfig, "metrics.port out of range: %d", c.Metrics.Port)
	}
	for _, w := range c.Analyzer.StopWords {
		if w != strings.ToLower(w) {
			return apperrors.Newf(apperrors.ErrInvalidConfig, "stop word %q must be lowercase", w)
		}
	}
	return nil
}

// applyEnvOverrides reads WF_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WF_STOP_WORDS"); v != "" {
		cfg.Analyzer.StopWords = strings.Split(v, ",")
	}
	if v := os.Getenv("WF_OUTPUT_DIR"); v != "" {
		cfg.Render.OutputDir = v
	}
	if v := os.Getenv("WF_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("WF_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("WF_METRICS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}
	if v := os.Getenv("WF_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
		}
	}
}
