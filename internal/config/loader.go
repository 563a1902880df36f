package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SQUADROT_CONFIG is set
//  3. env (prefix SQUADROT_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SQUADROT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SQUADROT_OUTPUT_PATH, SQUADROT_MIN_DISTANCE, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("SQUADROT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "squadrot_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output_path must not be empty", ErrInvalidConfig)
	}
	if c.CatalogPath == "" && c.CatalogURL == "" {
		return fmt.Errorf("%w: one of catalog_path or catalog_url must be set", ErrInvalidConfig)
	}
	if c.PatternPath == "" {
		return fmt.Errorf("%w: pattern_path must not be empty", ErrInvalidConfig)
	}
	if c.MinDistance < 1 {
		return fmt.Errorf("%w: min_distance must be at least 1", ErrInvalidConfig)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts must be at least 1", ErrInvalidConfig)
	}
	if c.HTTPTimeoutSeconds < 1 {
		return fmt.Errorf("%w: http_timeout_seconds must be at least 1", ErrInvalidConfig)
	}
	return nil
}
