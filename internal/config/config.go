// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, optional YAML file and environment variables.
// - External errors are wrapped via this package's error sentinels.
package config

import (
	"github.com/bsubei/squadrot/internal/domain/selector"
)

// Default file locations, matching the original tool's working-directory
// conventions.
const (
	DefaultOutputPath  = "MapRotation.cfg"
	DefaultCatalogPath = "layers.json"
	DefaultPatternPath = "rotation.yml"
)

// Config contains process configuration. Rotation semantics live in the
// pattern config file; this holds everything around it.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// CatalogPath is the local JSON layer catalog. Ignored when CatalogURL
	// is set.
	CatalogPath string `koanf:"catalog_path"`

	// CatalogURL fetches the layer catalog over HTTP(S) instead of from disk.
	CatalogURL string `koanf:"catalog_url"`

	// PatternPath is the YAML rotation configuration file.
	PatternPath string `koanf:"pattern_path"`

	// OutputPath is where the generated rotation is written.
	OutputPath string `koanf:"output_path"`

	// DiscordWebhookURL posts the rotation summary to a Discord channel when
	// non-empty.
	DiscordWebhookURL string `koanf:"discord_webhook_url"`

	// DiscordUseEmbed switches the Discord post from plain content to an
	// embed with the summary as description.
	DiscordUseEmbed bool `koanf:"discord_use_embed"`

	// TelegramToken and TelegramChatID post the rotation summary to a
	// Telegram chat when both are set.
	TelegramToken  string `koanf:"telegram_token"`
	TelegramChatID int64  `koanf:"telegram_chat_id"`

	// MinDistance is how many trailing rotation slots a map must stay out of.
	MinDistance int `koanf:"min_distance"`

	// MaxAttempts bounds the selector's recency retry loop.
	MaxAttempts int `koanf:"max_attempts"`

	// Seed fixes the random source for reproducible rotations; 0 means
	// time-seeded.
	Seed int64 `koanf:"seed"`

	// HTTPTimeoutSeconds bounds catalog fetches and webhook posts.
	HTTPTimeoutSeconds int `koanf:"http_timeout_seconds"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		CatalogPath:        DefaultCatalogPath,
		PatternPath:        DefaultPatternPath,
		OutputPath:         DefaultOutputPath,
		MinDistance:        selector.DefaultMinDistance,
		MaxAttempts:        selector.DefaultMaxAttempts,
		HTTPTimeoutSeconds: 10,
	}
}
