// Package pattern holds the rotation configuration: the one-time starting
// slots, the repeated regular slots, and the repeat count.
package pattern

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bsubei/squadrot/internal/domain/filter"
)

// DefaultRepeats applies when number_of_repeats is absent.
const DefaultRepeats = 1

// Config is the declarative rotation configuration. Field presence matters
// for validation: absent starting_maps and number_of_repeats take defaults,
// while present-but-invalid values reject the whole config.
type Config struct {
	StartingMaps    []filter.Spec `yaml:"starting_maps"`
	RegularMaps     []filter.Spec `yaml:"regular_maps"`
	NumberOfRepeats *int          `yaml:"number_of_repeats"`
}

// Parse decodes a YAML rotation configuration. Structural problems (slot
// entries that are neither "any" nor a mapping, non-scalar values) surface
// here, wrapped as ErrInvalidConfig.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// ParseFile reads and decodes a YAML rotation configuration file.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern config: %w", err)
	}
	return Parse(data)
}

// Seeding returns the starting-phase specs, defaulting to a single "any"
// slot when the config omits starting_maps.
func (c *Config) Seeding() []filter.Spec {
	if c.StartingMaps == nil {
		return []filter.Spec{filter.Any()}
	}
	return c.StartingMaps
}

// Repeats returns the number of times the regular phase runs.
func (c *Config) Repeats() int {
	if c.NumberOfRepeats == nil {
		return DefaultRepeats
	}
	return *c.NumberOfRepeats
}
