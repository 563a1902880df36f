package pattern

import (
	"fmt"

	"github.com/bsubei/squadrot/internal/domain/filter"
	"github.com/bsubei/squadrot/internal/domain/layer"
)

// Validate statically checks that the configuration is well-formed and
// compatible with the catalog before any building begins. All failures wrap
// ErrInvalidConfig so callers can distinguish configuration errors from
// runtime ones.
func Validate(cfg *Config, catalog []layer.Layer) error {
	if cfg == nil {
		return fmt.Errorf("%w: configuration is nil", ErrInvalidConfig)
	}
	if len(catalog) == 0 {
		return fmt.Errorf("%w: layer catalog is empty", ErrInvalidConfig)
	}

	if cfg.RegularMaps == nil {
		return fmt.Errorf("%w: regular_maps is required", ErrInvalidConfig)
	}
	if len(cfg.RegularMaps) == 0 {
		return fmt.Errorf("%w: regular_maps must not be empty", ErrInvalidConfig)
	}
	// starting_maps may be absent (defaults to one "any" slot) but never
	// present and empty.
	if cfg.StartingMaps != nil && len(cfg.StartingMaps) == 0 {
		return fmt.Errorf("%w: starting_maps must not be empty when present", ErrInvalidConfig)
	}
	if cfg.NumberOfRepeats != nil && *cfg.NumberOfRepeats < 1 {
		return fmt.Errorf("%w: number_of_repeats must be a positive integer, got %d", ErrInvalidConfig, *cfg.NumberOfRepeats)
	}

	if err := checkAttrs("starting_maps", cfg.Seeding(), catalog); err != nil {
		return err
	}
	return checkAttrs("regular_maps", cfg.RegularMaps, catalog)
}

// checkAttrs enforces the compatibility invariant: every attribute a filter
// references (after team-alias expansion) must be present with a non-null
// value on every layer of the catalog. A partially populated attribute
// invalidates the configuration, not just the layers missing it.
func checkAttrs(section string, specs []filter.Spec, catalog []layer.Layer) error {
	for i, spec := range specs {
		for _, attr := range spec.Attrs() {
			for _, l := range catalog {
				if !l.Has(attr) {
					return fmt.Errorf("%w: %s[%d] filters on %q which is missing on layer %q",
						ErrInvalidConfig, section, i, attr, l.Name())
				}
			}
		}
	}
	return nil
}
