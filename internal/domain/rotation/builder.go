// Package rotation builds the ordered map rotation from a validated
// configuration and a layer catalog.
package rotation

import (
	"github.com/bsubei/squadrot/internal/domain/filter"
	"github.com/bsubei/squadrot/internal/domain/layer"
	"github.com/bsubei/squadrot/internal/domain/pattern"
	"github.com/bsubei/squadrot/internal/domain/selector"
)

// Phase names used in diagnostics.
const (
	phaseStarting = "starting"
	phaseRegular  = "regular"
)

// Builder orchestrates filtering and selection across the configured slots,
// drawing without replacement from a single shrinking pool it owns.
type Builder struct {
	sel *selector.Selector
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithSelector sets the selector used for every slot.
func WithSelector(sel *selector.Selector) Option {
	return func(b *Builder) {
		if sel != nil {
			b.sel = sel
		}
	}
}

// NewBuilder creates a Builder. Without WithSelector it uses a time-seeded
// selector with default retry and recency settings.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.sel == nil {
		b.sel = selector.New()
	}
	return b
}

// Build produces the rotation for a configuration that already passed
// pattern.Validate. Bugged layers never enter the pool. A slot whose filter
// matches nothing is skipped with a diagnostic; a slot that cannot avoid a
// recent map within the retry budget is filled best-effort with a
// diagnostic. Build never fails: the result is whatever slots could be
// filled, with Layers and Descriptions in lockstep.
func (b *Builder) Build(cfg *pattern.Config, catalog []layer.Layer) *Result {
	pool := layer.NewPool(playable(catalog))
	res := &Result{}

	slot := 0
	for _, spec := range cfg.Seeding() {
		b.fill(pool, spec, phaseStarting, slot, res)
		slot++
	}
	for rep := 0; rep < cfg.Repeats(); rep++ {
		for _, spec := range cfg.RegularMaps {
			b.fill(pool, spec, phaseRegular, slot, res)
			slot++
		}
	}
	return res
}

// fill handles one slot: narrow the pool by the spec, pick one layer, and
// consume it from the working pool.
func (b *Builder) fill(pool *layer.Pool, spec filter.Spec, phase string, slot int, res *Result) {
	eligible := filter.Apply(spec, pool.Layers())
	if len(eligible) == 0 {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind:  DiagSlotSkipped,
			Phase: phase,
			Slot:  slot,
			Spec:  spec.Describe(),
		})
		return
	}

	chosen, degraded, err := b.sel.Pick(eligible, res.Layers)
	if err != nil {
		// Pick only errors on an empty pool, which the guard above rules out.
		return
	}
	if degraded {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind:  DiagRecencyDegraded,
			Phase: phase,
			Slot:  slot,
			Spec:  spec.Describe(),
			Layer: chosen.Name(),
		})
	}

	res.Layers = append(res.Layers, chosen)
	res.Descriptions = append(res.Descriptions, spec.Describe())
	pool.Remove(chosen)
}

// playable filters out bugged layers before the pool is built.
func playable(catalog []layer.Layer) []layer.Layer {
	out := make([]layer.Layer, 0, len(catalog))
	for _, l := range catalog {
		if !l.Bugged() {
			out = append(out, l)
		}
	}
	return out
}
