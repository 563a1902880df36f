package rotation

import (
	"fmt"
	"strings"

	"github.com/bsubei/squadrot/internal/domain/layer"
)

// DiagKind classifies a non-fatal problem encountered while building.
type DiagKind string

// Diagnostic kinds.
const (
	// DiagSlotSkipped marks a slot whose filter matched no remaining layer;
	// the slot was dropped and the build continued.
	DiagSlotSkipped DiagKind = "slot_skipped"
	// DiagRecencyDegraded marks a slot filled with a layer that violates the
	// recency rule because every retry collided.
	DiagRecencyDegraded DiagKind = "recency_degraded"
)

// Diagnostic records one degraded or skipped slot so callers and tests can
// assert on build quality without scraping log output.
type Diagnostic struct {
	Kind  DiagKind
	Phase string   // "starting" or "regular"
	Slot  int      // zero-based index over all requested slots
	Spec  []string // description of the slot's filter
	Layer string   // layer chosen despite the violation, for DiagRecencyDegraded
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagSlotSkipped:
		return fmt.Sprintf("slot %d (%s %s): no layers left after applying filter, slot skipped",
			d.Slot, d.Phase, strings.Join(d.Spec, "/"))
	case DiagRecencyDegraded:
		return fmt.Sprintf("slot %d (%s %s): could not avoid a recent map, using %q anyway",
			d.Slot, d.Phase, strings.Join(d.Spec, "/"), d.Layer)
	default:
		return fmt.Sprintf("slot %d: %s", d.Slot, d.Kind)
	}
}

// Result is a built rotation: the chosen layers, the parallel per-slot
// descriptions, and any diagnostics. Layers and Descriptions always have
// equal length.
type Result struct {
	Layers       []layer.Layer
	Descriptions [][]string
	Diagnostics  []Diagnostic
}

// Names returns the chosen layer identifiers in rotation order.
func (r *Result) Names() []string {
	names := make([]string, len(r.Layers))
	for i, l := range r.Layers {
		names[i] = l.Name()
	}
	return names
}

// Render returns the rotation as the newline-joined layer identifiers, the
// exact content of the server rotation file.
func (r *Result) Render() string {
	return strings.Join(r.Names(), "\n")
}

// Summary returns a human-readable rotation listing, one slot per line with
// its filter description, suitable for chat notifications.
func (r *Result) Summary() string {
	var b strings.Builder
	for i, l := range r.Layers {
		fmt.Fprintf(&b, "%2d. %s (%s)\n", i+1, l.Name(), strings.Join(r.Descriptions[i], ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
