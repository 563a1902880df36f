// Package metrics provides Prometheus metrics for rotation generation runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus metrics for a rotation run.
type Manager struct {
	namespace string
	registry  prometheus.Registerer

	rotationsGenerated  prometheus.Counter
	slotsFilled         prometheus.Counter
	slotsSkipped        prometheus.Counter
	recencyDegradations prometheus.Counter
	notifyErrors        prometheus.Counter
	catalogLayers       prometheus.Gauge
}

// Global metrics manager instance on a custom registry, so the default Go
// collectors never leak into run summaries.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // registry backing the singleton

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "squadrot",
		registry:  prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.rotationsGenerated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "rotations_generated_total",
		Help:      "Number of rotations generated to completion.",
	})
	m.slotsFilled = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "slots_filled_total",
		Help:      "Number of rotation slots filled with a layer.",
	})
	m.slotsSkipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "slots_skipped_total",
		Help:      "Number of rotation slots skipped because no layer matched the slot filter.",
	})
	m.recencyDegradations = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "recency_degradations_total",
		Help:      "Number of slots filled with a layer that violates the recency rule after retries ran out.",
	})
	m.notifyErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "notify_errors_total",
		Help:      "Number of failed notification deliveries.",
	})
	m.catalogLayers = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "catalog_layers",
		Help:      "Number of layers in the loaded catalog.",
	})

	return m
}

// Default returns the global metrics manager.
func Default() *Manager { return globalManager }

// RotationGenerated records one completed rotation build.
func (m *Manager) RotationGenerated() { m.rotationsGenerated.Inc() }

// SlotFilled records a slot filled with a chosen layer.
func (m *Manager) SlotFilled() { m.slotsFilled.Inc() }

// SlotSkipped records a slot skipped due to an empty filtered pool.
func (m *Manager) SlotSkipped() { m.slotsSkipped.Inc() }

// RecencyDegraded records a best-effort pick that violates the recency rule.
func (m *Manager) RecencyDegraded() { m.recencyDegradations.Inc() }

// NotifyError records a failed notification delivery.
func (m *Manager) NotifyError() { m.notifyErrors.Inc() }

// SetCatalogSize records the size of the loaded catalog.
func (m *Manager) SetCatalogSize(n int) { m.catalogLayers.Set(float64(n)) }
