// Package app wires the catalog source, validator, builder and sinks into
// one rotation-generation run.
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bsubei/squadrot/internal/adapters/catalog"
	"github.com/bsubei/squadrot/internal/adapters/output"
	"github.com/bsubei/squadrot/internal/config"
	"github.com/bsubei/squadrot/internal/domain/layer"
	"github.com/bsubei/squadrot/internal/domain/pattern"
	"github.com/bsubei/squadrot/internal/domain/rotation"
	"github.com/bsubei/squadrot/internal/domain/selector"
	"github.com/bsubei/squadrot/pkg/logger"
	"github.com/bsubei/squadrot/pkg/metrics"
)

// Notifier posts a rotation summary to an external messaging endpoint.
// Notification failures never abort a successful run.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, title, summary, footer string) error
}

// Service runs one rotation generation from catalog to sinks.
type Service struct {
	cfg       *config.Config
	log       logger.Logger
	metrics   *metrics.Manager
	source    *catalog.Source
	notifiers []Notifier
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics sets a custom metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithCatalogSource overrides the catalog source derived from config.
func WithCatalogSource(src *catalog.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithNotifier adds a notification sink.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifiers = append(s.notifiers, n)
		}
	}
}

// New constructs a Service for the given process configuration.
func New(cfg *config.Config, opts ...Option) *Service {
	s := &Service{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get().Named("app")
	}
	if s.metrics == nil {
		s.metrics = metrics.Default()
	}
	if s.source == nil {
		s.source = catalog.New(
			catalog.WithPath(cfg.CatalogPath),
			catalog.WithURL(cfg.CatalogURL),
		)
	}
	return s
}

// Run executes one full generation: load catalog, validate the pattern
// config, build the rotation, write the rotation file, then notify. Any
// error before the build aborts with no partial output; diagnostics during
// the build are logged and counted but never fatal; notification failures
// are logged and never change the result.
func (s *Service) Run(ctx context.Context) (*rotation.Result, error) {
	runID := uuid.NewString()
	s.log.Info(ctx, "starting rotation generation", logger.String("run_id", runID))

	patternCfg, layers, err := s.loadAndValidate(ctx)
	if err != nil {
		return nil, err
	}

	res := s.build(ctx, patternCfg, layers)

	if err := output.Write(s.cfg.OutputPath, res.Names()); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "rotation written",
		logger.String("run_id", runID),
		logger.String("path", s.cfg.OutputPath),
		logger.Int("slots", len(res.Layers)),
	)

	s.notify(ctx, runID, res)
	return res, nil
}

// Validate loads the catalog and pattern config and runs the static checks
// without building anything.
func (s *Service) Validate(ctx context.Context) error {
	_, _, err := s.loadAndValidate(ctx)
	return err
}

func (s *Service) loadAndValidate(ctx context.Context) (*pattern.Config, []layer.Layer, error) {
	layers, err := s.source.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	s.metrics.SetCatalogSize(len(layers))
	s.log.Debug(ctx, "catalog loaded", logger.Int("layers", len(layers)))

	patternCfg, err := pattern.ParseFile(s.cfg.PatternPath)
	if err != nil {
		return nil, nil, err
	}
	if err := pattern.Validate(patternCfg, layers); err != nil {
		return nil, nil, err
	}
	return patternCfg, layers, nil
}

func (s *Service) build(ctx context.Context, patternCfg *pattern.Config, layers []layer.Layer) *rotation.Result {
	selOpts := []selector.Option{
		selector.WithMinDistance(s.cfg.MinDistance),
		selector.WithMaxAttempts(s.cfg.MaxAttempts),
	}
	if s.cfg.Seed != 0 {
		selOpts = append(selOpts, selector.WithSeed(s.cfg.Seed))
	}
	builder := rotation.NewBuilder(rotation.WithSelector(selector.New(selOpts...)))

	res := builder.Build(patternCfg, layers)

	for range res.Layers {
		s.metrics.SlotFilled()
	}
	for _, d := range res.Diagnostics {
		switch d.Kind {
		case rotation.DiagSlotSkipped:
			s.metrics.SlotSkipped()
		case rotation.DiagRecencyDegraded:
			s.metrics.RecencyDegraded()
		}
		s.log.Error(ctx, d.String(),
			logger.String("kind", string(d.Kind)),
			logger.Int("slot", d.Slot),
			logger.Strings("filter", d.Spec),
		)
	}
	s.metrics.RotationGenerated()
	return res
}

func (s *Service) notify(ctx context.Context, runID string, res *rotation.Result) {
	if len(s.notifiers) == 0 {
		return
	}
	title := "New map rotation"
	summary := res.Summary()
	footer := fmt.Sprintf("run %s", runID)
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, title, summary, footer); err != nil {
			s.metrics.NotifyError()
			s.log.Error(ctx, "notification failed",
				logger.String("notifier", n.Name()),
				logger.Error(err),
			)
		}
	}
}
