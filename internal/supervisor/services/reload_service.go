// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
)

// ReloadServiceConfig holds configuration for the dataset reload service.
type ReloadServiceConfig struct {
	// Interval is how often the dataset is re-read and the engine rebuilt.
	Interval time.Duration

	// ReloadOnStart rebuilds immediately instead of waiting one interval.
	ReloadOnStart bool

	// Engine is passed to recommend.NewEngine on every rebuild.
	Engine recommend.Config
}

// ReloadService periodically rebuilds the recommendation engine from its
// dataset and publishes it through a recommend.Holder. A failed rebuild
// keeps the previous engine in service.
type ReloadService struct {
	loader dataset.Loader
	holder *recommend.Holder
	config ReloadServiceConfig
	logger zerolog.Logger
	name   string

	// mu serializes scheduled and manual reloads.
	mu sync.Mutex
}

// NewReloadService creates a new dataset reload service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewReloadService(loader dataset.Loader, holder *recommend.Holder, cfg ReloadServiceConfig, logger zerolog.Logger) *ReloadService {
	return &ReloadService{
		loader: loader,
		holder: holder,
		config: cfg,
		logger: logger.With().Str("service", "reload").Logger(),
		name:   "dataset-reload",
	}
}

// Serve implements suture.Service.
func (s *ReloadService) Serve(ctx context.Context) error {
	if s.config.Interval <= 0 {
		s.logger.Warn().Msg("reload interval not set, service disabled")
		return suture.ErrDoNotRestart
	}

	s.logger.Info().
		Dur("interval", s.config.Interval).
		Bool("reload_on_start", s.config.ReloadOnStart).
		Msg("dataset reload service starting")

	if s.config.ReloadOnStart {
		if err := s.Reload(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn().Err(err).Msg("initial reload failed (will retry on schedule)")
		}
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("dataset reload service stopping")
			return ctx.Err()

		case <-ticker.C:
			if err := s.Reload(ctx); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Warn().Err(err).Msg("scheduled reload failed, keeping current engine")
			}
		}
	}
}

// Reload reads the dataset, builds a new engine and swaps it in. It is safe
// to call from a signal handler while Serve is running.
func (s *ReloadService) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	err := s.reload(ctx)
	metrics.RecordDatasetReload(err)
	if err != nil {
		return err
	}

	s.logger.Info().
		Dur("duration", time.Since(start)).
		Int("catalog_size", s.holder.Load().CatalogSize()).
		Msg("recommendation engine reloaded")
	return nil
}

func (s *ReloadService) reload(ctx context.Context) error {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	engine, err := recommend.NewEngine(ds, s.config.Engine, s.logger)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	s.holder.Store(engine)
	return nil
}

// String implements fmt.Stringer.
func (s *ReloadService) String() string {
	return s.name
}
