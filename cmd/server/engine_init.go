// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/recommend"
)

// newLoader selects the dataset loader named by dataset.driver.
func newLoader(cfg *config.Config) (dataset.Loader, error) {
	return dataset.NewLoader(cfg.Dataset.Driver, dataset.Options{
		RatingsPath:    cfg.Dataset.RatingsPath,
		MoviesPath:     cfg.Dataset.MoviesPath,
		GenreDelimiter: cfg.Dataset.GenreDelimiter,
	})
}

// engineConfig maps the recommend section onto the engine's settings.
func engineConfig(cfg *config.Config) recommend.Config {
	return recommend.Config{
		MinRatingsThreshold: cfg.Recommend.MinRatingsThreshold,
		DefaultLimit:        cfg.Recommend.DefaultLimit,
		Metric:              cfg.Recommend.Metric,
		Scorer:              cfg.Recommend.Scorer,
		ResolutionCacheSize: cfg.Recommend.ResolutionCacheSize,
		ResolutionCacheTTL:  cfg.Recommend.ResolutionCacheTTL,
	}
}

// middlewareConfig maps the server section onto the chi middleware settings.
func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Server.CORSOrigins
	mw.RateLimitRequests = cfg.Server.RateLimitReqs
	mw.RateLimitWindow = cfg.Server.RateLimitWindow
	mw.RateLimitDisabled = cfg.Server.RateLimitReqs <= 0
	return mw
}

// buildEngine loads the dataset and builds the first engine.
func buildEngine(ctx context.Context, loader dataset.Loader, cfg recommend.Config) (*recommend.Engine, error) {
	start := time.Now()
	ds, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logging.Info().
		Int("ratings", len(ds.Ratings)).
		Int("movies", len(ds.Movies)).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")

	engine, err := recommend.NewEngine(ds, cfg, logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return engine, nil
}
