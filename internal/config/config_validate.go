// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "console": true,
}

var validDatasetDrivers = map[string]bool{
	"csv": true, "duckdb": true,
}

var validMetrics = map[string]bool{
	"cosine": true, "euclidean": true, "manhattan": true,
}

var validScorers = map[string]bool{
	"ratio": true, "token_sort": true, "weighted": true,
}

// Validate checks the configuration for errors.
// The recommendation threshold is deliberately not checked here: values
// below the floor are clamped by the engine.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be positive, got %v", c.Server.RequestTimeout)
	}
	if c.Server.RateLimitReqs < 0 {
		return fmt.Errorf("server.rate_limit_requests must be non-negative, got %d", c.Server.RateLimitReqs)
	}
	if c.Server.RateLimitReqs > 0 && c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("server.rate_limit_window must be positive when rate limiting is enabled, got %v", c.Server.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateDataset() error {
	driver := strings.ToLower(c.Dataset.Driver)
	if !validDatasetDrivers[driver] {
		return fmt.Errorf("dataset.driver must be one of csv, duckdb, got %q", c.Dataset.Driver)
	}
	c.Dataset.Driver = driver
	if c.Dataset.RatingsPath == "" {
		return fmt.Errorf("dataset.ratings_path is required")
	}
	if c.Dataset.MoviesPath == "" {
		return fmt.Errorf("dataset.movies_path is required")
	}
	if c.Dataset.GenreDelimiter == "" {
		return fmt.Errorf("dataset.genre_delimiter is required")
	}
	if c.Dataset.ReloadInterval < 0 {
		return fmt.Errorf("dataset.reload_interval must be non-negative, got %v", c.Dataset.ReloadInterval)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := &c.Recommend
	if r.MaxLimit <= 0 {
		return fmt.Errorf("recommend.max_limit must be positive, got %d", r.MaxLimit)
	}
	if r.DefaultLimit <= 0 || r.DefaultLimit > r.MaxLimit {
		return fmt.Errorf("recommend.default_limit must be between 1 and %d, got %d", r.MaxLimit, r.DefaultLimit)
	}
	if !validMetrics[r.Metric] {
		return fmt.Errorf("recommend.metric must be one of cosine, euclidean, manhattan, got %q", r.Metric)
	}
	if !validScorers[r.Scorer] {
		return fmt.Errorf("recommend.scorer must be one of ratio, token_sort, weighted, got %q", r.Scorer)
	}
	if r.ResolutionCacheSize < 0 {
		return fmt.Errorf("recommend.resolution_cache_size must be non-negative, got %d", r.ResolutionCacheSize)
	}
	if r.ResolutionCacheSize > 0 && r.ResolutionCacheTTL <= 0 {
		return fmt.Errorf("recommend.resolution_cache_ttl must be positive when the cache is enabled, got %v", r.ResolutionCacheTTL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
