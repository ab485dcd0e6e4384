// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError string
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
		},
		{
			name:   "threshold below floor is accepted",
			modify: func(c *Config) { c.Recommend.MinRatingsThreshold = 1 },
		},
		{
			name:   "rate limiting disabled needs no window",
			modify: func(c *Config) { c.Server.RateLimitReqs = 0; c.Server.RateLimitWindow = 0 },
		},
		{
			name:      "port zero",
			modify:    func(c *Config) { c.Server.Port = 0 },
			wantError: "server.port must be between 1 and 65535, got 0",
		},
		{
			name:      "port too large",
			modify:    func(c *Config) { c.Server.Port = 70000 },
			wantError: "server.port",
		},
		{
			name:      "request timeout",
			modify:    func(c *Config) { c.Server.RequestTimeout = 0 },
			wantError: "server.request_timeout",
		},
		{
			name:      "rate limit window",
			modify:    func(c *Config) { c.Server.RateLimitWindow = 0 },
			wantError: "server.rate_limit_window",
		},
		{
			name:      "unknown driver",
			modify:    func(c *Config) { c.Dataset.Driver = "parquet" },
			wantError: "dataset.driver",
		},
		{
			name:      "missing ratings path",
			modify:    func(c *Config) { c.Dataset.RatingsPath = "" },
			wantError: "dataset.ratings_path is required",
		},
		{
			name:      "missing movies path",
			modify:    func(c *Config) { c.Dataset.MoviesPath = "" },
			wantError: "dataset.movies_path is required",
		},
		{
			name:      "negative reload interval",
			modify:    func(c *Config) { c.Dataset.ReloadInterval = -time.Second },
			wantError: "dataset.reload_interval",
		},
		{
			name:      "default limit above max",
			modify:    func(c *Config) { c.Recommend.DefaultLimit = 500 },
			wantError: "recommend.default_limit",
		},
		{
			name:      "unknown scorer",
			modify:    func(c *Config) { c.Recommend.Scorer = "soundex" },
			wantError: "recommend.scorer",
		},
		{
			name:      "cache without ttl",
			modify:    func(c *Config) { c.Recommend.ResolutionCacheTTL = 0 },
			wantError: "recommend.resolution_cache_ttl",
		},
		{
			name:      "bad log level",
			modify:    func(c *Config) { c.Logging.Level = "verbose" },
			wantError: "logging.level",
		},
		{
			name:      "bad log format",
			modify:    func(c *Config) { c.Logging.Format = "xml" },
			wantError: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantError == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantError)
			}
			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantError)
			}
		})
	}
}

func TestConfigValidate_NormalizesDriver(t *testing.T) {
	cfg := defaultConfig()
	cfg.Dataset.Driver = "CSV"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Dataset.Driver != "csv" {
		t.Errorf("Dataset.Driver = %q, want csv", cfg.Dataset.Driver)
	}
}
