// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package config loads Marquee configuration from layered sources using
// Koanf v2: struct defaults, an optional YAML file and environment
// variables, in increasing order of precedence.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	Timeout        time.Duration `koanf:"timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	CORSOrigins    []string      `koanf:"cors_origins"`

	// RateLimitReqs is the number of requests allowed per RateLimitWindow per client IP.
	// Zero disables rate limiting.
	RateLimitReqs   int           `koanf:"rate_limit_requests"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatasetConfig describes where ratings and movies are read from.
type DatasetConfig struct {
	// Driver selects the loader: "csv" (encoding/csv) or "duckdb" (read_csv_auto).
	Driver         string `koanf:"driver"`
	RatingsPath    string `koanf:"ratings_path"`
	MoviesPath     string `koanf:"movies_path"`
	GenreDelimiter string `koanf:"genre_delimiter"`

	// ReloadInterval rebuilds the engine from disk periodically. Zero disables reloading.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// MinRatingsThreshold is the rating count at which a movie is served by
	// collaborative filtering. Values below 5 are raised to 5 by the engine.
	MinRatingsThreshold int `koanf:"min_ratings_threshold"`

	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`

	// Metric is the neighbor-search distance: cosine, euclidean or manhattan.
	Metric string `koanf:"metric"`

	// Scorer is the fuzzy title scorer: ratio, token_sort or weighted.
	Scorer string `koanf:"scorer"`

	// ResolutionCacheSize bounds the title resolution cache. Zero disables it.
	ResolutionCacheSize int           `koanf:"resolution_cache_size"`
	ResolutionCacheTTL  time.Duration `koanf:"resolution_cache_ttl"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load loads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
