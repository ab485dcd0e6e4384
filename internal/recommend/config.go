// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/recommend/collaborative"
	"github.com/tomtom215/marquee/internal/recommend/fuzzy"
)

const (
	// MinRatingsFloor is the lowest accepted MinRatingsThreshold. Smaller
	// values are raised to it.
	MinRatingsFloor = 5

	// DefaultNumRecommendations is used when a request does not ask for a
	// specific number of results.
	DefaultNumRecommendations = 5

	// topRatedLimit bounds MostRated and LeastRated.
	topRatedLimit = 10
)

// Config contains configuration for the recommendation engine.
type Config struct {
	// MinRatingsThreshold is the number of ratings a movie needs before it
	// is answered by collaborative filtering.
	MinRatingsThreshold int `json:"min_ratings_threshold"`

	// DefaultLimit is the number of recommendations returned when a request
	// passes a non-positive count.
	DefaultLimit int `json:"default_limit"`

	// Metric names the collaborative distance metric.
	// Supported: cosine, euclidean, manhattan.
	Metric string `json:"metric"`

	// Scorer names the fuzzy title scorer.
	// Supported: ratio, token_sort, weighted.
	Scorer string `json:"scorer"`

	// ResolutionCacheSize bounds memoized title resolutions. Zero disables
	// the cache.
	ResolutionCacheSize int `json:"resolution_cache_size"`

	// ResolutionCacheTTL is how long a memoized resolution is kept.
	ResolutionCacheTTL time.Duration `json:"resolution_cache_ttl"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MinRatingsThreshold: MinRatingsFloor,
		DefaultLimit:        DefaultNumRecommendations,
		Metric:              "cosine",
		Scorer:              "weighted",
		ResolutionCacheSize: 1024,
		ResolutionCacheTTL:  10 * time.Minute,
	}
}

// Validate checks the configuration. MinRatingsThreshold is not checked:
// NewEngine raises it to MinRatingsFloor instead.
func (c Config) Validate() error {
	var errs []error

	if c.DefaultLimit < 0 {
		errs = append(errs, fmt.Errorf("default_limit must be non-negative, got %d", c.DefaultLimit))
	}
	if _, err := collaborative.MetricByName(c.Metric); err != nil {
		errs = append(errs, err)
	}
	if _, err := fuzzy.ScorerByName(c.Scorer); err != nil {
		errs = append(errs, err)
	}
	if c.ResolutionCacheSize < 0 {
		errs = append(errs, fmt.Errorf("resolution_cache_size must be non-negative, got %d", c.ResolutionCacheSize))
	}
	if c.ResolutionCacheSize > 0 && c.ResolutionCacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("resolution_cache_ttl must be positive when the cache is enabled, got %s", c.ResolutionCacheTTL))
	}

	return errors.Join(errs...)
}

// effectiveThreshold applies the MinRatingsFloor.
func (c Config) effectiveThreshold() int {
	return max(c.MinRatingsThreshold, MinRatingsFloor)
}
