// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"method"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marquee_recommendation_duration_seconds",
			Help:    "Time spent producing a recommendation in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method"},
	)

	TitleResolutionCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_title_resolution_cache_total",
			Help: "Title resolution cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// Index Metrics
	IndexBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marquee_index_build_duration_seconds",
			Help:    "Time spent building a recommendation index in seconds",
			Buckets: []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"index"},
	)

	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "marquee_dataset_records",
			Help: "Number of records in the loaded dataset",
		},
		[]string{"kind"},
	)

	DatasetReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_dataset_reloads_total",
			Help: "Total number of dataset reload attempts",
		},
		[]string{"status"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by rate limiting",
		},
		[]string{"endpoint"},
	)
)

// RecordRecommendation records one engine call and its outcome.
func RecordRecommendation(method string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(method).Inc()
	RecommendationDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordResolutionCache records a title resolution cache lookup.
func RecordResolutionCache(hit bool) {
	if hit {
		TitleResolutionCache.WithLabelValues("hit").Inc()
	} else {
		TitleResolutionCache.WithLabelValues("miss").Inc()
	}
}

// RecordIndexBuild records how long an index took to build.
func RecordIndexBuild(index string, duration time.Duration) {
	IndexBuildDuration.WithLabelValues(index).Observe(duration.Seconds())
}

// SetDatasetRecords publishes the size of the loaded dataset.
func SetDatasetRecords(ratings, movies, users, genres int) {
	DatasetRecords.WithLabelValues("ratings").Set(float64(ratings))
	DatasetRecords.WithLabelValues("movies").Set(float64(movies))
	DatasetRecords.WithLabelValues("users").Set(float64(users))
	DatasetRecords.WithLabelValues("genres").Set(float64(genres))
}

// RecordDatasetReload records a reload attempt.
func RecordDatasetReload(err error) {
	if err != nil {
		DatasetReloads.WithLabelValues("error").Inc()
		return
	}
	DatasetReloads.WithLabelValues("success").Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
