// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus metrics collection for Marquee.

Collectors are registered with the default registry at package init via
promauto and exposed at /metrics by the API router.

# Available Metrics

Recommendation Metrics:
  - marquee_recommendations_total: Recommendation requests by outcome (counter)
    Labels: method
  - marquee_recommendation_duration_seconds: Engine latency (histogram)
    Labels: method
  - marquee_title_resolution_cache_total: Resolution cache lookups (counter)
    Labels: result (hit, miss)

Index Metrics:
  - marquee_index_build_duration_seconds: Index build time (histogram)
    Labels: index (collaborative, content)
  - marquee_dataset_records: Records in the loaded dataset (gauge)
    Labels: kind (ratings, movies, users, genres)
  - marquee_dataset_reloads_total: Dataset reload attempts (counter)
    Labels: status (success, error)

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by the rate limiter (counter)
    Labels: endpoint
*/
package metrics
