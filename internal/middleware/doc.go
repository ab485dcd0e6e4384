// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP middleware components for the Marquee API.

Key Components:

  - Request ID: UUID-based request tracking, propagated into the logging context
  - Prometheus Metrics: HTTP request/response instrumentation

Both are written as func(http.HandlerFunc) http.HandlerFunc so they can wrap
a single handler directly; the API router adapts them for chi:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Requests are labelled by chi route pattern (for example /api/v1/recommend)
rather than raw path, which keeps metric cardinality bounded.
*/
package middleware
