// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP REST API layer for Marquee.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for recommendations, rankings, statistics and health
  - Response formatting: standardized JSON envelope (models.APIResponse)
  - Error handling: expected engine outcomes mapped to HTTP status codes

Endpoints:

	GET /api/v1/recommend?title=&user_id=&limit=   recommendations for a title
	GET /api/v1/movies/most-rated                   ten most rated movies
	GET /api/v1/movies/least-rated                  ten least rated movies
	GET /api/v1/statistics                          dataset statistics
	GET /api/v1/health/live                         liveness probe
	GET /api/v1/health/ready                        readiness probe (engine loaded)
	GET /metrics                                    Prometheus metrics

The unversioned paths /recommend, /most_rated_movies and /least_rated_movies
answer without the envelope for older clients: {"method", "matched_title",
"recommendations"} or {"error": message}, and rankings as an ordered
{"title": count} object.

Enveloped responses carry an ETag computed over data alone; a matching
If-None-Match is answered with 304 Not Modified.

Status Codes:

  - 400: missing title, missing or non-integer user_id, invalid limit
  - 404: user has no ratings (USER_NOT_FOUND) or no title matched (TITLE_NOT_FOUND)
  - 429: rate limit exceeded
  - 503: engine not loaded yet, or the request exceeded its deadline
*/
package api
