// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package models defines the wire types shared by the Marquee server and its
HTTP client.

Every endpoint wraps its payload in APIResponse so clients can branch on
Status before decoding Data:

  - RecommendResponse: result of GET /api/v1/recommend
  - TitleCount: entries of the most-rated and least-rated lists
  - StatisticsResponse: dataset statistics
  - HealthStatus: liveness and readiness probes
*/
package models
