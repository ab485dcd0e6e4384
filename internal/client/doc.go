// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package client is a Go client for the Marquee HTTP API.

Every call passes through a client-side token bucket (golang.org/x/time/rate)
and a circuit breaker (sony/gobreaker). HTTP 429 responses are retried with
exponential backoff, honoring Retry-After. Only transport errors and 5xx
responses count against the breaker; 4xx answers are ordinary outcomes and
surface as *APIError values that match ErrBadRequest or ErrNotFound with
errors.Is.

	c := client.New(client.Config{BaseURL: "http://127.0.0.1:6000"})
	rec, err := c.Recommend(ctx, "Toy Story", 42, 5)
	switch {
	case errors.Is(err, client.ErrNotFound):
	    // unknown user or title
	case err != nil:
	    return err
	}
*/
package client
