// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"time"

	"github.com/tomtom215/marquee/internal/recommend"
)

// HandlerConfig holds request limits for the handlers.
type HandlerConfig struct {
	// MaxLimit caps the limit query parameter.
	MaxLimit int

	// RequestTimeout bounds engine work per request. Zero disables it.
	RequestTimeout time.Duration

	// Version is reported by the health endpoints.
	Version string
}

// Handler serves the API endpoints from the engine currently published in
// its Holder.
type Handler struct {
	engines   *recommend.Holder
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates a Handler. A non-positive MaxLimit falls back to 100.
func NewHandler(engines *recommend.Holder, cfg HandlerConfig) *Handler {
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 100
	}
	return &Handler{
		engines:   engines,
		config:    cfg,
		startTime: time.Now(),
	}
}
