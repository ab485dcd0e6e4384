// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, whether or not an engine is loaded.
//
// @Summary Kubernetes liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.healthStatus("alive"), time.Now())
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only once a recommendation engine has been built.
//
// @Summary Kubernetes readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.engines.Ready() {
		respondJSON(w, r, http.StatusServiceUnavailable, &models.APIResponse{
			Status: models.StatusError,
			Data:   h.healthStatus("not_ready"),
			Metadata: models.Metadata{
				Timestamp: time.Now(),
			},
			Error: &models.APIError{
				Code:    models.ErrCodeServiceUnavailable,
				Message: msgEngineNotReady,
			},
		})
		return
	}
	respondSuccess(w, r, h.healthStatus("ready"), time.Now())
}

func (h *Handler) healthStatus(status string) models.HealthStatus {
	health := models.HealthStatus{
		Status:  status,
		Version: h.config.Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	if engine := h.engines.Load(); engine != nil {
		health.EngineReady = true
		health.BuiltAt = engine.BuiltAt()
	}
	return health
}
