// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/marquee/internal/metrics"
)

func TestPrometheusMetrics(t *testing.T) {
	t.Run("records status code", func(t *testing.T) {
		handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/unrouted", "404"))

		req := httptest.NewRequest(http.MethodGet, "/unrouted", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
		after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/unrouted", "404"))
		if after-before != 1 {
			t.Errorf("api_requests_total delta = %v, want 1", after-before)
		}
	})

	t.Run("implicit 200", func(t *testing.T) {
		handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/implicit", "200"))
		handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/implicit", nil))
		after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/implicit", "200"))
		if after-before != 1 {
			t.Errorf("api_requests_total delta = %v, want 1", after-before)
		}
	})

	t.Run("labels by chi route pattern", func(t *testing.T) {
		r := chi.NewRouter()
		r.Use(func(next http.Handler) http.Handler { return PrometheusMetrics(next.ServeHTTP) })
		r.Get("/movies/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/movies/{id}", "200"))
		for _, path := range []string{"/movies/1", "/movies/2"} {
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		}
		after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues("GET", "/movies/{id}", "200"))
		if after-before != 2 {
			t.Errorf("route pattern delta = %v, want 2", after-before)
		}
	})

	t.Run("first status wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.WriteHeader(http.StatusOK)
		if w.statusCode != http.StatusServiceUnavailable {
			t.Errorf("statusCode = %d, want 503", w.statusCode)
		}
	})
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	var capturedID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		capturedID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("Response X-Request-ID is not a valid UUID: %v", err)
	}
	if capturedID != responseID {
		t.Errorf("context ID %q != header ID %q", capturedID, responseID)
	}
}

func TestRequestID_UpstreamID(t *testing.T) {
	tests := []struct {
		name     string
		upstream string
		reuse    bool
	}{
		{"well formed", "req-abc-123", true},
		{"control characters", "abc\ninjected", false},
		{"space", "abc def", false},
		{"too long", strings.Repeat("a", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequestID(func(w http.ResponseWriter, r *http.Request) {})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(RequestIDHeader, tt.upstream)
			rec := httptest.NewRecorder()
			handler(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if (got == tt.upstream) != tt.reuse {
				t.Errorf("X-Request-ID = %q, reuse upstream = %v", got, tt.reuse)
			}
		})
	}
}
