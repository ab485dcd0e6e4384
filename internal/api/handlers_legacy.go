// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// The unversioned routes answer in the flat shape older clients read:
// the recommendation object itself on success and {"error": message}
// otherwise, with no envelope.

// legacyError is the error body of the unversioned routes.
type legacyError struct {
	Error string `json:"error"`
}

// titleCounts encodes rankings as one JSON object mapping title to count,
// in ranking order. A repeated title keeps its first (higher ranked) entry.
type titleCounts []recommend.TitleCount

func (c titleCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	seen := make(map[string]struct{}, len(c))
	for _, tc := range c {
		if _, ok := seen[tc.Title]; ok {
			continue
		}
		seen[tc.Title] = struct{}{}

		key, err := json.Marshal(tc.Title)
		if err != nil {
			return nil, err
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(tc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// LegacyRecommend handles GET /recommend
func (h *Handler) LegacyRecommend(w http.ResponseWriter, r *http.Request) {
	data, status, apiErr, err := h.recommend(r)
	if apiErr != nil {
		logAPIError(r, apiErr, err)
		respondLegacy(w, r, status, legacyError{Error: apiErr.Message})
		return
	}
	respondLegacy(w, r, http.StatusOK, data)
}

// LegacyMostRated handles GET /most_rated_movies
func (h *Handler) LegacyMostRated(w http.ResponseWriter, r *http.Request) {
	h.legacyRanking(w, r, (*recommend.Engine).MostRated)
}

// LegacyLeastRated handles GET /least_rated_movies
func (h *Handler) LegacyLeastRated(w http.ResponseWriter, r *http.Request) {
	h.legacyRanking(w, r, (*recommend.Engine).LeastRated)
}

func (h *Handler) legacyRanking(w http.ResponseWriter, r *http.Request, rank func(*recommend.Engine) []recommend.TitleCount) {
	engine := h.engines.Load()
	if engine == nil {
		respondLegacy(w, r, http.StatusServiceUnavailable, legacyError{Error: msgEngineNotReady})
		return
	}
	respondLegacy(w, r, http.StatusOK, titleCounts(rank(engine)))
}

// respondLegacy writes v as the whole response body.
func respondLegacy(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		respondLegacyFallback(w)
		return
	}
	writeJSON(w, r, status, body, generateETag(body))
}

func respondLegacyFallback(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"error":"` + models.ErrCodeInternal + `"}`))
}
