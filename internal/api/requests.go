// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/marquee/internal/models"
)

// Messages for malformed recommendation requests.
const (
	msgTitleRequired  = "Title parameter is required"
	msgUserIDRequired = "User ID parameter is required and should be an integer"
	msgUserNotFound   = "User ID not found"
	msgEngineNotReady = "Recommendation engine is not ready"
)

// RecommendRequest holds the parsed query parameters of a recommendation.
type RecommendRequest struct {
	Title  string `query:"title" validate:"required,notblank,max=500"`
	UserID int64  `query:"user_id"`
	Limit  int    `query:"limit" validate:"min=0"`
}

// parseRecommendRequest reads title, user_id and limit from the query
// string. Title is checked before user_id. A zero Limit means the engine
// default.
func parseRecommendRequest(r *http.Request, maxLimit int) (RecommendRequest, *models.APIError) {
	q := r.URL.Query()
	req := RecommendRequest{Title: strings.TrimSpace(q.Get("title"))}

	if req.Title == "" {
		return req, &models.APIError{
			Code:    models.ErrCodeValidation,
			Message: msgTitleRequired,
			Details: map[string]interface{}{"field": "title"},
		}
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(q.Get("user_id")), 10, 64)
	if err != nil {
		return req, &models.APIError{
			Code:    models.ErrCodeValidation,
			Message: msgUserIDRequired,
			Details: map[string]interface{}{"field": "user_id"},
		}
	}
	req.UserID = userID

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || limit < 1 || limit > maxLimit {
			return req, &models.APIError{
				Code:    models.ErrCodeValidation,
				Message: "limit must be an integer between 1 and " + strconv.Itoa(maxLimit),
				Details: map[string]interface{}{"field": "limit", "value": raw},
			}
		}
		req.Limit = limit
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		return req, apiErr
	}
	return req, nil
}
