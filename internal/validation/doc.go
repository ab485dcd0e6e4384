// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation provides struct validation using go-playground/validator v10.
// It provides a thread-safe singleton validator instance with custom validators
// for request parameters.
//
// Features:
//   - Singleton validator instance (thread-safe, caches struct info)
//   - Field names reported by their query parameter name (`query` tag)
//   - Custom notblank validator for free-text parameters
//   - Error translation to the VALIDATION_ERROR response format
//
// Example usage:
//
//	type RecommendRequest struct {
//	    Title  string `query:"title" validate:"required,notblank,max=500"`
//	    UserID int64  `query:"user_id" validate:"required"`
//	    Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
