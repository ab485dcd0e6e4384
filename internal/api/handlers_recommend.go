// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// Recommend handles GET /api/v1/recommend
//
// @Summary Recommend movies similar to a title
// @Description Resolves the title by fuzzy matching, then answers with collaborative filtering for well rated movies or genre similarity otherwise.
// @Tags Recommendations
// @Produce json
// @Param title query string true "Movie title, matched approximately"
// @Param user_id query int true "User ID, must have rated at least one movie"
// @Param limit query int false "Number of recommendations"
// @Success 200 {object} models.APIResponse{data=models.RecommendResponse}
// @Failure 400 {object} models.APIResponse "Missing or invalid parameters"
// @Failure 404 {object} models.APIResponse "User or title not found"
// @Failure 503 {object} models.APIResponse "Engine not ready or request timed out"
// @Router /recommend [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	data, status, apiErr, err := h.recommend(r)
	if apiErr != nil {
		respondAPIError(w, r, status, apiErr, err)
		return
	}
	respondSuccess(w, r, data, start)
}

// recommend parses the request and runs it against the current engine. A
// non-nil APIError carries the status to answer with; err is the internal
// cause to log, if any.
func (h *Handler) recommend(r *http.Request) (models.RecommendResponse, int, *models.APIError, error) {
	req, apiErr := parseRecommendRequest(r, h.config.MaxLimit)
	if apiErr != nil {
		return models.RecommendResponse{}, http.StatusBadRequest, apiErr, nil
	}

	engine := h.engines.Load()
	if engine == nil {
		return models.RecommendResponse{}, http.StatusServiceUnavailable, &models.APIError{
			Code:    models.ErrCodeServiceUnavailable,
			Message: msgEngineNotReady,
		}, nil
	}

	ctx := r.Context()
	res, err := runWithTimeout(ctx, h.config.RequestTimeout, func() recommend.Result {
		return engine.Recommend(ctx, req.Title, req.UserID, req.Limit)
	})
	if err != nil {
		return models.RecommendResponse{}, http.StatusServiceUnavailable, &models.APIError{
			Code:    models.ErrCodeServiceUnavailable,
			Message: "Recommendation timed out",
		}, err
	}

	switch res.Method {
	case recommend.MethodUserNotFound:
		return models.RecommendResponse{}, http.StatusNotFound, &models.APIError{
			Code:    models.ErrCodeUserNotFound,
			Message: msgUserNotFound,
			Details: map[string]interface{}{"user_id": req.UserID},
		}, nil
	case recommend.MethodTitleNotFound:
		return models.RecommendResponse{}, http.StatusNotFound, &models.APIError{
			Code:    models.ErrCodeTitleNotFound,
			Message: fmt.Sprintf("Movie title '%s' not found", req.Title),
			Details: map[string]interface{}{"title": req.Title},
		}, nil
	case recommend.MethodUnknown:
		return models.RecommendResponse{}, http.StatusInternalServerError, &models.APIError{
			Code:    models.ErrCodeInternal,
			Message: "Recommendation produced no outcome",
		}, nil
	}

	return models.RecommendResponse{
		Method:          res.Method.String(),
		MatchedTitle:    res.MatchedTitle,
		Recommendations: res.Recommendations,
	}, http.StatusOK, nil, nil
}

// MostRated handles GET /api/v1/movies/most-rated
//
// @Summary Ten most rated movies
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.TitleCount}
// @Router /movies/most-rated [get]
func (h *Handler) MostRated(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	engine := h.currentEngine(w, r)
	if engine == nil {
		return
	}
	respondSuccess(w, r, toTitleCounts(engine.MostRated()), start)
}

// LeastRated handles GET /api/v1/movies/least-rated
//
// @Summary Ten least rated movies
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.TitleCount}
// @Router /movies/least-rated [get]
func (h *Handler) LeastRated(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	engine := h.currentEngine(w, r)
	if engine == nil {
		return
	}
	respondSuccess(w, r, toTitleCounts(engine.LeastRated()), start)
}

// Statistics handles GET /api/v1/statistics
//
// @Summary Dataset statistics
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.StatisticsResponse}
// @Router /statistics [get]
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	engine := h.currentEngine(w, r)
	if engine == nil {
		return
	}

	stats := engine.Statistics()
	resp := models.StatisticsResponse{
		TotalUsers:             stats.TotalUsers,
		MostActiveUserRatings:  stats.MostActiveUserRatings,
		LeastActiveUserRatings: stats.LeastActiveUserRatings,
		TotalMovies:            stats.TotalMovies,
		MostRatedMovieRatings:  stats.MostRatedMovieRatings,
		LeastRatedMovieRatings: stats.LeastRatedMovieRatings,
		Sparsity:               stats.Sparsity,
		TotalRatings:           stats.TotalRatings,
		CatalogSize:            stats.CatalogSize,
		Genres:                 stats.Genres,
		MinRatingsThreshold:    stats.MinRatingsThreshold,
		BuiltAt:                engine.BuiltAt(),
	}

	for _, rc := range engine.RatingDistribution() {
		resp.RatingDistribution = append(resp.RatingDistribution, models.RatingCount{Rating: rc.Rating, Count: rc.Count})
	}
	for _, gc := range engine.GenreFrequencies() {
		resp.GenreFrequencies = append(resp.GenreFrequencies, models.GenreCount{Genre: gc.Genre, Count: gc.Count})
	}

	respondSuccess(w, r, resp, start)
}

func toTitleCounts(in []recommend.TitleCount) []models.TitleCount {
	out := make([]models.TitleCount, len(in))
	for i, tc := range in {
		out[i] = models.TitleCount{Title: tc.Title, Count: tc.Count}
	}
	return out
}
