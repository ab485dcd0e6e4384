// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"
)

// RecommendResponse is the payload of a successful recommendation.
type RecommendResponse struct {
	Method          string   `json:"method"`
	MatchedTitle    string   `json:"matched_title"`
	Recommendations []string `json:"recommendations"`
}

// TitleCount pairs a movie title with its number of ratings.
type TitleCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// RatingCount is the number of ratings with a given value.
type RatingCount struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// GenreCount is the number of catalog movies tagged with a genre.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// StatisticsResponse describes the loaded dataset.
type StatisticsResponse struct {
	TotalUsers             int     `json:"total_users"`
	MostActiveUserRatings  int     `json:"most_active_user_ratings"`
	LeastActiveUserRatings int     `json:"least_active_user_ratings"`
	TotalMovies            int     `json:"total_movies"`
	MostRatedMovieRatings  int     `json:"most_rated_movie_ratings"`
	LeastRatedMovieRatings int     `json:"least_rated_movie_ratings"`
	Sparsity               float64 `json:"sparsity"`
	TotalRatings           int     `json:"total_ratings"`
	CatalogSize            int     `json:"catalog_size"`
	Genres                 int     `json:"genres"`
	MinRatingsThreshold    int     `json:"min_ratings_threshold"`

	RatingDistribution []RatingCount `json:"rating_distribution"`
	GenreFrequencies   []GenreCount  `json:"genre_frequencies"`

	BuiltAt time.Time `json:"built_at"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status      string    `json:"status"`
	Version     string    `json:"version,omitempty"`
	EngineReady bool      `json:"engine_ready"`
	BuiltAt     time.Time `json:"built_at,omitempty"`
	Uptime      float64   `json:"uptime_seconds"`
}
