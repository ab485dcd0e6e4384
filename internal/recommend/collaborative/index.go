// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package collaborative implements item-based collaborative filtering over
// a sparse user x movie rating matrix.
//
// Users and movies are assigned matrix positions in first-seen order of the
// ratings input. Each movie is represented by its column (the ratings every
// user gave it), and similar movies are found by brute-force nearest
// neighbor search over those columns. Brute force is exact and fast enough
// for catalog-scale data; an approximate index could replace SimilarMovies
// without changing its contract.
package collaborative

import (
	"sort"

	"github.com/tomtom215/marquee/internal/dataset"
)

// Index is an immutable collaborative filtering index. It is safe for
// concurrent reads.
type Index struct {
	matrix *Matrix // users x movies
	items  *Matrix // movies x users

	userIndex  map[int64]int
	movieIndex map[int64]int
	users      []int64
	movies     []int64

	userCounts  []int
	movieCounts []int

	metric Metric
}

// Build creates an Index from ratings. Duplicate (user, movie) pairs keep
// the last rating. A nil metric selects Cosine.
func Build(ratings []dataset.Rating, metric Metric) *Index {
	if metric == nil {
		metric = Cosine{}
	}

	ix := &Index{
		userIndex:  make(map[int64]int),
		movieIndex: make(map[int64]int),
		metric:     metric,
	}

	triplets := make([]Triplet, len(ratings))
	for i, r := range ratings {
		u, ok := ix.userIndex[r.UserID]
		if !ok {
			u = len(ix.users)
			ix.userIndex[r.UserID] = u
			ix.users = append(ix.users, r.UserID)
		}
		m, ok := ix.movieIndex[r.MovieID]
		if !ok {
			m = len(ix.movies)
			ix.movieIndex[r.MovieID] = m
			ix.movies = append(ix.movies, r.MovieID)
		}
		triplets[i] = Triplet{Row: u, Col: m, Value: r.Rating}
	}

	ix.matrix = NewMatrix(len(ix.users), len(ix.movies), triplets)
	ix.items = ix.matrix.Transpose()
	ix.userCounts = ix.matrix.RowCounts()
	ix.movieCounts = ix.matrix.ColCounts()
	return ix
}

// Metric returns the distance metric used by SimilarMovies.
func (ix *Index) Metric() Metric {
	return ix.metric
}

// Shape returns the number of users and movies.
func (ix *Index) Shape() (users, movies int) {
	return ix.matrix.Shape()
}

// NNZ returns the number of stored ratings after deduplication.
func (ix *Index) NNZ() int {
	return ix.matrix.NNZ()
}

// HasUser reports whether userID rated at least one movie.
func (ix *Index) HasUser(userID int64) bool {
	_, ok := ix.userIndex[userID]
	return ok
}

// UserPosition returns the row of userID.
func (ix *Index) UserPosition(userID int64) (int, bool) {
	i, ok := ix.userIndex[userID]
	return i, ok
}

// MoviePosition returns the column of movieID.
func (ix *Index) MoviePosition(movieID int64) (int, bool) {
	i, ok := ix.movieIndex[movieID]
	return i, ok
}

// UserAt returns the user id stored at row i.
func (ix *Index) UserAt(i int) int64 {
	return ix.users[i]
}

// MovieAt returns the movie id stored at column i.
func (ix *Index) MovieAt(i int) int64 {
	return ix.movies[i]
}

// RatingCount returns how many users rated movieID. The second result is
// false when the movie has no ratings at all.
func (ix *Index) RatingCount(movieID int64) (int, bool) {
	i, ok := ix.movieIndex[movieID]
	if !ok {
		return 0, false
	}
	return ix.movieCounts[i], true
}

// UserRatingCount returns how many movies userID rated.
func (ix *Index) UserRatingCount(userID int64) (int, bool) {
	i, ok := ix.userIndex[userID]
	if !ok {
		return 0, false
	}
	return ix.userCounts[i], true
}

type neighbor struct {
	index    int
	distance float64
}

// SimilarMovies returns up to k movie ids closest to movieID, nearest
// first. The query movie is never included. Equal distances keep column
// order, so results are deterministic for a given input and metric. An
// unknown movie or k <= 0 yields nil.
func (ix *Index) SimilarMovies(movieID int64, k int) []int64 {
	query, ok := ix.movieIndex[movieID]
	if !ok || k <= 0 {
		return nil
	}

	target := ix.items.Row(query)
	neighbors := make([]neighbor, 0, len(ix.movies)-1)
	for i := range ix.movies {
		if i == query {
			continue
		}
		neighbors = append(neighbors, neighbor{index: i, distance: ix.metric.Distance(target, ix.items.Row(i))})
	}

	sort.SliceStable(neighbors, func(a, b int) bool {
		return neighbors[a].distance < neighbors[b].distance
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	ids := make([]int64, len(neighbors))
	for i, n := range neighbors {
		ids[i] = ix.movies[n.index]
	}
	return ids
}

// Sparsity returns the share of the user x movie grid that holds a rating.
func (ix *Index) Sparsity() float64 {
	users, movies := ix.Shape()
	if users == 0 || movies == 0 {
		return 0
	}
	return float64(ix.NNZ()) / float64(users*movies)
}

// Statistics summarizes rating activity.
type Statistics struct {
	TotalUsers             int     `json:"total_users"`
	MostActiveUserRatings  int     `json:"most_active_user_ratings"`
	LeastActiveUserRatings int     `json:"least_active_user_ratings"`
	TotalMovies            int     `json:"total_movies"`
	MostRatedMovieRatings  int     `json:"most_rated_movie_ratings"`
	LeastRatedMovieRatings int     `json:"least_rated_movie_ratings"`
	Sparsity               float64 `json:"sparsity"`
}

// Statistics returns rating activity figures. All counts are zero for an
// empty index.
func (ix *Index) Statistics() Statistics {
	stats := Statistics{
		TotalUsers:  len(ix.users),
		TotalMovies: len(ix.movies),
		Sparsity:    ix.Sparsity(),
	}
	stats.MostActiveUserRatings, stats.LeastActiveUserRatings = minMax(ix.userCounts)
	stats.MostRatedMovieRatings, stats.LeastRatedMovieRatings = minMax(ix.movieCounts)
	return stats
}

// minMax returns the largest and smallest values, or zeros for an empty slice.
func minMax(values []int) (largest, smallest int) {
	if len(values) == 0 {
		return 0, 0
	}
	largest, smallest = values[0], values[0]
	for _, v := range values[1:] {
		largest = max(largest, v)
		smallest = min(smallest, v)
	}
	return largest, smallest
}
