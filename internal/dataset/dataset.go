// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package dataset loads the two tabular inputs of the recommender: the
// ratings table (userId, movieId, rating) and the movie catalog
// (movieId, title, genres). Records are returned in file order, which the
// indices rely on for first-seen positions and first-row title lookups.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by loaders.
var (
	// ErrMalformedRecord indicates a row that could not be parsed.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrMissingColumn indicates a header without a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrUnsupportedDriver indicates an unknown loader driver name.
	ErrUnsupportedDriver = errors.New("unsupported dataset driver")
)

// Rating is one (user, movie, rating) observation.
type Rating struct {
	UserID  int64
	MovieID int64
	Rating  float64
}

// Movie is one catalog row. Genres keeps every token produced by splitting
// the genre field, including the empty token of an empty field.
type Movie struct {
	MovieID int64
	Title   string
	Genres  []string
}

// Dataset holds both tables as loaded.
type Dataset struct {
	Ratings []Rating
	Movies  []Movie
}

// Loader reads a Dataset from its backing store.
type Loader interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Options configures a Loader.
type Options struct {
	RatingsPath    string
	MoviesPath     string
	GenreDelimiter string
}

// NewLoader returns the Loader for driver ("csv" or "duckdb").
func NewLoader(driver string, opts Options) (Loader, error) {
	if opts.GenreDelimiter == "" {
		opts.GenreDelimiter = "|"
	}
	switch strings.ToLower(driver) {
	case "", "csv":
		return &CSVLoader{opts: opts}, nil
	case "duckdb":
		return &DuckDBLoader{opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// SplitGenres splits a delimited genre field into tokens.
// An empty field yields a single empty token.
func SplitGenres(field, delimiter string) []string {
	return strings.Split(field, delimiter)
}
