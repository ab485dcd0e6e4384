// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVLoader reads MovieLens-style CSV files with a header row.
// Columns are located by name, so extra columns (timestamp) are ignored.
type CSVLoader struct {
	opts Options
}

// Load implements Loader.
func (l *CSVLoader) Load(ctx context.Context) (*Dataset, error) {
	ratings, err := readFile(ctx, l.opts.RatingsPath, ReadRatings)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	movies, err := readFile(ctx, l.opts.MoviesPath, func(r io.Reader) ([]Movie, error) {
		return ReadMovies(r, l.opts.GenreDelimiter)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}

	return &Dataset{Ratings: ratings, Movies: movies}, nil
}

func readFile[T any](ctx context.Context, path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

// ReadRatings parses a ratings CSV with userId, movieId and rating columns.
func ReadRatings(r io.Reader) ([]Rating, error) {
	reader := newReader(r)
	cols, err := readHeader(reader, "userId", "movieId", "rating")
	if err != nil {
		return nil, err
	}

	var ratings []Rating
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		line, _ := reader.FieldPos(0)

		userID, err := strconv.ParseInt(strings.TrimSpace(record[cols[0]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: userId: %w", ErrMalformedRecord, line, err)
		}
		movieID, err := strconv.ParseInt(strings.TrimSpace(record[cols[1]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: movieId: %w", ErrMalformedRecord, line, err)
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(record[cols[2]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: rating: %w", ErrMalformedRecord, line, err)
		}

		ratings = append(ratings, Rating{UserID: userID, MovieID: movieID, Rating: rating})
	}
	return ratings, nil
}

// ReadMovies parses a movies CSV with movieId, title and genres columns.
func ReadMovies(r io.Reader, delimiter string) ([]Movie, error) {
	reader := newReader(r)
	cols, err := readHeader(reader, "movieId", "title", "genres")
	if err != nil {
		return nil, err
	}

	var movies []Movie
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		line, _ := reader.FieldPos(0)

		movieID, err := strconv.ParseInt(strings.TrimSpace(record[cols[0]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: movieId: %w", ErrMalformedRecord, line, err)
		}

		movies = append(movies, Movie{
			MovieID: movieID,
			Title:   record[cols[1]],
			Genres:  SplitGenres(record[cols[2]], delimiter),
		})
	}
	return movies, nil
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	return reader
}

// readHeader reads the header row and returns the positions of names.
func readHeader(reader *csv.Reader, names ...string) ([]int, error) {
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("%w: header: %w", ErrMalformedRecord, err)
	}

	positions := make(map[string]int, len(header))
	for i, h := range header {
		// Strip a UTF-8 BOM on the first column.
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		positions[h] = i
	}

	cols := make([]int, len(names))
	for i, name := range names {
		pos, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		cols[i] = pos
	}
	return cols, nil
}
