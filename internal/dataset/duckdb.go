// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
)

// duckDBConnStr opens an in-memory database. Extension autoloading is
// disabled because read_csv_auto is built in.
const duckDBConnStr = ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false"

// DuckDBLoader reads the same CSV files through DuckDB's read_csv_auto,
// which handles type sniffing, quoting and large files without holding a
// csv.Reader per file.
type DuckDBLoader struct {
	opts Options
}

// Load implements Loader.
func (l *DuckDBLoader) Load(ctx context.Context) (*Dataset, error) {
	db, err := sql.Open("duckdb", duckDBConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer db.Close()

	ratings, err := l.loadRatings(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}
	movies, err := l.loadMovies(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}
	return &Dataset{Ratings: ratings, Movies: movies}, nil
}

func (l *DuckDBLoader) loadRatings(ctx context.Context, db *sql.DB) ([]Rating, error) {
	query := fmt.Sprintf(`SELECT CAST(userId AS BIGINT), CAST(movieId AS BIGINT), CAST(rating AS DOUBLE)
		FROM read_csv_auto(%s, header = true)`, quoteLiteral(l.opts.RatingsPath))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []Rating
	for rows.Next() {
		var r Rating
		if err := rows.Scan(&r.UserID, &r.MovieID, &r.Rating); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}

func (l *DuckDBLoader) loadMovies(ctx context.Context, db *sql.DB) ([]Movie, error) {
	query := fmt.Sprintf(`SELECT CAST(movieId AS BIGINT), COALESCE(CAST(title AS VARCHAR), ''), COALESCE(CAST(genres AS VARCHAR), '')
		FROM read_csv_auto(%s, header = true, all_varchar = true)`, quoteLiteral(l.opts.MoviesPath))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var (
			m      Movie
			genres string
		)
		if err := rows.Scan(&m.MovieID, &m.Title, &genres); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		m.Genres = SplitGenres(genres, l.opts.GenreDelimiter)
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// quoteLiteral renders s as a DuckDB string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
