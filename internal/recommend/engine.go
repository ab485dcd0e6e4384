// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend/collaborative"
	"github.com/tomtom215/marquee/internal/recommend/content"
	"github.com/tomtom215/marquee/internal/recommend/fuzzy"
)

// ErrEmptyCatalog is returned by NewEngine when the dataset has no movies.
var ErrEmptyCatalog = errors.New("movie catalog is empty")

// Engine answers recommendation requests from immutable indices built once
// at construction. It is safe for concurrent use.
type Engine struct {
	cfg       Config
	threshold int
	logger    zerolog.Logger

	collab  *collaborative.Index
	content *content.Index

	ratings []dataset.Rating
	movies  []dataset.Movie
	titles  map[int64]string

	mostRated  []TitleCount
	leastRated []TitleCount

	resolutions *cache.LRU[resolution]
	builtAt     time.Time
}

// resolution is a memoized title lookup. A zero value with found unset
// records that nothing matched.
type resolution struct {
	title   string
	movieID int64
	found   bool
}

// NewEngine builds the collaborative and content indices from ds.
//
// A MinRatingsThreshold below MinRatingsFloor is raised to the floor and
// logged; it is not an error. Construction fails only for an invalid
// config or an empty catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(ds *dataset.Dataset, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if ds == nil || len(ds.Movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	metric, _ := collaborative.MetricByName(cfg.Metric)
	scorer, _ := fuzzy.ScorerByName(cfg.Scorer)
	if cfg.DefaultLimit == 0 {
		cfg.DefaultLimit = DefaultNumRecommendations
	}

	e := &Engine{
		cfg:       cfg,
		threshold: cfg.effectiveThreshold(),
		logger:    logger.With().Str("component", "recommend").Logger(),
		ratings:   ds.Ratings,
		movies:    ds.Movies,
		titles:    make(map[int64]string, len(ds.Movies)),
	}

	if e.threshold != cfg.MinRatingsThreshold {
		e.logger.Warn().
			Int("requested", cfg.MinRatingsThreshold).
			Int("threshold", e.threshold).
			Msg("min ratings threshold below floor, raised")
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		start := time.Now()
		e.collab = collaborative.Build(ds.Ratings, metric)
		metrics.RecordIndexBuild("collaborative", time.Since(start))
	}()
	go func() {
		defer wg.Done()
		start := time.Now()
		e.content = content.Build(ds.Movies, scorer)
		metrics.RecordIndexBuild("content", time.Since(start))
	}()
	wg.Wait()

	for _, m := range ds.Movies {
		if _, ok := e.titles[m.MovieID]; !ok {
			e.titles[m.MovieID] = m.Title
		}
	}
	e.mostRated, e.leastRated = e.rankByRatingCount()

	if cfg.ResolutionCacheSize > 0 {
		e.resolutions = cache.NewLRU[resolution](cfg.ResolutionCacheSize, cfg.ResolutionCacheTTL)
	}
	e.builtAt = time.Now()

	users, movies := e.collab.Shape()
	metrics.SetDatasetRecords(len(ds.Ratings), len(ds.Movies), users, len(e.content.Genres()))

	e.logger.Info().
		Int("ratings", len(ds.Ratings)).
		Int("users", users).
		Int("rated_movies", movies).
		Int("catalog", e.content.Len()).
		Int("genres", len(e.content.Genres())).
		Int("threshold", e.threshold).
		Str("metric", metric.Name()).
		Msg("recommendation engine built")

	return e, nil
}

// Recommend returns up to n movies similar to title for userID. A
// non-positive n selects the configured default.
//
// The user is checked before the title is resolved, so an unknown user
// yields MethodUserNotFound whatever the title. A resolved movie with at
// least the threshold number of ratings is answered collaboratively; any
// other is answered by genre similarity.
func (e *Engine) Recommend(ctx context.Context, title string, userID int64, n int) Result {
	start := time.Now()
	if n <= 0 {
		n = e.cfg.DefaultLimit
	}

	res := e.recommend(title, userID, n)

	elapsed := time.Since(start)
	metrics.RecordRecommendation(res.Method.String(), elapsed)
	logging.Ctx(ctx).Debug().
		Str("component", "recommend").
		Str("title", title).
		Int64("user_id", userID).
		Str("method", res.Method.String()).
		Str("matched_title", res.MatchedTitle).
		Int("results", len(res.Recommendations)).
		Dur("duration", elapsed).
		Msg("recommendation served")

	return res
}

func (e *Engine) recommend(title string, userID int64, n int) Result {
	if !e.collab.HasUser(userID) {
		return Result{Method: MethodUserNotFound, Recommendations: []string{}}
	}

	r := e.resolve(title)
	if !r.found {
		return Result{Method: MethodTitleNotFound, Recommendations: []string{}}
	}

	if count, ok := e.collab.RatingCount(r.movieID); ok && count >= e.threshold {
		ids := e.collab.SimilarMovies(r.movieID, n)
		recs := make([]string, 0, len(ids))
		for _, id := range ids {
			// Rated movies missing from the catalog have no title to show.
			if t, ok := e.titles[id]; ok {
				recs = append(recs, t)
			}
		}
		return Result{Method: MethodCollaborative, Recommendations: recs, MatchedTitle: r.title}
	}

	recs := e.content.SimilarMovies(r.title, n)
	if recs == nil {
		recs = []string{}
	}
	return Result{Method: MethodContent, Recommendations: recs, MatchedTitle: r.title}
}

// resolve maps a query to the first catalog row carrying the best-matching
// title. Results are memoized by normalized query; the catalog never
// changes for the life of the engine, so a cached answer equals a fresh one.
func (e *Engine) resolve(query string) resolution {
	key := fuzzy.Normalize(query)
	if e.resolutions != nil {
		if r, ok := e.resolutions.Get(key); ok {
			metrics.RecordResolutionCache(true)
			return r
		}
		metrics.RecordResolutionCache(false)
	}

	var r resolution
	if match, ok := e.content.Resolve(query); ok {
		row, _ := e.content.Row(match.Title)
		r = resolution{title: match.Title, movieID: e.movies[row].MovieID, found: true}
	}

	if e.resolutions != nil {
		e.resolutions.Add(key, r)
	}
	return r
}

// ResolveTitle returns the catalog title and movie id a query resolves to.
func (e *Engine) ResolveTitle(query string) (title string, movieID int64, ok bool) {
	r := e.resolve(query)
	return r.title, r.movieID, r.found
}

// HasUser reports whether userID has rated anything.
func (e *Engine) HasUser(userID int64) bool {
	return e.collab.HasUser(userID)
}

// RatingCount returns the number of ratings for movieID, zero when unrated.
func (e *Engine) RatingCount(movieID int64) int {
	count, _ := e.collab.RatingCount(movieID)
	return count
}

// Threshold returns the effective minimum rating count for collaborative
// filtering.
func (e *Engine) Threshold() int {
	return e.threshold
}

// DefaultLimit returns the number of recommendations served by default.
func (e *Engine) DefaultLimit() int {
	return e.cfg.DefaultLimit
}

// BuiltAt returns when the engine finished building.
func (e *Engine) BuiltAt() time.Time {
	return e.builtAt
}

// CatalogSize returns the number of movies in the catalog.
func (e *Engine) CatalogSize() int {
	return len(e.movies)
}
