// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package recommend implements a hybrid movie recommendation engine.
//
// # Architecture
//
// The engine combines two similarity searches over a ratings/catalog dataset:
//
//   - Collaborative filtering: nearest neighbors of a movie's rating column
//     in the sparse user x movie matrix (package collaborative)
//   - Content filtering: cosine similarity of genre membership vectors
//     (package content)
//
// A free-text title is first resolved against the catalog by fuzzy matching
// (package fuzzy). Movies with at least Config.MinRatingsThreshold ratings
// are answered collaboratively; sparsely rated movies fall back to content
// similarity, which needs no rating history.
//
// # Outcomes
//
// Recommend never fails for expected conditions. An unknown user or an
// unmatchable title is reported through Result.Method, so callers branch on
// one value:
//
//	res := engine.Recommend(ctx, "toy story", 1, 5)
//	switch res.Method {
//	case recommend.MethodUserNotFound, recommend.MethodTitleNotFound:
//		// 404
//	default:
//		// res.MatchedTitle, res.Recommendations
//	}
//
// # Concurrency
//
// An Engine is immutable after NewEngine returns and is safe for concurrent
// use. Reloading a dataset builds a new Engine and publishes it through a
// Holder; requests in flight keep the Engine they started with.
package recommend
