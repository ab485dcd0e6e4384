// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package fuzzy

// Match is the best catalog candidate for a query.
type Match struct {
	// Title is the candidate exactly as it appears in the catalog.
	Title string
	// Index is the candidate's position in the candidate list.
	Index int
	// Score is the scorer's similarity in [1, 100].
	Score int
}

// Resolve returns the best-scoring candidate for query. Ties keep the
// earliest candidate. It reports false when candidates is empty or no
// candidate scores above zero.
func Resolve(scorer Scorer, query string, candidates []string) (Match, bool) {
	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i] = Normalize(c)
	}
	return resolve(scorer, Normalize(query), candidates, normalized)
}

func resolve(scorer Scorer, query string, candidates, normalized []string) (Match, bool) {
	best := Match{Index: -1}
	if query == "" {
		return best, false
	}

	for i, candidate := range normalized {
		score := scorer.Score(query, candidate)
		if score > best.Score {
			best = Match{Title: candidates[i], Index: i, Score: score}
			if score == 100 {
				break
			}
		}
	}

	if best.Index < 0 {
		return Match{}, false
	}
	return best, true
}

// Resolver matches queries against a fixed candidate list. Candidates are
// normalized once at construction; a Resolver is safe for concurrent use.
type Resolver struct {
	scorer     Scorer
	candidates []string
	normalized []string
}

// NewResolver creates a Resolver over candidates. A nil scorer selects Weighted.
func NewResolver(scorer Scorer, candidates []string) *Resolver {
	if scorer == nil {
		scorer = Weighted
	}
	r := &Resolver{
		scorer:     scorer,
		candidates: append([]string(nil), candidates...),
		normalized: make([]string, len(candidates)),
	}
	for i, c := range candidates {
		r.normalized[i] = Normalize(c)
	}
	return r
}

// Resolve returns the best match for query; see the package-level Resolve.
func (r *Resolver) Resolve(query string) (Match, bool) {
	return resolve(r.scorer, Normalize(query), r.candidates, r.normalized)
}

// Len returns the number of candidates.
func (r *Resolver) Len() int {
	return len(r.candidates)
}
