// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"sort"

	"github.com/tomtom215/marquee/internal/recommend/collaborative"
	"github.com/tomtom215/marquee/internal/recommend/content"
)

// Statistics summarizes the loaded dataset.
type Statistics struct {
	collaborative.Statistics

	TotalRatings        int `json:"total_ratings"`
	CatalogSize         int `json:"catalog_size"`
	Genres              int `json:"genres"`
	MinRatingsThreshold int `json:"min_ratings_threshold"`
}

// rankByRatingCount joins per-movie rating counts to catalog titles and
// returns the top and bottom of the ranking. Movies absent from the catalog
// are skipped; equal counts keep the order movies first appear in the
// ratings.
func (e *Engine) rankByRatingCount() (most, least []TitleCount) {
	_, n := e.collab.Shape()
	counts := make([]TitleCount, 0, n)
	for pos := 0; pos < n; pos++ {
		id := e.collab.MovieAt(pos)
		title, ok := e.titles[id]
		if !ok {
			continue
		}
		count, _ := e.collab.RatingCount(id)
		counts = append(counts, TitleCount{Title: title, Count: count})
	}

	most = make([]TitleCount, len(counts))
	copy(most, counts)
	sort.SliceStable(most, func(i, j int) bool { return most[i].Count > most[j].Count })

	least = counts
	sort.SliceStable(least, func(i, j int) bool { return least[i].Count < least[j].Count })

	return most[:min(len(most), topRatedLimit)], least[:min(len(least), topRatedLimit)]
}

// MostRated returns up to ten catalog movies with the most ratings.
func (e *Engine) MostRated() []TitleCount {
	return append([]TitleCount(nil), e.mostRated...)
}

// LeastRated returns up to ten catalog movies with the fewest ratings.
func (e *Engine) LeastRated() []TitleCount {
	return append([]TitleCount(nil), e.leastRated...)
}

// Statistics returns rating activity figures for the loaded dataset.
func (e *Engine) Statistics() Statistics {
	return Statistics{
		Statistics:          e.collab.Statistics(),
		TotalRatings:        len(e.ratings),
		CatalogSize:         len(e.movies),
		Genres:              len(e.content.Genres()),
		MinRatingsThreshold: e.threshold,
	}
}

// RatingDistribution counts ratings per rating value, lowest value first.
func (e *Engine) RatingDistribution() []RatingCount {
	counts := make(map[float64]int)
	for _, r := range e.ratings {
		counts[r.Rating]++
	}

	dist := make([]RatingCount, 0, len(counts))
	for rating, count := range counts {
		dist = append(dist, RatingCount{Rating: rating, Count: count})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].Rating < dist[j].Rating })
	return dist
}

// GenreFrequencies counts catalog movies per genre, most frequent first.
func (e *Engine) GenreFrequencies() []content.GenreCount {
	return e.content.GenreFrequencies()
}
