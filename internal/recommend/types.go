// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

// Method identifies how a recommendation request was answered.
type Method int

const (
	// MethodUnknown is the zero value; no request was answered.
	MethodUnknown Method = iota
	// MethodCollaborative answered from rating co-occurrence.
	MethodCollaborative
	// MethodContent answered from genre similarity.
	MethodContent
	// MethodUserNotFound means the user has no ratings.
	MethodUserNotFound
	// MethodTitleNotFound means no catalog title matched the query.
	MethodTitleNotFound
)

// String returns the display name of the method.
func (m Method) String() string {
	switch m {
	case MethodCollaborative:
		return "Collaborative Filtering"
	case MethodContent:
		return "Content Filtering"
	case MethodUserNotFound:
		return "User ID not found"
	case MethodTitleNotFound:
		return "Movie title not found"
	default:
		return "unknown"
	}
}

// Found reports whether the method produced recommendations rather than a
// not-found outcome.
func (m Method) Found() bool {
	return m == MethodCollaborative || m == MethodContent
}

// Result is the outcome of a recommendation request.
type Result struct {
	// Method is the strategy used, or a not-found marker.
	Method Method

	// Recommendations are movie titles, most similar first. Empty for
	// not-found outcomes and possibly shorter than requested.
	Recommendations []string

	// MatchedTitle is the catalog title the query resolved to. Empty for
	// not-found outcomes.
	MatchedTitle string
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
