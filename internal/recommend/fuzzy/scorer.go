// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package fuzzy resolves free-text movie titles against the catalog.
//
// Scoring is pluggable through the Scorer interface. Every scorer works on
// normalized strings (see Normalize) and returns an integer similarity in
// [0, 100]. A best score of 0 means nothing in the catalog resembles the
// query, which the resolver reports as not found.
package fuzzy

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Scorer compares two normalized strings.
type Scorer interface {
	Score(query, candidate string) int
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(query, candidate string) int

// Score implements Scorer.
func (f ScorerFunc) Score(query, candidate string) int {
	return f(query, candidate)
}

// Built-in scorers.
var (
	// Ratio is the edit-distance similarity of the whole strings.
	Ratio Scorer = ScorerFunc(ratio)

	// TokenSort compares the strings after sorting their words, so word
	// order does not matter ("story toy" matches "toy story").
	TokenSort Scorer = ScorerFunc(tokenSortRatio)

	// Weighted picks the best of Ratio, TokenSort and a substring match
	// scaled by how different the lengths are.
	Weighted Scorer = ScorerFunc(weightedRatio)
)

// ScorerByName returns the scorer registered under name.
func ScorerByName(name string) (Scorer, error) {
	switch name {
	case "ratio":
		return Ratio, nil
	case "token_sort":
		return TokenSort, nil
	case "weighted", "":
		return Weighted, nil
	default:
		return nil, fmt.Errorf("unknown scorer %q", name)
	}
}

// Normalize lowercases s, replaces every rune that is not a letter or digit
// with a space, and trims the result.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// ratio returns 100 * (1 - distance / longer length), rounded.
func ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	return runeRatio(ra, rb, levenshtein.ComputeDistance(a, b))
}

func runeRatio(a, b []rune, distance int) int {
	longest := max(len(a), len(b))
	if longest == 0 || len(a) == 0 || len(b) == 0 {
		return 0
	}
	return int(math.Round(100 * (1 - float64(distance)/float64(longest))))
}

// partialRatio is the best ratio of the shorter string against every
// equally long window of the longer one.
func partialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	shortStr := string(short)
	best := 0
	for i := 0; i+len(short) <= len(long); i++ {
		window := long[i : i+len(short)]
		score := runeRatio(short, window, levenshtein.ComputeDistance(shortStr, string(window)))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSortRatio(a, b string) int {
	return ratio(sortTokens(a), sortTokens(b))
}

func weightedRatio(a, b string) int {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 || lb == 0 {
		return 0
	}

	best := float64(ratio(a, b))
	lengthRatio := float64(max(la, lb)) / float64(min(la, lb))

	if lengthRatio < 1.5 {
		return int(math.Round(math.Max(best, float64(tokenSortRatio(a, b))*0.95)))
	}

	partialScale := 0.9
	if lengthRatio > 8 {
		partialScale = 0.6
	}
	best = math.Max(best, float64(partialRatio(a, b))*partialScale)
	best = math.Max(best, float64(partialRatio(sortTokens(a), sortTokens(b)))*0.95*partialScale)
	return int(math.Round(best))
}
