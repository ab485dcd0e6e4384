// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package content

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/marquee/internal/dataset"
)

func catalog() []dataset.Movie {
	return []dataset.Movie{
		{MovieID: 1, Title: "Toy Story (1995)", Genres: []string{"Adventure", "Animation", "Children", "Comedy", "Fantasy"}},
		{MovieID: 2, Title: "Jumanji (1995)", Genres: []string{"Adventure", "Children", "Fantasy"}},
		{MovieID: 3, Title: "Grumpier Old Men (1995)", Genres: []string{"Comedy", "Romance"}},
		{MovieID: 6, Title: "Heat (1995)", Genres: []string{"Action", "Crime", "Thriller"}},
		{MovieID: 2294, Title: "Antz (1998)", Genres: []string{"Adventure", "Animation", "Children", "Comedy", "Fantasy"}},
	}
}

func TestBuild_ExampleScenario(t *testing.T) {
	t.Parallel()

	ix := Build([]dataset.Movie{
		{MovieID: 10, Title: "Alpha", Genres: []string{"Action", "Comedy"}},
		{MovieID: 11, Title: "Beta", Genres: []string{"Action"}},
	}, nil)

	if got := ix.Similarity(0, 1); math.Abs(got-1/math.Sqrt2) > 1e-6 {
		t.Errorf("Similarity(0, 1) = %v, want 1/sqrt(2)", got)
	}
	if got := ix.SimilarMovies("Alpha", 5); !reflect.DeepEqual(got, []string{"Beta"}) {
		t.Errorf("SimilarMovies(Alpha) = %v, want [Beta]", got)
	}
}

func TestSimilarity_SymmetricWithUnitDiagonal(t *testing.T) {
	t.Parallel()

	ix := Build(catalog(), nil)
	for i := 0; i < ix.Len(); i++ {
		if got := ix.Similarity(i, i); got != 1 {
			t.Errorf("Similarity(%d, %d) = %v, want 1", i, i, got)
		}
		for j := 0; j < ix.Len(); j++ {
			if ix.Similarity(i, j) != ix.Similarity(j, i) {
				t.Errorf("Similarity(%d, %d) != Similarity(%d, %d)", i, j, j, i)
			}
			if s := ix.Similarity(i, j); s < 0 || s > 1+1e-6 {
				t.Errorf("Similarity(%d, %d) = %v out of range", i, j, s)
			}
		}
	}
}

func TestSimilarity_NoGenres(t *testing.T) {
	t.Parallel()

	ix := Build([]dataset.Movie{
		{MovieID: 1, Title: "Untagged", Genres: nil},
		{MovieID: 2, Title: "Tagged", Genres: []string{"Drama"}},
	}, nil)

	if got := ix.Similarity(0, 0); got != 1 {
		t.Errorf("Similarity(0, 0) = %v, want 1", got)
	}
	if got := ix.Similarity(0, 1); got != 0 {
		t.Errorf("Similarity(0, 1) = %v, want 0", got)
	}
}

func TestSimilarMovies(t *testing.T) {
	t.Parallel()

	ix := Build(catalog(), nil)

	tests := []struct {
		name  string
		title string
		k     int
		want  []string
	}{
		{
			name:  "ranked by genre overlap",
			title: "Toy Story (1995)",
			k:     4,
			want:  []string{"Antz (1998)", "Jumanji (1995)", "Grumpier Old Men (1995)", "Heat (1995)"},
		},
		{
			name:  "fuzzy title",
			title: "toy story",
			k:     2,
			want:  []string{"Antz (1998)", "Jumanji (1995)"},
		},
		{
			name:  "ties keep catalog order",
			title: "Heat (1995)",
			k:     10,
			want:  []string{"Toy Story (1995)", "Jumanji (1995)", "Grumpier Old Men (1995)", "Antz (1998)"},
		},
		{
			name:  "unresolvable title",
			title: "Zzzzz",
			k:     5,
			want:  nil,
		},
		{
			name:  "zero k",
			title: "Heat (1995)",
			k:     0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ix.SimilarMovies(tt.title, tt.k); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SimilarMovies(%q, %d) = %v, want %v", tt.title, tt.k, got, tt.want)
			}
		})
	}
}

func TestSimilarMovies_DuplicateTitleUsesFirstRow(t *testing.T) {
	t.Parallel()

	movies := append(catalog(), dataset.Movie{MovieID: 99, Title: "Heat (1995)", Genres: []string{"Drama"}})
	ix := Build(movies, nil)

	if row, _ := ix.Row("Heat (1995)"); row != 3 {
		t.Fatalf("Row(Heat) = %d, want first row 3", row)
	}

	got := ix.SimilarMovies("Heat (1995)", 10)
	if len(got) != 5 {
		t.Fatalf("SimilarMovies() returned %d titles, want 5", len(got))
	}
	// The second "Heat (1995)" row is a different movie and may be recommended.
	if got[4] != "Heat (1995)" {
		t.Errorf("SimilarMovies() = %v, want the later duplicate row last", got)
	}
}

func TestBuild_ManyGenres(t *testing.T) {
	t.Parallel()

	genres := make([]string, 70)
	for i := range genres {
		genres[i] = fmt.Sprintf("g%02d", i)
	}
	ix := Build([]dataset.Movie{
		{MovieID: 1, Title: "Everything", Genres: genres},
		{MovieID: 2, Title: "Last Only", Genres: []string{"g69"}},
	}, nil)

	if len(ix.Genres()) != 70 {
		t.Errorf("Genres() = %d, want 70", len(ix.Genres()))
	}
	if !ix.HasGenre(1, "g69") || ix.HasGenre(1, "g00") {
		t.Error("membership bit for a genre past 64 columns is wrong")
	}
	if got := ix.Similarity(0, 1); math.Abs(got-1/math.Sqrt(70)) > 1e-6 {
		t.Errorf("Similarity(0, 1) = %v, want 1/sqrt(70)", got)
	}
}

func TestBuild_DuplicateGenreTokens(t *testing.T) {
	t.Parallel()

	ix := Build([]dataset.Movie{
		{MovieID: 1, Title: "A", Genres: []string{"Drama", "Drama"}},
		{MovieID: 2, Title: "B", Genres: []string{"Drama"}},
	}, nil)

	if got := ix.Similarity(0, 1); math.Abs(got-1) > 1e-6 {
		t.Errorf("Similarity(0, 1) = %v, want 1 for binary membership", got)
	}
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	ix := Build(nil, nil)
	if ix.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ix.Len())
	}
	if got := ix.SimilarMovies("anything", 5); got != nil {
		t.Errorf("SimilarMovies() = %v, want nil", got)
	}
}

func TestGenreFrequencies(t *testing.T) {
	t.Parallel()

	got := Build(catalog(), nil).GenreFrequencies()
	want := []GenreCount{
		{"Adventure", 3}, {"Children", 3}, {"Comedy", 3}, {"Fantasy", 3},
		{"Animation", 2},
		{"Action", 1}, {"Crime", 1}, {"Romance", 1}, {"Thriller", 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenreFrequencies() = %v, want %v", got, want)
	}
}
