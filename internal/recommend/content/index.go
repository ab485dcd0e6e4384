// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package content implements genre-based content filtering.
//
// Every catalog movie becomes a binary membership vector over the union of
// genres seen in the catalog, and the full pairwise cosine similarity
// matrix is computed once at build time. The matrix is symmetric, so only
// the upper triangle is stored; it still needs O(movies^2) memory, which
// bounds this index to catalog-scale inputs.
package content

import (
	"math"
	"math/bits"
	"runtime"
	"sort"
	"sync"

	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/recommend/fuzzy"
)

// Index is an immutable content filtering index. It is safe for concurrent reads.
type Index struct {
	titles   []string
	firstRow map[string]int

	genres     []string
	genreIndex map[string]int
	membership [][]uint64 // one bitset per movie, one bit per genre
	sizes      []int      // genres per movie

	n   int
	sim []float32 // packed upper triangle, diagonal included

	resolver *fuzzy.Resolver
}

// Build creates an Index over movies in catalog order. Titles are resolved
// with scorer; nil selects fuzzy.Weighted.
func Build(movies []dataset.Movie, scorer fuzzy.Scorer) *Index {
	n := len(movies)
	ix := &Index{
		titles:     make([]string, n),
		firstRow:   make(map[string]int, n),
		genreIndex: make(map[string]int),
		membership: make([][]uint64, n),
		sizes:      make([]int, n),
		n:          n,
	}

	for i, m := range movies {
		ix.titles[i] = m.Title
		if _, ok := ix.firstRow[m.Title]; !ok {
			ix.firstRow[m.Title] = i
		}
		for _, g := range m.Genres {
			if _, ok := ix.genreIndex[g]; !ok {
				ix.genreIndex[g] = len(ix.genres)
				ix.genres = append(ix.genres, g)
			}
		}
	}

	words := (len(ix.genres) + 63) / 64
	for i, m := range movies {
		set := make([]uint64, words)
		for _, g := range m.Genres {
			col := ix.genreIndex[g]
			set[col/64] |= 1 << (col % 64)
		}
		ix.membership[i] = set
		ix.sizes[i] = popcount(set)
	}

	ix.sim = make([]float32, n*(n+1)/2)
	ix.computeSimilarities()
	ix.resolver = fuzzy.NewResolver(scorer, ix.titles)
	return ix
}

// computeSimilarities fills the upper triangle. Rows are split across
// workers; each worker writes a disjoint set of rows.
func (ix *Index) computeSimilarities() {
	workers := min(runtime.GOMAXPROCS(0), max(ix.n, 1))
	rows := make(chan int, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				ix.computeRow(i)
			}
		}()
	}
	for i := 0; i < ix.n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()
}

func (ix *Index) computeRow(i int) {
	base := ix.offset(i)
	ix.sim[base] = 1
	for j := i + 1; j < ix.n; j++ {
		ix.sim[base+j-i] = float32(cosine(ix.membership[i], ix.membership[j], ix.sizes[i], ix.sizes[j]))
	}
}

// cosine of two binary vectors is |A and B| / sqrt(|A| * |B|).
func cosine(a, b []uint64, sizeA, sizeB int) float64 {
	if sizeA == 0 || sizeB == 0 {
		return 0
	}
	shared := 0
	for w := range a {
		shared += bits.OnesCount64(a[w] & b[w])
	}
	return float64(shared) / math.Sqrt(float64(sizeA*sizeB))
}

func popcount(set []uint64) int {
	n := 0
	for _, w := range set {
		n += bits.OnesCount64(w)
	}
	return n
}

// offset returns the position of (i, i) in the packed triangle.
func (ix *Index) offset(i int) int {
	return i*ix.n - i*(i-1)/2
}

// Len returns the number of catalog movies.
func (ix *Index) Len() int {
	return ix.n
}

// Genres returns the genre columns in first-seen order.
func (ix *Index) Genres() []string {
	return append([]string(nil), ix.genres...)
}

// Title returns the title at catalog row i.
func (ix *Index) Title(i int) string {
	return ix.titles[i]
}

// Row returns the first catalog row holding title exactly.
func (ix *Index) Row(title string) (int, bool) {
	i, ok := ix.firstRow[title]
	return i, ok
}

// HasGenre reports whether catalog row i is tagged with genre.
func (ix *Index) HasGenre(i int, genre string) bool {
	col, ok := ix.genreIndex[genre]
	if !ok {
		return false
	}
	return ix.membership[i][col/64]&(1<<(col%64)) != 0
}

// Similarity returns the cosine similarity between catalog rows i and j.
// Similarity(i, i) is 1 for every row.
func (ix *Index) Similarity(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	return float64(ix.sim[ix.offset(i)+j-i])
}

// Resolve matches a free-text title against the catalog.
func (ix *Index) Resolve(title string) (fuzzy.Match, bool) {
	return ix.resolver.Resolve(title)
}

type scored struct {
	row   int
	score float64
}

// SimilarMovies resolves title against the catalog and returns up to k
// titles ranked by genre similarity to it, most similar first. The
// resolved movie itself is excluded; equal scores keep catalog order. A
// title that resolves to nothing yields nil.
//
// When several rows share a title only the first one is reachable.
func (ix *Index) SimilarMovies(title string, k int) []string {
	if k <= 0 {
		return nil
	}
	match, ok := ix.resolver.Resolve(title)
	if !ok {
		return nil
	}
	row := ix.firstRow[match.Title]

	candidates := make([]scored, 0, ix.n-1)
	for j := 0; j < ix.n; j++ {
		if j == row {
			continue
		}
		candidates = append(candidates, scored{row: j, score: ix.Similarity(row, j)})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	titles := make([]string, len(candidates))
	for i, c := range candidates {
		titles[i] = ix.titles[c.row]
	}
	return titles
}

// GenreCount is the number of catalog movies tagged with a genre.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// GenreFrequencies counts movies per genre, most frequent first, ties by name.
func (ix *Index) GenreFrequencies() []GenreCount {
	counts := make([]GenreCount, len(ix.genres))
	for col, g := range ix.genres {
		counts[col].Genre = g
		for _, set := range ix.membership {
			if set[col/64]&(1<<(col%64)) != 0 {
				counts[col].Count++
			}
		}
	}
	sort.Slice(counts, func(a, b int) bool {
		if counts[a].Count != counts[b].Count {
			return counts[a].Count > counts[b].Count
		}
		return counts[a].Genre < counts[b].Genre
	})
	return counts
}
