// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package collaborative

import "sort"

// Triplet is one (row, column, value) entry used to build a Matrix.
type Triplet struct {
	Row   int
	Col   int
	Value float64
}

// Matrix is an immutable compressed sparse row matrix. Absent cells mean
// "no value", not zero: a stored 0.0 still counts as a nonzero entry.
type Matrix struct {
	rows, cols int
	rowPtr     []int
	colIdx     []int
	values     []float64
}

// NewMatrix builds a rows x cols matrix from triplets. When a cell appears
// more than once the last triplet wins. Column indices within a row are
// sorted ascending.
func NewMatrix(rows, cols int, triplets []Triplet) *Matrix {
	// Deduplicate, keeping the last write per cell.
	last := make(map[[2]int]int, len(triplets))
	for i, t := range triplets {
		last[[2]int{t.Row, t.Col}] = i
	}

	counts := make([]int, rows+1)
	for cell := range last {
		counts[cell[0]+1]++
	}
	for r := 0; r < rows; r++ {
		counts[r+1] += counts[r]
	}

	m := &Matrix{
		rows:   rows,
		cols:   cols,
		rowPtr: counts,
		colIdx: make([]int, len(last)),
		values: make([]float64, len(last)),
	}

	next := make([]int, rows)
	copy(next, counts[:rows])
	for cell, i := range last {
		pos := next[cell[0]]
		m.colIdx[pos] = cell[1]
		m.values[pos] = triplets[i].Value
		next[cell[0]]++
	}

	for r := 0; r < rows; r++ {
		lo, hi := m.rowPtr[r], m.rowPtr[r+1]
		sort.Sort(rowSorter{cols: m.colIdx[lo:hi], vals: m.values[lo:hi]})
	}
	return m
}

type rowSorter struct {
	cols []int
	vals []float64
}

func (s rowSorter) Len() int           { return len(s.cols) }
func (s rowSorter) Less(i, j int) bool { return s.cols[i] < s.cols[j] }
func (s rowSorter) Swap(i, j int) {
	s.cols[i], s.cols[j] = s.cols[j], s.cols[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}

// Shape returns the number of rows and columns.
func (m *Matrix) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int {
	return len(m.values)
}

// Row returns the sparse vector stored in row r. The slices alias the
// matrix and must not be modified.
func (m *Matrix) Row(r int) Vector {
	lo, hi := m.rowPtr[r], m.rowPtr[r+1]
	return Vector{Indices: m.colIdx[lo:hi], Values: m.values[lo:hi]}
}

// RowCounts returns the number of stored entries per row.
func (m *Matrix) RowCounts() []int {
	counts := make([]int, m.rows)
	for r := range counts {
		counts[r] = m.rowPtr[r+1] - m.rowPtr[r]
	}
	return counts
}

// ColCounts returns the number of stored entries per column.
func (m *Matrix) ColCounts() []int {
	counts := make([]int, m.cols)
	for _, c := range m.colIdx {
		counts[c]++
	}
	return counts
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Matrix) Transpose() *Matrix {
	triplets := make([]Triplet, 0, m.NNZ())
	for r := 0; r < m.rows; r++ {
		for i := m.rowPtr[r]; i < m.rowPtr[r+1]; i++ {
			triplets = append(triplets, Triplet{Row: m.colIdx[i], Col: r, Value: m.values[i]})
		}
	}
	return NewMatrix(m.cols, m.rows, triplets)
}

// Vector is a sparse vector with ascending Indices.
type Vector struct {
	Indices []int
	Values  []float64
}

// Dot returns the inner product of v and w.
func (v Vector) Dot(w Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(w.Indices) {
		switch {
		case v.Indices[i] == w.Indices[j]:
			sum += v.Values[i] * w.Values[j]
			i++
			j++
		case v.Indices[i] < w.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// SquaredNorm returns the inner product of v with itself.
func (v Vector) SquaredNorm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return sum
}
