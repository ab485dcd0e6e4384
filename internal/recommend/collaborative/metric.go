// Marquee - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package collaborative

import (
	"fmt"
	"math"
)

// Metric is a distance between two item vectors. Smaller is closer.
type Metric interface {
	Name() string
	Distance(a, b Vector) float64
}

// MetricByName returns the metric registered under name.
func MetricByName(name string) (Metric, error) {
	switch name {
	case "cosine", "":
		return Cosine{}, nil
	case "euclidean":
		return Euclidean{}, nil
	case "manhattan":
		return Manhattan{}, nil
	default:
		return nil, fmt.Errorf("unknown metric %q", name)
	}
}

// Cosine is 1 - cosine similarity. A vector with no ratings has distance 1
// to everything.
type Cosine struct{}

// Name implements Metric.
func (Cosine) Name() string { return "cosine" }

// Distance implements Metric.
func (Cosine) Distance(a, b Vector) float64 {
	na, nb := a.SquaredNorm(), b.SquaredNorm()
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - a.Dot(b)/math.Sqrt(na*nb)
}

// Euclidean is the L2 distance.
type Euclidean struct{}

// Name implements Metric.
func (Euclidean) Name() string { return "euclidean" }

// Distance implements Metric.
func (Euclidean) Distance(a, b Vector) float64 {
	var sum float64
	walk(a, b, func(x, y float64) { sum += (x - y) * (x - y) })
	return math.Sqrt(sum)
}

// Manhattan is the L1 distance.
type Manhattan struct{}

// Name implements Metric.
func (Manhattan) Name() string { return "manhattan" }

// Distance implements Metric.
func (Manhattan) Distance(a, b Vector) float64 {
	var sum float64
	walk(a, b, func(x, y float64) { sum += math.Abs(x - y) })
	return sum
}

// walk calls fn for every index present in a or b with the two values,
// using 0 for the side that has no entry.
func walk(a, b Vector, fn func(x, y float64)) {
	i, j := 0, 0
	for i < len(a.Indices) || j < len(b.Indices) {
		switch {
		case j >= len(b.Indices) || (i < len(a.Indices) && a.Indices[i] < b.Indices[j]):
			fn(a.Values[i], 0)
			i++
		case i >= len(a.Indices) || b.Indices[j] < a.Indices[i]:
			fn(0, b.Values[j])
			j++
		default:
			fn(a.Values[i], b.Values[j])
			i++
			j++
		}
	}
}
