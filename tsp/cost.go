// Package tsp - cost utilities.
//
// This file provides the Euclidean tour scorer used as the annealing energy.
// It has no side effects.
package tsp

import (
	"math"

	"github.com/paulmach/orb/planar"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourLength returns the sum of Euclidean distances between cyclically
// consecutive entries of tour, including the closing edge tour[n-1]→tour[0].
//
// Contract:
//   - len(tour) ≥ 1, otherwise ErrEmptyTour.
//   - every entry in [0..len(points)-1], otherwise ErrIndexOutOfRange.
//   - a single-element tour has length 0.
//
// The result is invariant to the starting offset and to reversal of the tour.
//
// Complexity: O(n) time, O(1) extra space.
func TourLength(tour []int, points []Point) (float64, error) {
	if len(tour) == 0 {
		return 0, ErrEmptyTour
	}

	var (
		n   = len(points)
		sum float64
		i   int
		u   int
		v   int
	)
	for i = 0; i < len(tour); i++ {
		u = tour[i]
		v = tour[(i+1)%len(tour)]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrIndexOutOfRange
		}
		sum += planar.Distance(points[u], points[v])
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
