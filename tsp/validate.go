// Package tsp - input validation.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import "math"

// ValidatePoints verifies that points is non-empty, that every coordinate is
// finite, and that no two points coincide.
//
// Coincident points are rejected because they share every grid cell at every
// resolution, so refinement would never reach unity.
//
// Complexity: O(n) expected time, O(n) space.
func ValidatePoints(points []Point) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	seen := make(map[Point]struct{}, len(points))

	var (
		i  int
		p  Point
		ok bool
	)
	for i = 0; i < len(points); i++ {
		p = points[i]
		if !finite(p[0]) || !finite(p[1]) {
			return ErrNonFinite
		}
		if _, ok = seen[p]; ok {
			return ErrCoincidentPoints
		}
		seen[p] = struct{}{}
	}

	return nil
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
