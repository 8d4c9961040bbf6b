// Package tsp holds the problem-level vocabulary shared by the renormalization
// solver: planar points, cyclic tours over point indices, and the Euclidean
// tour-length scorer.
//
// A tour is a cyclic sequence of point indices of length n. Unlike closed
// matrix tours it does not repeat the first index at the end; the edge from
// tour[n-1] back to tour[0] is implicit.
//
// Provided helpers:
//   - TourLength: cyclic Euclidean length of a tour over a point set.
//   - ValidatePoints: finite, non-coincident input points.
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - RotateToStart, ReverseInPlace, EqualCyclic: tour structure utilities.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time for every helper except ValidatePoints (O(n) expected, map-based).
//   - Costs are rounded to 1e-9 to keep results stable across platforms.
package tsp
