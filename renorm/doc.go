// Package renorm builds a tour by hierarchical refinement of a rotated grid.
//
// What:
//
//   - Level 0 is a 2×2 grid over the rotated, padded bounding box; its single
//     block gets a closed basic route over the occupied quadrants.
//   - Every further level doubles both grid dimensions. Each occupied cell
//     that the parent route passes through becomes a child block, entered and
//     left at the points the parent route imposes, and routed by table lookup.
//   - Refinement stops at the first level where every cell holds at most one
//     point. The tour is read off by descending the block hierarchy in trace
//     order from the root.
//
// Complexity:
//
//   - Build:       O(N·L) time and memory for L levels (about log2 of the
//     ratio of the bounding box to the closest pair distance).
//   - ExtractTour: O(N·L).
//
// Errors:
//
//   - ErrResourceExhausted: more than Options.MaxLevels levels were needed.
//   - ErrInvalidTour:       the extracted sequence is not a permutation.
//   - ErrInvalidOptions:    MaxLevels outside [1, MaxLevelsLimit].
//   - cellgraph.ErrNoRoute, cellgraph.ErrDegenerateBlock: inconsistent routing.
//
// A Context belongs to one annealing chain; Builder values are stateless and
// may be shared.
package renorm
