// Package grid classifies a planar point set into a regular rotated grid.
//
// What:
//
//   - Indexer owns the source points and caches their rotation by the last
//     requested angle together with the padded bounding box.
//   - Build partitions the padded box into length×height cells and records for
//     every cell whether it is Empty, holds exactly One point, or Many.
//   - Bitmask reports which quadrants of a 2×2 block are occupied; Unity
//     reports whether every point has been isolated in its own cell.
//
// Why:
//
//   - The renormalization builder refines a rotated grid level by level until
//     each cell holds at most one point; angle changes between consecutive
//     builds are rare compared to the builds themselves.
//
// Complexity:
//
//   - Rotate: O(N) on a cache miss, O(1) on a hit.
//   - Build:  O(N) time, O(occupied cells) memory (the grid is sparse).
//
// Errors:
//
//   - ErrInvalidRotation: the requested angle is NaN.
//   - ErrBadDimensions:   length or height is non-positive or odd.
//
// An Indexer is not safe for concurrent use; give each annealing chain its own.
package grid
