// Package tsp - tour utilities.
//
// This file contains compact utilities that operate purely on cyclic tour
// structure (index sequences), without depending on coordinates.
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - RotateToStart: cyclic shift so the tour begins at a given index.
//   - ReverseInPlace: reverse the visiting direction.
//   - EqualCyclic: equality under rotation and, optionally, reversal.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It does not allocate besides a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) == 0 {
		return ErrEmptyTour
	}
	if len(perm) != n {
		return ErrNotPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrIndexOutOfRange
		}
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// RotateToStart returns a fresh copy of the cyclic tour shifted so that
// out[0] == start.
//
// Pre-conditions:
//   - start must appear in tour, otherwise ErrIndexOutOfRange.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrEmptyTour
	}

	var (
		n     = len(tour)
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrIndexOutOfRange
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// ReverseInPlace reverses the visiting direction of tour.
//
// Complexity: O(n) time, O(1) space.
func ReverseInPlace(tour []int) {
	var (
		i = 0
		k = len(tour) - 1
	)
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// EqualCyclic reports whether a and b describe the same cycle up to the
// starting offset. When allowReverse is true, b traversed backwards also
// counts as equal.
//
// Complexity: O(n) time.
func EqualCyclic(a, b []int, allowReverse bool) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	var (
		n = len(a)
		p = -1
		j int
	)
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	// Same direction.
	var (
		i       int
		forward = true
	)
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
			break
		}
	}
	if forward || !allowReverse {
		return forward
	}

	// Opposite direction.
	for i = 0; i < n; i++ {
		if a[i] != b[((p-i)%n+n)%n] {
			return false
		}
	}

	return true
}
