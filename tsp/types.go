package tsp

import (
	"errors"

	"github.com/paulmach/orb"
)

// Point is a planar (x, y) coordinate. Points are identified by their index
// in the slice handed to the solver.
type Point = orb.Point

// Sentinel errors for tour and point operations.
var (
	// ErrEmptyTour is returned when a tour has no elements.
	ErrEmptyTour = errors.New("tsp: tour is empty")

	// ErrIndexOutOfRange indicates a tour entry outside [0..n-1].
	ErrIndexOutOfRange = errors.New("tsp: tour index out of range")

	// ErrNotPermutation indicates a tour that repeats or omits a point.
	ErrNotPermutation = errors.New("tsp: tour is not a permutation")

	// ErrNoPoints is returned when a point set is empty.
	ErrNoPoints = errors.New("tsp: point set is empty")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("tsp: point coordinate is not finite")

	// ErrCoincidentPoints indicates two points sharing the same coordinates;
	// no grid refinement can ever separate them.
	ErrCoincidentPoints = errors.New("tsp: coincident points")
)
