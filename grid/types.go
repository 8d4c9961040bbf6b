package grid

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidRotation indicates a NaN rotation angle.
	ErrInvalidRotation = errors.New("grid: rotation angle is NaN")
	// ErrBadDimensions indicates non-positive or odd grid dimensions.
	ErrBadDimensions = errors.New("grid: dimensions must be positive and even")
)

// MarginRatio is the padding added on every side of the rotated bounding box,
// relative to its larger extent.
const MarginRatio = 0.05

// degenerateMargin pads the box of a point set with zero extent.
const degenerateMargin = 1.0

// State is the occupancy of a single cell.
type State uint8

const (
	// Empty cells hold no point.
	Empty State = iota
	// One cells hold exactly one point, identified by Cell.Index.
	One
	// Many cells hold two or more points. Once Many, a cell stays Many.
	Many
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case One:
		return "One"
	case Many:
		return "Many"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Cell is the content of one grid cell. Index is meaningful only for One.
type Cell struct {
	State State
	Index int
}

// Coord addresses a cell (or a block) by column X and row Y.
type Coord struct {
	X, Y int
}

// Grid is an immutable length×height partition of a padded bounding box.
// Only non-empty cells are stored.
type Grid struct {
	Length, Height int
	Bound          orb.Bound

	cells map[Coord]Cell
	many  int
}
