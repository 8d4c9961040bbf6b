package renorm

import (
	"fmt"

	"github.com/katalvlaran/renormtsp/grid"
	"github.com/katalvlaran/renormtsp/tsp"
)

// ExtractTour reads the visiting order of n points off h: starting at the
// root, each block's cells are taken in trace order, descending into the
// child block where one exists, and emitting the point of a One cell at the
// terminal level. The order equals the parent traces concatenated level by
// level, so the cycle is the one the block-to-block navigation would follow.
//
// Complexity: O(blocks in h).
func ExtractTour(h *Hierarchy, n int) ([]int, error) {
	if h == nil || len(h.Levels) == 0 {
		return nil, fmt.Errorf("%w: empty hierarchy", ErrInvalidTour)
	}
	var (
		tour = make([]int, 0, n)
		last = len(h.Levels) - 1
		term = h.Levels[last].Grid
		walk func(level int, at grid.Coord)
	)
	walk = func(level int, at grid.Coord) {
		blk, ok := h.Levels[level].Blocks[at]
		if !ok {
			return
		}
		for _, node := range blk.Route.Trace {
			if !node.IsCell() {
				continue
			}
			q := node.Quadrant()
			c := grid.Coord{X: 2*at.X + q%2, Y: 2*at.Y + q/2}
			if level < last {
				walk(level+1, c)
				continue
			}
			if cell := term.At(c.X, c.Y); cell.State == grid.One {
				tour = append(tour, cell.Index)
			}
		}
	}
	walk(0, grid.Coord{})

	if err := tsp.ValidatePermutation(tour, n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTour, err)
	}

	return tour, nil
}
