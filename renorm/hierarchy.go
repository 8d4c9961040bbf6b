package renorm

import (
	"github.com/katalvlaran/renormtsp/cellgraph"
	"github.com/katalvlaran/renormtsp/grid"
)

// Block is one routed 2×2 block. Start and End are the border points imposed
// by the parent route; both are NoNode for the root.
type Block struct {
	Route      *cellgraph.Route
	Start, End cellgraph.Node
}

// Level holds the grid at one resolution and the routed blocks over it.
// Block (bx, by) covers grid cells (2bx..2bx+1, 2by..2by+1), which is cell
// (bx, by) of the previous level.
type Level struct {
	Grid   *grid.Grid
	Blocks map[grid.Coord]*Block
}

// Hierarchy is the result of a build. The last level's grid is unity.
type Hierarchy struct {
	Rotation float64
	Levels   []Level
}

// Depth returns the number of levels.
func (h *Hierarchy) Depth() int { return len(h.Levels) }

// Terminal returns the grid of the last level.
func (h *Hierarchy) Terminal() *grid.Grid {
	if len(h.Levels) == 0 {
		return nil
	}
	return h.Levels[len(h.Levels)-1].Grid
}

// Blocks returns the total number of routed blocks across all levels.
func (h *Hierarchy) Blocks() int {
	n := 0
	for _, l := range h.Levels {
		n += len(l.Blocks)
	}
	return n
}
