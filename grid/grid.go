package grid

import (
	"math"
	"sort"
)

// Build classifies the points rotated by angle into a length×height grid
// spanning the padded bounding box.
//
// A point lying exactly on an interior cell boundary belongs to the lower
// cell; indices are clamped into [0, length) × [0, height).
//
// Complexity: O(N) time, O(occupied cells) memory.
func (ix *Indexer) Build(angle float64, length, height int) (*Grid, error) {
	if length <= 0 || height <= 0 || length%2 != 0 || height%2 != 0 {
		return nil, ErrBadDimensions
	}
	pts, bound, err := ix.Rotate(angle)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		Length: length,
		Height: height,
		Bound:  bound,
		cells:  make(map[Coord]Cell, len(pts)),
	}
	var (
		w = (bound.Max[0] - bound.Min[0]) / float64(length)
		h = (bound.Max[1] - bound.Min[1]) / float64(height)
		c Coord
	)
	for i, p := range pts {
		c = Coord{
			X: cellIndex(p[0], bound.Min[0], w, length),
			Y: cellIndex(p[1], bound.Min[1], h, height),
		}
		g.add(c, i)
	}

	return g, nil
}

// add records point i in cell c, promoting the state Empty → One → Many.
func (g *Grid) add(c Coord, i int) {
	cell, ok := g.cells[c]
	switch {
	case !ok:
		g.cells[c] = Cell{State: One, Index: i}
	case cell.State == One:
		g.cells[c] = Cell{State: Many, Index: -1}
		g.many++
	}
}

// cellIndex maps coordinate v onto one of n cells of the given size starting at lo.
func cellIndex(v, lo, size float64, n int) int {
	f := (v - lo) / size
	idx := int(math.Floor(f))
	if idx > 0 && float64(idx) == f {
		idx--
	}
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}

	return idx
}

// At returns the cell at column x, row y. Out-of-range cells are Empty.
func (g *Grid) At(x, y int) Cell {
	if c, ok := g.cells[Coord{x, y}]; ok {
		return c
	}

	return Cell{State: Empty, Index: -1}
}

// Bitmask returns the occupancy of block (bx, by), the cells
// (2bx..2bx+1, 2by..2by+1). Quadrant q = dx + 2·dy sets bit q:
// TL=1, TR=2, BL=4, BR=8.
func (g *Grid) Bitmask(bx, by int) uint8 {
	var (
		mask   uint8
		dx, dy int
	)
	for dy = 0; dy < 2; dy++ {
		for dx = 0; dx < 2; dx++ {
			if g.At(2*bx+dx, 2*by+dy).State != Empty {
				mask |= 1 << uint(dx+2*dy)
			}
		}
	}

	return mask
}

// Unity reports whether no cell holds more than one point.
func (g *Grid) Unity() bool { return g.many == 0 }

// Occupied returns the number of non-empty cells.
func (g *Grid) Occupied() int { return len(g.cells) }

// CellSize returns the width and height of one cell.
func (g *Grid) CellSize() (w, h float64) {
	return (g.Bound.Max[0] - g.Bound.Min[0]) / float64(g.Length),
		(g.Bound.Max[1] - g.Bound.Min[1]) / float64(g.Height)
}

// Coords returns the coordinates of all non-empty cells, row-major.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}
