package renorm

import (
	"context"
	"fmt"

	"github.com/katalvlaran/renormtsp/cellgraph"
	"github.com/katalvlaran/renormtsp/grid"
)

// Builder refines grids into a block hierarchy.
type Builder struct {
	opts Options
}

// NewBuilder returns a Builder. A zero MaxLevels selects DefaultMaxLevels.
func NewBuilder(opts Options) (*Builder, error) {
	if opts.MaxLevels == 0 {
		opts.MaxLevels = DefaultMaxLevels
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Builder{opts: opts}, nil
}

// Build refines the grid of rc at rc.Rotation until every cell holds at most
// one point. The context is checked before each level.
//
// Contract:
//   - rc.Indexer must hold at least one point.
//   - the returned hierarchy has at least one level and a unity terminal grid.
func (b *Builder) Build(ctx context.Context, rc *Context) (*Hierarchy, error) {
	g, err := rc.Indexer.Build(rc.Rotation, 2, 2)
	if err != nil {
		return nil, err
	}
	mask := cellgraph.Mask(g.Bitmask(0, 0))
	root, err := cellgraph.BasicRoute(mask)
	if err != nil {
		return nil, err
	}
	if !g.Unity() && mask.Count() == 1 {
		return nil, fmt.Errorf("%w: all points in one quadrant of the root block", cellgraph.ErrDegenerateBlock)
	}

	h := &Hierarchy{
		Rotation: rc.Rotation,
		Levels: []Level{{
			Grid:   g,
			Blocks: map[grid.Coord]*Block{{}: {Route: root, Start: cellgraph.NoNode, End: cellgraph.NoNode}},
		}},
	}

	var (
		level int
		size  = 2
		next  Level
	)
	for !g.Unity() {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		level++
		if level > b.opts.MaxLevels {
			return nil, fmt.Errorf("%w: %d levels at rotation %g", ErrResourceExhausted, b.opts.MaxLevels, rc.Rotation)
		}
		size *= 2
		if next, err = refine(rc, h.Levels[level-1], size); err != nil {
			return nil, fmt.Errorf("renorm: level %d: %w", level, err)
		}
		h.Levels = append(h.Levels, next)
		g = next.Grid
	}

	return h, nil
}

// refine builds the next level below parent on a size×size grid.
func refine(rc *Context, parent Level, size int) (Level, error) {
	g, err := rc.Indexer.Build(rc.Rotation, size, size)
	if err != nil {
		return Level{}, err
	}
	out := Level{
		Grid:   g,
		Blocks: make(map[grid.Coord]*Block, len(parent.Blocks)*2),
	}

	var (
		q     int
		c     grid.Coord
		route *cellgraph.Route
	)
	for at, blk := range parent.Blocks {
		for _, n := range blk.Route.Trace {
			if !n.IsCell() {
				continue
			}
			q = n.Quadrant()
			c = grid.Coord{X: 2*at.X + q%2, Y: 2*at.Y + q/2}
			if parent.Grid.At(c.X, c.Y).State == grid.Empty {
				continue
			}
			route, err = rc.Table.Lookup(blk.Route.Start[q], blk.Route.End[q], cellgraph.Mask(g.Bitmask(c.X, c.Y)))
			if err != nil {
				return Level{}, fmt.Errorf("block (%d,%d) quadrant %d: %w", at.X, at.Y, q, err)
			}
			out.Blocks[c] = &Block{Route: route, Start: blk.Route.Start[q], End: blk.Route.End[q]}
		}
	}

	return out, nil
}
