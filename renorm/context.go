package renorm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/renormtsp/cellgraph"
	"github.com/katalvlaran/renormtsp/grid"
	"github.com/katalvlaran/renormtsp/tsp"
)

var (
	// ErrResourceExhausted indicates refinement beyond Options.MaxLevels.
	ErrResourceExhausted = errors.New("renorm: refinement level limit exceeded")
	// ErrInvalidTour indicates an extracted sequence that is not a permutation.
	ErrInvalidTour = errors.New("renorm: extracted tour is not a permutation")
	// ErrInvalidOptions indicates out-of-range builder options.
	ErrInvalidOptions = errors.New("renorm: invalid options")
)

const (
	// DefaultMaxLevels bounds refinement when Options.MaxLevels is zero.
	DefaultMaxLevels = 40
	// MaxLevelsLimit keeps grid dimensions 2^(level+1) inside an int.
	MaxLevelsLimit = 60
)

// Options configures a Builder.
type Options struct {
	// MaxLevels is the deepest refinement level tried before giving up.
	MaxLevels int
}

// DefaultOptions returns Options{MaxLevels: DefaultMaxLevels}.
func DefaultOptions() Options {
	return Options{MaxLevels: DefaultMaxLevels}
}

func (o Options) validate() error {
	if o.MaxLevels < 1 || o.MaxLevels > MaxLevelsLimit {
		return fmt.Errorf("%w: max levels %d not in [1, %d]", ErrInvalidOptions, o.MaxLevels, MaxLevelsLimit)
	}
	return nil
}

// Context is the per-chain state a build reads: the point indexer with its
// rotation cache, the rotation to build at, and the shared route table.
type Context struct {
	Indexer  *grid.Indexer
	Rotation float64
	Table    *cellgraph.Table
}

// NewContext validates points and returns a Context at rotation 0.
// A nil table selects cellgraph.Shared.
func NewContext(points []tsp.Point, table *cellgraph.Table) (*Context, error) {
	if err := tsp.ValidatePoints(points); err != nil {
		return nil, err
	}
	if table == nil {
		var err error
		if table, err = cellgraph.Shared(); err != nil {
			return nil, err
		}
	}

	return &Context{
		Indexer: grid.NewIndexer(points),
		Table:   table,
	}, nil
}

// Len returns the number of points.
func (rc *Context) Len() int { return rc.Indexer.Len() }

// Points returns the source points.
func (rc *Context) Points() []tsp.Point { return rc.Indexer.Points() }
