package renorm

import (
	"context"

	"github.com/katalvlaran/renormtsp/tsp"
)

// Solution is one renormalization tour.
type Solution struct {
	Tour   []int
	Length float64
	Levels int
}

// Solve builds the hierarchy at rc.Rotation, extracts the tour and scores it.
// A single point yields the tour [0] of length 0 without building.
func (b *Builder) Solve(ctx context.Context, rc *Context) (Solution, error) {
	n := rc.Len()
	if n == 1 {
		return Solution{Tour: []int{0}}, nil
	}

	h, err := b.Build(ctx, rc)
	if err != nil {
		return Solution{}, err
	}
	tour, err := ExtractTour(h, n)
	if err != nil {
		return Solution{}, err
	}
	length, err := tsp.TourLength(tour, rc.Points())
	if err != nil {
		return Solution{}, err
	}

	return Solution{Tour: tour, Length: length, Levels: h.Depth()}, nil
}
