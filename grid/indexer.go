package grid

import (
	"math"

	"github.com/paulmach/orb"
)

// Indexer holds a point set and the rotation of it last asked for.
// The cache starts invalid, so the first Rotate always computes, even for 0.
type Indexer struct {
	points []orb.Point

	valid   bool
	angle   float64
	rotated []orb.Point
	bound   orb.Bound
}

// NewIndexer copies points into a new Indexer.
// Complexity: O(N).
func NewIndexer(points []orb.Point) *Indexer {
	src := make([]orb.Point, len(points))
	copy(src, points)

	return &Indexer{
		points:  src,
		rotated: make([]orb.Point, len(points)),
	}
}

// Len returns the number of points.
func (ix *Indexer) Len() int { return len(ix.points) }

// Points returns the source points. Callers must not modify the slice.
func (ix *Indexer) Points() []orb.Point { return ix.points }

// Rotate returns the points rotated by angle and their padded bounding box.
// The returned slice is owned by the Indexer and is overwritten by the next
// Rotate call with a different angle.
//
// Complexity: O(1) when angle equals the cached angle, O(N) otherwise.
func (ix *Indexer) Rotate(angle float64) ([]orb.Point, orb.Bound, error) {
	if math.IsNaN(angle) {
		return nil, orb.Bound{}, ErrInvalidRotation
	}
	if ix.valid && ix.angle == angle {
		return ix.rotated, ix.bound, nil
	}

	var (
		sin, cos = math.Sincos(angle)
		i        int
		p        orb.Point
	)
	for i, p = range ix.points {
		ix.rotated[i] = orb.Point{
			p[0]*cos + p[1]*sin,
			-p[0]*sin + p[1]*cos,
		}
	}
	ix.bound = paddedBound(ix.rotated)
	ix.angle = angle
	ix.valid = true

	return ix.rotated, ix.bound, nil
}

// Invalidate drops the cached rotation.
func (ix *Indexer) Invalidate() { ix.valid = false }

// paddedBound pads the tight box of pts by MarginRatio of its larger extent.
func paddedBound(pts []orb.Point) orb.Bound {
	if len(pts) == 0 {
		return orb.Bound{}
	}
	b := orb.MultiPoint(pts).Bound()
	ext := math.Max(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1])
	if ext == 0 {
		return b.Pad(degenerateMargin)
	}

	return b.Pad(MarginRatio * ext)
}
