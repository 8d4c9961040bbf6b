package grid_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/renormtsp/grid"
)

func squarePoints() []orb.Point {
	return []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// TestBuild_BadDimensions rejects zero, negative and odd sizes.
func TestBuild_BadDimensions(t *testing.T) {
	ix := grid.NewIndexer(squarePoints())
	for _, d := range [][2]int{{0, 2}, {2, 0}, {-2, 2}, {3, 2}, {2, 5}} {
		_, err := ix.Build(0, d[0], d[1])
		require.ErrorIs(t, err, grid.ErrBadDimensions, "dims %v", d)
	}
}

// TestBuild_NaNAngle rejects NaN rotations.
func TestBuild_NaNAngle(t *testing.T) {
	ix := grid.NewIndexer(squarePoints())
	_, err := ix.Build(math.NaN(), 2, 2)
	require.ErrorIs(t, err, grid.ErrInvalidRotation)
}

// TestBuild_SquareUnity places each corner of the unit square in its own quadrant.
func TestBuild_SquareUnity(t *testing.T) {
	ix := grid.NewIndexer(squarePoints())
	g, err := ix.Build(0, 2, 2)
	require.NoError(t, err)
	require.True(t, g.Unity())
	require.Equal(t, 4, g.Occupied())
	require.Equal(t, uint8(0xF), g.Bitmask(0, 0))

	require.Equal(t, grid.Cell{State: grid.One, Index: 0}, g.At(0, 0))
	require.Equal(t, grid.Cell{State: grid.One, Index: 1}, g.At(1, 0))
	require.Equal(t, grid.Cell{State: grid.One, Index: 2}, g.At(1, 1))
	require.Equal(t, grid.Cell{State: grid.One, Index: 3}, g.At(0, 1))
}

// TestBuild_ManyIsSticky keeps a cell Many once two points share it.
func TestBuild_ManyIsSticky(t *testing.T) {
	pts := []orb.Point{{0, 0}, {0.1, 0.1}, {0.05, 0.02}, {10, 10}}
	ix := grid.NewIndexer(pts)
	g, err := ix.Build(0, 2, 2)
	require.NoError(t, err)
	require.False(t, g.Unity())
	require.Equal(t, grid.Many, g.At(0, 0).State)
	require.Equal(t, grid.Cell{State: grid.One, Index: 3}, g.At(1, 1))
	require.Equal(t, grid.Empty, g.At(1, 0).State)
	require.Equal(t, uint8(1|8), g.Bitmask(0, 0))
}

// TestBuild_SinglePoint pads a zero-extent box so the point lands in a valid cell.
func TestBuild_SinglePoint(t *testing.T) {
	ix := grid.NewIndexer([]orb.Point{{3, 4}})
	g, err := ix.Build(0, 2, 2)
	require.NoError(t, err)
	require.True(t, g.Unity())
	require.Equal(t, 1, g.Occupied())
	require.InDelta(t, 2.0, g.Bound.Max[0]-g.Bound.Min[0], 1e-12)
}

// TestRotate_Cache reuses the rotation for an unchanged angle and recomputes otherwise.
func TestRotate_Cache(t *testing.T) {
	ix := grid.NewIndexer([]orb.Point{{1, 0}, {0, 1}})

	pts, _, err := ix.Rotate(0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, pts[0][0], 1e-12)

	pts, _, err = ix.Rotate(math.Pi / 2)
	require.NoError(t, err)
	// x' = x·cos + y·sin, y' = −x·sin + y·cos
	require.InDelta(t, 0.0, pts[0][0], 1e-12)
	require.InDelta(t, -1.0, pts[0][1], 1e-12)
	require.InDelta(t, 1.0, pts[1][0], 1e-12)

	again, _, err := ix.Rotate(math.Pi / 2)
	require.NoError(t, err)
	require.Same(t, &pts[0], &again[0])
}

// TestBuild_MarginContainsAllPoints checks every rotated point is inside the padded box.
func TestBuild_MarginContainsAllPoints(t *testing.T) {
	pts := []orb.Point{{-3, 2}, {5, 7}, {0.5, -1}, {2, 2}}
	ix := grid.NewIndexer(pts)
	for _, a := range []float64{0, 0.3, 1.2, 2.9, 5.5} {
		rot, b, err := ix.Rotate(a)
		require.NoError(t, err)
		for _, p := range rot {
			require.True(t, b.Contains(p))
			require.Greater(t, p[0], b.Min[0])
			require.Less(t, p[0], b.Max[0])
		}
	}
}

// TestCoords lists occupied cells in row-major order.
func TestCoords(t *testing.T) {
	ix := grid.NewIndexer(squarePoints())
	g, err := ix.Build(0, 4, 4)
	require.NoError(t, err)
	require.Equal(t, []grid.Coord{{0, 0}, {3, 0}, {0, 3}, {3, 3}}, g.Coords())
}
