package cellgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/renormtsp/cellgraph"
)

// TestBasicRoute_AllCells walks the four cells clockwise and closes through CrossL.
func TestBasicRoute_AllCells(t *testing.T) {
	r, err := cellgraph.BasicRoute(cellgraph.MaskAll)
	require.NoError(t, err)
	require.Equal(t, []cellgraph.Node{
		cellgraph.CrossL,
		cellgraph.CellTL, cellgraph.CrossT,
		cellgraph.CellTR, cellgraph.CrossR,
		cellgraph.CellBR, cellgraph.CrossB,
		cellgraph.CellBL,
		cellgraph.CrossL,
	}, r.Trace)
	require.InDelta(t, 4.0, r.Length, 1e-12)
	require.Equal(t, cellgraph.MaskAll, r.Visits)
	require.Equal(t, [4]cellgraph.Node{cellgraph.BorderB, cellgraph.BorderL, cellgraph.BorderR, cellgraph.BorderT}, r.Start)
	require.Equal(t, [4]cellgraph.Node{cellgraph.BorderR, cellgraph.BorderB, cellgraph.BorderT, cellgraph.BorderL}, r.End)
}

// TestBasicRoute_Adjacent loops between two neighbouring cells.
func TestBasicRoute_Adjacent(t *testing.T) {
	r, err := cellgraph.BasicRoute(cellgraph.MaskTL | cellgraph.MaskTR)
	require.NoError(t, err)
	require.Equal(t, []cellgraph.Node{
		cellgraph.CrossT, cellgraph.CellTL, cellgraph.CrossT, cellgraph.CellTR, cellgraph.CrossT,
	}, r.Trace)
	require.InDelta(t, 2.0, r.Length, 1e-12)
	require.Equal(t, r.Start[0], r.End[0])
	require.Equal(t, cellgraph.BorderR, r.Start[0])
}

// TestBasicRoute_Diagonal detours through the next cell clockwise.
func TestBasicRoute_Diagonal(t *testing.T) {
	r, err := cellgraph.BasicRoute(cellgraph.MaskTL | cellgraph.MaskBR)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3}, r.Cells())
	require.InDelta(t, 3.414, r.Length, 1e-9)
	require.Equal(t, cellgraph.BorderBR, r.Start[0])
	require.Equal(t, cellgraph.BorderTL, r.End[3])

	r, err = cellgraph.BasicRoute(cellgraph.MaskTR | cellgraph.MaskBL)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 2}, r.Cells())
}

// TestBasicRoute_Single yields a one-node route without border points.
func TestBasicRoute_Single(t *testing.T) {
	r, err := cellgraph.BasicRoute(cellgraph.MaskBL)
	require.NoError(t, err)
	require.Equal(t, []cellgraph.Node{cellgraph.CellBL}, r.Trace)
	require.Zero(t, r.Length)
	require.Equal(t, cellgraph.MaskBL, r.Visits)
	require.Equal(t, cellgraph.NoNode, r.Start[2])
}

// TestBasicRoute_Empty rejects a block without cells.
func TestBasicRoute_Empty(t *testing.T) {
	_, err := cellgraph.BasicRoute(0)
	require.ErrorIs(t, err, cellgraph.ErrDegenerateBlock)
}

// TestBasicRoute_EveryMask checks the closing point and the absence of corner loops.
func TestBasicRoute_EveryMask(t *testing.T) {
	for m := cellgraph.Mask(1); m <= cellgraph.MaskAll; m++ {
		r, err := cellgraph.BasicRoute(m)
		require.NoError(t, err)
		require.True(t, r.Visits.Contains(m))
		if m.Count() == 1 {
			continue
		}
		require.Equal(t, r.Trace[0], r.Trace[len(r.Trace)-1])
		require.True(t, r.Trace[0].IsCross())
		for q := 0; q < 4; q++ {
			if r.Visits.Has(q) && r.Start[q] == r.End[q] {
				require.False(t, isCorner(r.Start[q]), "mask %d quadrant %d", m, q)
			}
		}
	}
}
