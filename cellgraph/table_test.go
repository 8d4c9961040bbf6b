package cellgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/renormtsp/cellgraph"
)

func newTable(t *testing.T) *cellgraph.Table {
	t.Helper()
	tbl, err := cellgraph.NewTable()
	require.NoError(t, err)
	return tbl
}

var corners = []cellgraph.Node{cellgraph.BorderTL, cellgraph.BorderTR, cellgraph.BorderBL, cellgraph.BorderBR}

func isCorner(n cellgraph.Node) bool {
	for _, c := range corners {
		if c == n {
			return true
		}
	}
	return false
}

// TestTable_Coverage expects every triple populated except the 64 corner-to-
// same-corner entries: a corner touches a single cell, so without
// border-to-border edges no cycle can leave and re-enter it.
func TestTable_Coverage(t *testing.T) {
	tbl := newTable(t)
	require.Equal(t, 8*8*16-4*16, tbl.Coverage())

	for s := cellgraph.BorderTL; s <= cellgraph.BorderBR; s++ {
		for e := cellgraph.BorderTL; e <= cellgraph.BorderBR; e++ {
			for m := cellgraph.Mask(0); m <= cellgraph.MaskAll; m++ {
				_, err := tbl.Lookup(s, e, m)
				if s == e && isCorner(s) {
					require.ErrorIs(t, err, cellgraph.ErrNoRoute, "%s→%s mask %04b", s, e, m)
					continue
				}
				require.NoError(t, err, "%s→%s mask %04b", s, e, m)
			}
		}
	}
}

// TestTable_EntriesAreValid checks endpoints, visited cells and child border points of every entry.
func TestTable_EntriesAreValid(t *testing.T) {
	tbl := newTable(t)
	for s := cellgraph.BorderTL; s <= cellgraph.BorderBR; s++ {
		for e := cellgraph.BorderTL; e <= cellgraph.BorderBR; e++ {
			if s == e && isCorner(s) {
				continue
			}
			for m := cellgraph.Mask(0); m <= cellgraph.MaskAll; m++ {
				r, err := tbl.Lookup(s, e, m)
				require.NoError(t, err, "%s→%s mask %d", s, e, m)
				require.Equal(t, s, r.Trace[0])
				require.Equal(t, e, r.Trace[len(r.Trace)-1])
				require.True(t, r.Visits.Contains(m))
				require.Greater(t, r.Length, 0.0)
				for q := 0; q < 4; q++ {
					if !r.Visits.Has(q) {
						require.Equal(t, cellgraph.NoNode, r.Start[q])
						continue
					}
					require.True(t, r.Start[q].IsBorder())
					require.True(t, r.End[q].IsBorder())
					// A child block is never asked to loop from a corner.
					if r.Start[q] == r.End[q] {
						require.False(t, isCorner(r.Start[q]))
					}
				}
			}
		}
	}
}

// TestTable_Lookup pins a few shortest walks.
func TestTable_Lookup(t *testing.T) {
	tbl := newTable(t)

	r, err := tbl.Lookup(cellgraph.BorderL, cellgraph.BorderR, 0)
	require.NoError(t, err)
	require.Equal(t, []cellgraph.Node{
		cellgraph.BorderL, cellgraph.CellTL, cellgraph.CrossT, cellgraph.CellTR, cellgraph.BorderR,
	}, r.Trace)
	require.InDelta(t, 2.414, r.Length, 1e-9)
	require.Equal(t, cellgraph.BorderBL, r.Start[0])
	require.Equal(t, cellgraph.BorderR, r.End[0])
	require.Equal(t, cellgraph.BorderL, r.Start[1])
	require.Equal(t, cellgraph.BorderBR, r.End[1])

	r, err = tbl.Lookup(cellgraph.BorderT, cellgraph.BorderB, cellgraph.MaskBL)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, r.Cells())
	require.Equal(t, cellgraph.MaskTL|cellgraph.MaskBL, r.Visits)

	r, err = tbl.Lookup(cellgraph.BorderTL, cellgraph.BorderBR, cellgraph.MaskAll)
	require.NoError(t, err)
	require.Equal(t, 4, r.Visits.Count())
	require.InDelta(t, 4.828, r.Length, 1e-9)

	r, err = tbl.Lookup(cellgraph.BorderT, cellgraph.BorderT, cellgraph.MaskAll)
	require.NoError(t, err)
	require.InDelta(t, 4.414, r.Length, 1e-9)
	require.Equal(t, cellgraph.BorderT, r.Trace[0])
	require.Equal(t, cellgraph.BorderT, r.Trace[len(r.Trace)-1])
}

// TestTable_LookupRejectsInteriorNodes refuses cells and cross points as endpoints.
func TestTable_LookupRejectsInteriorNodes(t *testing.T) {
	tbl := newTable(t)
	_, err := tbl.Lookup(cellgraph.CellTL, cellgraph.BorderT, 0)
	require.ErrorIs(t, err, cellgraph.ErrNoRoute)
	_, err = tbl.Lookup(cellgraph.BorderT, cellgraph.CrossC, 0)
	require.ErrorIs(t, err, cellgraph.ErrNoRoute)
	_, err = tbl.Lookup(cellgraph.BorderT, cellgraph.BorderB, 16)
	require.ErrorIs(t, err, cellgraph.ErrNoRoute)
}

// TestTable_Deterministic builds twice and compares every entry.
func TestTable_Deterministic(t *testing.T) {
	a, b := newTable(t), newTable(t)
	for s := cellgraph.BorderTL; s <= cellgraph.BorderBR; s++ {
		for e := cellgraph.BorderTL; e <= cellgraph.BorderBR; e++ {
			for m := cellgraph.Mask(0); m <= cellgraph.MaskAll; m++ {
				ra, errA := a.Lookup(s, e, m)
				rb, errB := b.Lookup(s, e, m)
				require.Equal(t, errA == nil, errB == nil)
				if errA == nil {
					require.Equal(t, ra.Trace, rb.Trace)
				}
			}
		}
	}
}

// TestShared returns the same table on every call.
func TestShared(t *testing.T) {
	a, err := cellgraph.Shared()
	require.NoError(t, err)
	b, err := cellgraph.Shared()
	require.NoError(t, err)
	require.Same(t, a, b)
}
