package cellgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPaths_Counts pins the number of simple walks and cycles.
func TestPaths_Counts(t *testing.T) {
	total := 0
	for s := BorderTL; s <= BorderBR; s++ {
		for e := BorderTL; e <= BorderBR; e++ {
			total += len(paths(s, e, 0))
		}
	}
	require.Equal(t, 1348, total)
	require.Empty(t, paths(BorderTL, BorderTL, 0))
	require.Len(t, paths(BorderT, BorderT, 0), 30)
}

// TestPaths_Trivial returns the zero-length walk when start equals end inside a recursion.
func TestPaths_Trivial(t *testing.T) {
	w := paths(CellTL, CellTL, 1<<uint(BorderT))
	require.Len(t, w, 1)
	require.Equal(t, []Node{CellTL}, w[0].trace)
	require.Zero(t, w[0].length)
}

// TestPaths_Simple checks that no walk repeats a graph node and crosses sit between cells.
func TestPaths_Simple(t *testing.T) {
	for _, w := range paths(BorderL, BorderBR, 0) {
		seen := map[Node]bool{}
		for i, n := range w.trace {
			if n.IsCross() {
				require.True(t, w.trace[i-1].IsCell())
				require.True(t, w.trace[i+1].IsCell())
				require.Equal(t, n, Crossing(w.trace[i-1], w.trace[i+1]))
				continue
			}
			require.False(t, seen[n], "%v repeats %s", w.trace, n)
			seen[n] = true
		}
	}
}
