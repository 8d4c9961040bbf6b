// Package cellgraph models one 2×2 block of the renormalization grid as a
// small weighted graph and precomputes, for every pair of boundary points and
// every set of cells to visit, the shortest walk through the block.
//
// Block layout (quarter-unit coordinates in brackets):
//
//	BorderTL[0,0] ──── BorderT[2,0] ──── BorderTR[4,0]
//	     │                  │                  │
//	     │    CellTL[1,1] CrossT[2,1] CellTR[3,1]
//	     │                  │                  │
//	BorderL[0,2]  CrossL[1,2] CrossC[2,2] CrossR[3,2]  BorderR[4,2]
//	     │                  │                  │
//	     │    CellBL[1,3] CrossB[2,3] CellBR[3,3]
//	     │                  │                  │
//	BorderBL[0,4] ──── BorderB[2,4] ──── BorderBR[4,4]
//
// Edges:
//
//   - border ↔ adjacent cell: 0.707
//   - cell ↔ cell, same row or column: 1.0
//   - cell ↔ cell, diagonal: 1.414
//
// Every cell ↔ cell edge passes through a cross point, which is recorded in
// the trace of a Route but is not a graph node. Border ↔ border edges are not
// part of the graph.
//
// Complexity:
//
//   - NewTable: enumerates every simple walk between the 8 border points once;
//     a few milliseconds, done once per process.
//   - Lookup:   O(1).
//
// A Table is immutable after NewTable returns and is safe for concurrent use.
package cellgraph
