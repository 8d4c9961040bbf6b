package cellgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRoute indicates a lookup for which no walk exists.
	ErrNoRoute = errors.New("cellgraph: no route for boundary pair and cell mask")
	// ErrDegenerateBlock indicates a block with no cell to visit.
	ErrDegenerateBlock = errors.New("cellgraph: block has no occupied cell")
	// ErrInconsistentRoute indicates a trace that enters one quadrant twice.
	ErrInconsistentRoute = errors.New("cellgraph: quadrant entered more than once")
)

// Node identifies one of the 17 points of a block.
type Node int8

// NoNode marks an absent node.
const NoNode Node = -1

const (
	CellTL Node = iota
	CellTR
	CellBL
	CellBR

	BorderTL
	BorderT
	BorderTR
	BorderL
	BorderR
	BorderBL
	BorderB
	BorderBR

	CrossT
	CrossL
	CrossC
	CrossR
	CrossB

	// NodeCount is the number of node identities.
	NodeCount = int(iota)
)

const (
	cellCount   = 4
	borderCount = 8
	// graphNodes are the nodes that carry edges: cells and borders.
	graphNodes = cellCount + borderCount
)

var nodeNames = [NodeCount]string{
	"CellTL", "CellTR", "CellBL", "CellBR",
	"BorderTL", "BorderT", "BorderTR", "BorderL", "BorderR", "BorderBL", "BorderB", "BorderBR",
	"CrossT", "CrossL", "CrossC", "CrossR", "CrossB",
}

// String implements fmt.Stringer.
func (n Node) String() string {
	if n >= 0 && int(n) < NodeCount {
		return nodeNames[n]
	}
	if n == NoNode {
		return "NoNode"
	}

	return fmt.Sprintf("Node(%d)", int8(n))
}

// IsCell reports whether n is one of the four cell centres.
func (n Node) IsCell() bool { return n >= CellTL && n <= CellBR }

// IsBorder reports whether n is one of the eight border points.
func (n Node) IsBorder() bool { return n >= BorderTL && n <= BorderBR }

// IsCross reports whether n is one of the five interior cross points.
func (n Node) IsCross() bool { return n >= CrossT && n <= CrossB }

// Quadrant returns the quadrant index q = qx + 2·qy of a cell node
// (TL=0, TR=1, BL=2, BR=3), or -1 for any other node.
func (n Node) Quadrant() int {
	if !n.IsCell() {
		return -1
	}

	return int(n - CellTL)
}

// CellOf returns the cell node of quadrant q.
func CellOf(q int) Node { return CellTL + Node(q) }

// position is the quarter-unit coordinate of every node.
var position = [NodeCount][2]int{
	CellTL: {1, 1}, CellTR: {3, 1}, CellBL: {1, 3}, CellBR: {3, 3},

	BorderTL: {0, 0}, BorderT: {2, 0}, BorderTR: {4, 0},
	BorderL: {0, 2}, BorderR: {4, 2},
	BorderBL: {0, 4}, BorderB: {2, 4}, BorderBR: {4, 4},

	CrossT: {2, 1}, CrossL: {1, 2}, CrossC: {2, 2}, CrossR: {3, 2}, CrossB: {2, 3},
}
