package cellgraph

// Edge weights of the block graph.
const (
	WeightBorder   = 0.707
	WeightAxis     = 1.0
	WeightDiagonal = 1.414
)

var (
	weights   [graphNodes][graphNodes]float64
	neighbors [graphNodes][]Node
)

func init() {
	var (
		a, b   Node
		dx, dy int
	)
	for a = 0; a < graphNodes; a++ {
		for b = 0; b < graphNodes; b++ {
			if a == b {
				continue
			}
			dx = abs(position[a][0] - position[b][0])
			dy = abs(position[a][1] - position[b][1])
			switch {
			case a.IsCell() && b.IsCell() && dx == 2 && dy == 2:
				weights[a][b] = WeightDiagonal
			case a.IsCell() && b.IsCell():
				weights[a][b] = WeightAxis
			case a.IsCell() != b.IsCell() && dx == 1 && dy == 1:
				weights[a][b] = WeightBorder
			}
		}
	}
	for a = 0; a < graphNodes; a++ {
		for b = 0; b < graphNodes; b++ {
			if weights[a][b] != 0 {
				neighbors[a] = append(neighbors[a], b)
			}
		}
	}
}

// Weight returns the weight of edge a–b, or 0 if there is none.
func Weight(a, b Node) float64 {
	if a < 0 || b < 0 || int(a) >= graphNodes || int(b) >= graphNodes {
		return 0
	}

	return weights[a][b]
}

// Neighbors returns the nodes adjacent to n in ascending order.
// The returned slice must not be modified.
func Neighbors(n Node) []Node {
	if n < 0 || int(n) >= graphNodes {
		return nil
	}

	return neighbors[n]
}

// Crossing returns the cross point an edge a–b passes through, or NoNode.
// The opposite border pairs T–B and L–R report CrossC even though they are
// not edges of the graph.
func Crossing(a, b Node) Node {
	if a > b {
		a, b = b, a
	}
	switch {
	case a == CellTL && b == CellTR:
		return CrossT
	case a == CellTL && b == CellBL:
		return CrossL
	case a == CellTL && b == CellBR, a == CellTR && b == CellBL:
		return CrossC
	case a == CellTR && b == CellBR:
		return CrossR
	case a == CellBL && b == CellBR:
		return CrossB
	case a == BorderT && b == BorderB, a == BorderL && b == BorderR:
		return CrossC
	}

	return NoNode
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
