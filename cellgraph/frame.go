package cellgraph

// childBorder maps a position relative to a quadrant's own frame, in
// quarter units of the parent block, to the child border point there.
var childBorder = map[[2]int]Node{
	{0, 0}: BorderTL, {1, 0}: BorderT, {2, 0}: BorderTR,
	{0, 1}: BorderL, {2, 1}: BorderR,
	{0, 2}: BorderBL, {1, 2}: BorderB, {2, 2}: BorderBR,
}

// frame[q][n] is node n of the parent block seen as a border point of the
// child block occupying quadrant q.
var frame [cellCount][NodeCount]Node

func init() {
	var (
		q, n   int
		qx, qy int
		p      [2]int
	)
	for q = 0; q < cellCount; q++ {
		qx, qy = q%2, q/2
		for n = 0; n < NodeCount; n++ {
			p = [2]int{position[n][0] - 2*qx, position[n][1] - 2*qy}
			if c, ok := childBorder[p]; ok {
				frame[q][n] = c
			} else {
				frame[q][n] = NoNode
			}
		}
	}
}

// ToChild converts parent node n into the border point of the child block in
// quadrant q. It returns NoNode if n does not lie on that quadrant's boundary.
func ToChild(q int, n Node) Node {
	if q < 0 || q >= cellCount || n < 0 || int(n) >= NodeCount {
		return NoNode
	}

	return frame[q][n]
}
