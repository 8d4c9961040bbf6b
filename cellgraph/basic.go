package cellgraph

// clockwise is the quadrant order of a basic route: TL, TR, BR, BL.
var clockwise = [cellCount]int{0, 1, 3, 2}

// BasicRoute returns the closed walk over the quadrants in mask, used for the
// root block where no entry or exit point is imposed.
//
// Cells are visited clockwise from the first present one and the walk closes
// through the cross point between the last and the first cell; the trace
// starts and ends at that cross point. Two diagonal cells are joined through
// the next cell clockwise so that neither is entered and left through the
// centre. A single cell yields the one-node route of length 0.
func BasicRoute(mask Mask) (*Route, error) {
	if mask&MaskAll == 0 {
		return nil, ErrDegenerateBlock
	}

	order := make([]int, 0, cellCount)
	for _, q := range clockwise {
		if mask.Has(q) {
			order = append(order, q)
		}
	}
	if len(order) == 2 && Crossing(CellOf(order[0]), CellOf(order[1])) == CrossC {
		order = []int{order[0], clockwiseNext(order[0]), order[1]}
	}
	if len(order) == 1 {
		r := &Route{Trace: []Node{CellOf(order[0])}}
		if err := r.SetBorderPoints(); err != nil {
			return nil, err
		}
		return r, nil
	}

	var (
		r       = &Route{Trace: make([]Node, 0, 2*len(order)+1)}
		first   = CellOf(order[0])
		last    = CellOf(order[len(order)-1])
		closing = Crossing(last, first)
		prev    Node
	)
	r.Trace = append(r.Trace, closing)
	for i, q := range order {
		n := CellOf(q)
		if i > 0 {
			r.Trace = append(r.Trace, Crossing(prev, n))
			r.Length += weights[prev][n]
		}
		r.Trace = append(r.Trace, n)
		prev = n
	}
	r.Trace = append(r.Trace, closing)
	r.Length += weights[last][first]

	if err := r.SetBorderPoints(); err != nil {
		return nil, err
	}

	return r, nil
}

func clockwiseNext(q int) int {
	for i, c := range clockwise {
		if c == q {
			return clockwise[(i+1)%cellCount]
		}
	}
	return q
}
