package cellgraph

// walk is a simple walk through the block graph; trace includes cross points.
type walk struct {
	trace  []Node
	length float64
}

// paths enumerates every walk from start to end that visits each graph node
// at most once and avoids the nodes in visited.
//
// When start == end and visited is empty the result is every simple cycle
// through start other than the immediate there-and-back along one edge.
// When start == end and visited is not empty the result is the single
// zero-length walk [start].
//
// Walks are produced in a fixed order (neighbours ascending) so callers that
// pick the first minimum are deterministic.
func paths(start, end Node, visited uint16) []walk {
	if start == end && visited == 0 {
		return cycles(start)
	}
	if start == end {
		return []walk{{trace: []Node{start}}}
	}

	var out []walk
	for _, i := range neighbors[end] {
		if visited&(1<<uint(i)) != 0 {
			continue
		}
		for _, w := range paths(start, i, visited|1<<uint(end)) {
			out = append(out, w.extend(i, end))
		}
	}

	return out
}

// cycles returns the simple cycles through s, each listed from s back to s.
func cycles(s Node) []walk {
	var out []walk
	for _, i := range neighbors[s] {
		for _, w := range paths(i, s, 0) {
			// A one-edge walk i→s would reuse the edge s→i.
			if hops(w.trace) < 2 {
				continue
			}
			out = append(out, w.prepend(s, i))
		}
	}

	return out
}

// extend returns w followed by edge from→to.
func (w walk) extend(from, to Node) walk {
	trace := make([]Node, 0, len(w.trace)+2)
	trace = append(trace, w.trace...)
	if c := Crossing(from, to); c != NoNode {
		trace = append(trace, c)
	}
	trace = append(trace, to)

	return walk{trace: trace, length: w.length + weights[from][to]}
}

// prepend returns edge from→to followed by w, which must start at to.
func (w walk) prepend(from, to Node) walk {
	trace := make([]Node, 0, len(w.trace)+2)
	trace = append(trace, from)
	if c := Crossing(from, to); c != NoNode {
		trace = append(trace, c)
	}
	trace = append(trace, w.trace...)

	return walk{trace: trace, length: w.length + weights[from][to]}
}

// hops returns the number of graph edges in trace.
func hops(trace []Node) int {
	n := -1
	for _, v := range trace {
		if !v.IsCross() {
			n++
		}
	}
	return n
}
