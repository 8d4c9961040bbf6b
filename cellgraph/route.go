package cellgraph

import (
	"fmt"
	"strings"
)

// Route is a walk through one block.
//
// Trace lists the nodes in walking order including cross points. Visits is
// the set of quadrants whose cell appears in Trace. For every visited
// quadrant q (except in a single-node route), Start[q] and End[q] are the
// boundary points where the walk enters and leaves that cell, expressed as
// border points of the child block in quadrant q; other entries are NoNode.
//
// Routes returned by a Table or BasicRoute are shared and must not be
// modified.
type Route struct {
	Trace  []Node
	Length float64
	Visits Mask
	Start  [cellCount]Node
	End    [cellCount]Node
}

// Cells returns the quadrant indices of the cells in trace order.
func (r *Route) Cells() []int {
	out := make([]int, 0, cellCount)
	for _, n := range r.Trace {
		if n.IsCell() {
			out = append(out, n.Quadrant())
		}
	}

	return out
}

// String renders the trace as "BorderT>CellTL>CrossT>CellTR>BorderT".
func (r *Route) String() string {
	var sb strings.Builder
	for i, n := range r.Trace {
		if i > 0 {
			sb.WriteByte('>')
		}
		sb.WriteString(n.String())
	}
	fmt.Fprintf(&sb, " (%.3f)", r.Length)

	return sb.String()
}

// SetBorderPoints derives Visits, Start and End from Trace.
//
// Traces alternate between boundary points and cells, so each visited cell
// has exactly one predecessor and successor in the trace.
func (r *Route) SetBorderPoints() error {
	var (
		i, q       int
		prev, next Node
	)
	r.Visits = 0
	for q = 0; q < cellCount; q++ {
		r.Start[q], r.End[q] = NoNode, NoNode
	}
	for i = range r.Trace {
		if !r.Trace[i].IsCell() {
			continue
		}
		q = r.Trace[i].Quadrant()
		if r.Visits.Has(q) {
			return fmt.Errorf("%w: %s", ErrInconsistentRoute, r.Trace[i])
		}
		r.Visits |= 1 << uint(q)
		if i == 0 || i == len(r.Trace)-1 {
			continue
		}
		prev, next = r.Trace[i-1], r.Trace[i+1]
		r.Start[q] = ToChild(q, prev)
		r.End[q] = ToChild(q, next)
		if r.Start[q] == NoNode || r.End[q] == NoNode {
			return fmt.Errorf("%w: %s between %s and %s", ErrInconsistentRoute, r.Trace[i], prev, next)
		}
	}

	return nil
}
