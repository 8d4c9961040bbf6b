package cellgraph

import (
	"fmt"
	"sync"
)

// lengthTolerance is the margin by which a walk must be shorter to replace
// the current best.
const lengthTolerance = 1e-9

// Table holds the shortest walk for every (start, end, mask) triple:
// start and end are border points, mask the quadrants that must be visited.
type Table struct {
	routes [borderCount][borderCount][maskCount]*Route
}

// NewTable enumerates all simple walks between border points and keeps, per
// triple, the shortest walk whose visited cells contain the mask. Equal
// lengths keep the walk found first.
//
// Complexity: O(W·16) for W enumerated walks (about 1.3k).
func NewTable() (*Table, error) {
	var (
		t          = &Table{}
		s, e, m    int
		walks      []walk
		best       [maskCount]*walk
		wv         Mask
		start, end Node
	)
	for s = 0; s < borderCount; s++ {
		for e = 0; e < borderCount; e++ {
			start, end = BorderTL+Node(s), BorderTL+Node(e)
			walks = paths(start, end, 0)
			best = [maskCount]*walk{}
			for i := range walks {
				wv = visitsOf(walks[i].trace)
				for m = 0; m < maskCount; m++ {
					if !wv.Contains(Mask(m)) {
						continue
					}
					if best[m] == nil || walks[i].length < best[m].length-lengthTolerance {
						best[m] = &walks[i]
					}
				}
			}
			for m = 0; m < maskCount; m++ {
				if best[m] == nil {
					continue
				}
				r := &Route{
					Trace:  append([]Node(nil), best[m].trace...),
					Length: best[m].length,
				}
				if err := r.SetBorderPoints(); err != nil {
					return nil, fmt.Errorf("cellgraph: %s→%s mask %d: %w", start, end, m, err)
				}
				t.routes[s][e][m] = r
			}
		}
	}

	return t, nil
}

var (
	sharedOnce  sync.Once
	sharedTable *Table
	sharedErr   error
)

// Shared returns a process-wide Table, built on first use.
func Shared() (*Table, error) {
	sharedOnce.Do(func() {
		sharedTable, sharedErr = NewTable()
	})

	return sharedTable, sharedErr
}

// Lookup returns the shortest walk from start to end visiting at least mask.
// It fails with ErrNoRoute when start or end is not a border point or when
// no walk exists (a corner point as both start and end).
func (t *Table) Lookup(start, end Node, mask Mask) (*Route, error) {
	if !start.IsBorder() || !end.IsBorder() || mask > MaskAll {
		return nil, fmt.Errorf("%w: %s→%s mask %d", ErrNoRoute, start, end, mask)
	}
	r := t.routes[start-BorderTL][end-BorderTL][mask]
	if r == nil {
		return nil, fmt.Errorf("%w: %s→%s mask %d", ErrNoRoute, start, end, mask)
	}

	return r, nil
}

// Coverage returns the number of populated entries out of 8·8·16.
func (t *Table) Coverage() int {
	n := 0
	for s := range t.routes {
		for e := range t.routes[s] {
			for m := range t.routes[s][e] {
				if t.routes[s][e][m] != nil {
					n++
				}
			}
		}
	}

	return n
}

func visitsOf(trace []Node) Mask {
	var m Mask
	for _, n := range trace {
		if n.IsCell() {
			m |= 1 << uint(n.Quadrant())
		}
	}
	return m
}
