package cellgraph

import "math/bits"

// Mask is a set of quadrants; quadrant q is bit q (TL=1, TR=2, BL=4, BR=8).
type Mask uint8

const (
	MaskTL Mask = 1 << iota
	MaskTR
	MaskBL
	MaskBR

	// MaskAll contains all four quadrants.
	MaskAll = MaskTL | MaskTR | MaskBL | MaskBR
	// maskCount is the number of distinct masks.
	maskCount = 16
)

// Has reports whether quadrant q is in m.
func (m Mask) Has(q int) bool { return m&(1<<uint(q)) != 0 }

// Count returns the number of quadrants in m.
func (m Mask) Count() int { return bits.OnesCount8(uint8(m)) }

// Contains reports whether every quadrant of sub is in m.
func (m Mask) Contains(sub Mask) bool { return m&sub == sub }
