package anneal

import (
	"fmt"
	"io"
)

// TextLogHeader is the first line written by a TextLog.
const TextLogHeader = "time T E_n E_d E_v E_b S_v rb r rv bm"

// TextLog writes one space-separated line per iteration under TextLogHeader,
// readable with any table reader (for example R's read.table with header=T).
// The first write error is kept and later writes are skipped.
type TextLog struct {
	w      io.Writer
	header bool
	err    error
}

// NewTextLog returns a TextLog writing to w. The header is written with the
// first record.
func NewTextLog(w io.Writer) *TextLog {
	return &TextLog{w: w}
}

// Observe implements Observer.
func (l *TextLog) Observe(r Record) {
	if l.err != nil {
		return
	}
	if !l.header {
		if _, l.err = fmt.Fprintln(l.w, TextLogHeader); l.err != nil {
			return
		}
		l.header = true
	}
	_, l.err = fmt.Fprintf(l.w, "%d %f %f %f %f %f %f %f %f %f %f\n",
		r.Iteration, r.Temperature, r.Energy, r.Delta, r.EnergyVariation,
		r.BestEnergy, r.EntropyVariation, r.BestRotation, r.Rotation,
		r.RotationStep, r.Amplitude)
}

// Err returns the first write error.
func (l *TextLog) Err() error { return l.err }
