package anneal

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParams indicates out-of-range annealing parameters.
	ErrInvalidParams = errors.New("anneal: invalid parameters")
	// ErrInvalidRotation indicates a NaN rotation produced during the search.
	ErrInvalidRotation = errors.New("anneal: rotation is NaN")
)

// Params are the annealing schedule parameters.
type Params struct {
	// InitialRotation is the first rotation evaluated, in radians.
	InitialRotation float64
	// TempInit is the starting and fallback temperature.
	TempInit float64
	// TempEnd is the terminal temperature.
	TempEnd float64
	// TempSig is the temperature change considered stable.
	TempSig float64
	// BMSigma scales the log-amplitude of the Brownian rotation step.
	BMSigma float64
	// K scales the re-derived temperature T = K·ΔE/ΔS.
	K float64
	// MaxIterations caps the number of iterations; 0 means no cap.
	MaxIterations int
	// Seed selects the random streams; 0 selects a fixed default.
	Seed int64
}

// Validate reports the first parameter out of range.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"initial_rotation", p.InitialRotation},
		{"temp_init", p.TempInit},
		{"temp_end", p.TempEnd},
		{"temp_sig", p.TempSig},
		{"bm_sigma", p.BMSigma},
		{"k", p.K},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, f.name)
		}
	}
	switch {
	case p.TempEnd <= 0:
		return fmt.Errorf("%w: temp_end %g must be positive", ErrInvalidParams, p.TempEnd)
	case p.TempInit <= p.TempEnd:
		return fmt.Errorf("%w: temp_init %g must exceed temp_end %g", ErrInvalidParams, p.TempInit, p.TempEnd)
	case p.TempSig < 0:
		return fmt.Errorf("%w: temp_sig %g must not be negative", ErrInvalidParams, p.TempSig)
	case p.K <= 0:
		return fmt.Errorf("%w: k %g must be positive", ErrInvalidParams, p.K)
	case p.MaxIterations < 0:
		return fmt.Errorf("%w: max_iterations %d must not be negative", ErrInvalidParams, p.MaxIterations)
	}

	return nil
}
