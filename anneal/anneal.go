package anneal

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/renormtsp/renorm"
)

const (
	// bmStart is the Brownian amplitude at the terminal temperature.
	bmStart = 2 * math.Pi
	// entropyEpsilon is the entropy variation treated as zero.
	entropyEpsilon = 1e-6

	tracerName = "github.com/katalvlaran/renormtsp/anneal"
)

// StopReason tells why Run returned.
type StopReason string

const (
	StopConverged     StopReason = "converged"
	StopMaxIterations StopReason = "max_iterations"
	StopCancelled     StopReason = "cancelled"
)

// Result is the outcome of Run.
type Result struct {
	BestLength   float64
	BestRotation float64
	BestTour     []int
	Iterations   uint64
	Accepted     uint64
	Stop         StopReason
	Elapsed      time.Duration
}

// Run anneals the rotation of rc and returns the best tour seen.
//
// rc.Rotation is overwritten; on return it holds the last evaluated rotation.
// If ctx is cancelled the best result so far is returned together with
// ctx.Err(). Any other error aborts the run.
func Run(ctx context.Context, rc *renorm.Context, p Params, opts ...Option) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.builder == nil {
		b, err := renorm.NewBuilder(renorm.DefaultOptions())
		if err != nil {
			return Result{}, err
		}
		cfg.builder = b
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "anneal.Run", trace.WithAttributes(
		attribute.Int("points", rc.Len()),
		attribute.Int64("seed", p.Seed),
		attribute.Int("max_iterations", p.MaxIterations),
	))
	defer span.End()

	res, err := run(ctx, rc, p, &cfg)
	span.SetAttributes(
		attribute.Float64("best_length", res.BestLength),
		attribute.Int64("iterations", int64(res.Iterations)),
		attribute.String("stop", string(res.Stop)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return res, err
}

func run(ctx context.Context, rc *renorm.Context, p Params, cfg *config) (Result, error) {
	var (
		started     = time.Now()
		bmRNG, aRNG = streams(p.Seed)

		temp, tempOld = p.TempInit, p.TempInit
		rot, rotOld   = p.InitialRotation, p.InitialRotation
		energy        float64
		eVar, sVar    float64
		bm, delta     float64
		accepted      bool
		sol           renorm.Solution
		err           error
	)

	rc.Rotation = rot
	if sol, err = cfg.builder.Solve(ctx, rc); err != nil {
		return Result{}, fmt.Errorf("anneal: initial rotation %g: %w", rot, err)
	}
	energy = sol.Length
	res := Result{BestLength: energy, BestRotation: rot, BestTour: sol.Tour}

	finish := func(stop StopReason) Result {
		res.Stop = stop
		res.Elapsed = time.Since(started)
		cfg.observers.Finish(res)
		if cfg.logger != nil {
			cfg.logger.Info("annealing finished",
				slog.Float64("best_length", res.BestLength),
				slog.Float64("best_rotation", res.BestRotation),
				slog.Uint64("iterations", res.Iterations),
				slog.Uint64("accepted", res.Accepted),
				slog.String("stop", string(stop)),
				slog.Duration("elapsed", res.Elapsed),
			)
		}
		return res
	}

	for {
		if err = ctx.Err(); err != nil {
			return finish(StopCancelled), err
		}
		if p.MaxIterations > 0 && res.Iterations >= uint64(p.MaxIterations) {
			return finish(StopMaxIterations), nil
		}

		tempOld, rotOld = temp, rot
		bm = amplitude(temp, p, bmRNG.NormFloat64())
		rot = math.Mod(math.Abs(rot+bm), 2*math.Pi)
		if math.IsNaN(rot) {
			return res, fmt.Errorf("%w: iteration %d", ErrInvalidRotation, res.Iterations)
		}

		rc.Rotation = rot
		if sol, err = cfg.builder.Solve(ctx, rc); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return finish(StopCancelled), ctxErr
			}
			return res, fmt.Errorf("anneal: iteration %d at rotation %g: %w", res.Iterations, rot, err)
		}
		delta = sol.Length - energy

		accepted = aRNG.Float64() < math.Exp(-delta/temp)
		if accepted {
			if sol.Length < res.BestLength {
				res.BestLength = sol.Length
				res.BestRotation = rot
				res.BestTour = sol.Tour
			}
			energy = sol.Length
			eVar += delta
			res.Accepted++
		}

		rec := Record{
			Iteration:    res.Iterations,
			Temperature:  temp,
			Energy:       sol.Length,
			Delta:        delta,
			Rotation:     rot,
			RotationStep: rot - rotOld,
			Amplitude:    bm,
			Accepted:     accepted,
		}
		if !accepted {
			rot = rotOld
		}

		if delta > 0 {
			sVar -= delta / temp
		}
		if eVar >= 0 || math.Abs(sVar) < entropyEpsilon {
			temp = p.TempInit
		} else {
			temp = p.K * (eVar / sVar)
			rot = res.BestRotation
		}
		res.Iterations++

		rec.EnergyVariation = eVar
		rec.BestEnergy = res.BestLength
		rec.EntropyVariation = sVar
		rec.BestRotation = res.BestRotation
		cfg.observers.Observe(rec)
		if cfg.logger != nil {
			cfg.logger.Debug("iteration",
				slog.Uint64("iteration", rec.Iteration),
				slog.Float64("temperature", rec.Temperature),
				slog.Float64("energy", rec.Energy),
				slog.Float64("delta", rec.Delta),
				slog.Float64("best", rec.BestEnergy),
				slog.Float64("rotation", rec.Rotation),
				slog.Bool("accepted", accepted),
			)
		}

		if temp <= p.TempEnd && math.Abs(temp-tempOld) <= p.TempSig {
			return finish(StopConverged), nil
		}
	}
}

// amplitude returns the Brownian step 2π·exp(σ·(T−T_end)/(T_init−T_end)·z),
// clamping an infinite step to math.MaxFloat32.
func amplitude(temp float64, p Params, z float64) float64 {
	bm := bmStart * math.Exp(p.BMSigma*(temp-p.TempEnd)/(p.TempInit-p.TempEnd)*z)
	if math.IsInf(bm, 0) {
		return math.MaxFloat32
	}
	return bm
}
