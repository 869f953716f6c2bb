// Package togw iterates the fuel-fraction mass closure to a converged
// takeoff gross weight using a historical empty-weight correlation.
package togw

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Failure kinds. Callers distinguish them with errors.Is.
var (
	// ErrInvalidConfiguration indicates a request that can never iterate
	// meaningfully (non-positive tolerance, iteration cap, or seed guess).
	ErrInvalidConfiguration = errors.New("invalid solver configuration")

	// ErrInfeasibleDesign indicates the fuel and empty-weight fractions
	// together exceed 1, so no finite gross weight closes the mass budget.
	ErrInfeasibleDesign = errors.New("infeasible design point")

	// ErrNotConverged indicates the iteration cap was reached before the
	// relative change dropped below tolerance.
	ErrNotConverged = errors.New("iteration did not converge")
)

// WeightModel is the empty-weight fraction correlation We/W0 = A * W0^C.
// C is typically negative: the empty-weight fraction of the historical fleet
// shrinks as gross weight grows. That is a correlation artifact, valid only
// within the fitted weight range, not a physical law.
type WeightModel struct {
	A float64
	C float64
}

// EmptyWeightFraction evaluates the correlation at the given gross weight.
func (m WeightModel) EmptyWeightFraction(w0 float64) float64 {
	return m.A * math.Pow(w0, m.C)
}

// Request holds the inputs to one TOGW solve.
type Request struct {
	// FixedWeight is the payload + crew + fixed internal equipment sum [lb].
	FixedWeight float64

	// FuelFraction is the total fuel fraction Wf/W0 including reserves.
	FuelFraction float64

	Model WeightModel

	SeedGuess     float64
	Tolerance     float64
	MaxIterations int

	// EngineWeight is added to the gross and empty weights after
	// convergence when the correlation excludes the engines.
	EngineWeight float64
}

// Result holds a converged sizing. Partial results are never returned: a
// failed solve yields only an error.
type Result struct {
	TOGW                float64
	EmptyWeight         float64
	FuelWeight          float64
	EmptyWeightFraction float64
	Iterations          int

	// History records every gross-weight guess, seed first, converged value
	// last, for convergence diagnostics and plotting.
	History []float64
}

// iterationState is the mutable state threaded through one solve. It is
// local to the call; nothing is shared across invocations.
type iterationState struct {
	w0      float64
	delta   float64
	history []float64
}

// Solve fixed-point iterates W0 = FixedWeight / (1 - Wf/W0 - We/W0) from the
// seed guess until the relative change drops below tolerance.
func Solve(logger *zap.Logger, req Request) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if req.Tolerance <= 0 {
		return Result{}, fmt.Errorf("%w: tolerance must be positive, got %g", ErrInvalidConfiguration, req.Tolerance)
	}
	if req.MaxIterations <= 0 {
		return Result{}, fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidConfiguration, req.MaxIterations)
	}
	if req.SeedGuess <= 0 {
		return Result{}, fmt.Errorf("%w: seed guess must be positive, got %g", ErrInvalidConfiguration, req.SeedGuess)
	}
	if req.FixedWeight < 0 {
		return Result{}, fmt.Errorf("%w: fixed weight must be non-negative, got %g", ErrInvalidConfiguration, req.FixedWeight)
	}

	state := iterationState{w0: req.SeedGuess, history: []float64{req.SeedGuess}}
	for i := 0; i < req.MaxIterations; i++ {
		emptyFrac := req.Model.EmptyWeightFraction(state.w0)
		denom := 1.0 - req.FuelFraction - emptyFrac
		if denom <= 0 {
			// Without this guard the iteration silently diverges or
			// produces a negative gross weight.
			return Result{}, fmt.Errorf("%w: 1 - Wf/W0 - We/W0 = %.4f at iteration %d (We/W0=%.4f, Wf/W0=%.4f, W0=%.1f)",
				ErrInfeasibleDesign, denom, i+1, emptyFrac, req.FuelFraction, state.w0)
		}

		w0New := req.FixedWeight / denom
		if w0New == 0 {
			// Zero fixed weight closes trivially.
			state.delta = 0
		} else {
			state.delta = math.Abs(w0New-state.w0) / math.Abs(w0New)
		}
		state.w0 = w0New
		state.history = append(state.history, w0New)

		logger.Debug("TOGW iteration",
			zap.String("op", "togw.Solve"),
			zap.Int("iteration", i+1),
			zap.Float64("w0", state.w0),
			zap.Float64("emptyWeightFraction", emptyFrac),
			zap.Float64("delta", state.delta),
		)

		if state.delta < req.Tolerance {
			emptyFrac = req.Model.EmptyWeightFraction(state.w0)
			if state.w0 == 0 {
				emptyFrac = 0
			}
			return Result{
				TOGW:                state.w0 + req.EngineWeight,
				EmptyWeight:         emptyFrac*state.w0 + req.EngineWeight,
				FuelWeight:          req.FuelFraction * state.w0,
				EmptyWeightFraction: emptyFrac,
				Iterations:          i + 1,
				History:             state.history,
			}, nil
		}
	}

	return Result{}, fmt.Errorf("%w: after %d iterations, last W0=%.1f, delta=%.3e",
		ErrNotConverged, req.MaxIterations, state.w0, state.delta)
}
