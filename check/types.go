// Package check - options, sentinel errors, and comparison primitives.
//
// Design principles:
//   - Deterministic, side-effect free checks; no logging, no panics.
//   - Every tolerance is a combined relative+absolute criterion, evaluated
//     elementwise with a max-abs-difference reduction for reporting.
package check

import (
	"errors"
	"fmt"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/varqlab/wavecheck/hilbert"
)

// Sentinel errors for the verifier.
var (
	// ErrBadOptions indicates an Options field outside its valid range.
	ErrBadOptions = errors.New("check: invalid options")

	// ErrNilMachine indicates a scenario without a machine.
	ErrNilMachine = errors.New("check: scenario has nil machine")

	// ErrToleranceExceeded indicates a numerical comparison beyond its
	// tolerance; it signals a genuine model bug, not a harness defect.
	ErrToleranceExceeded = errors.New("check: numerical tolerance exceeded")
)

// ToleranceError reports one failed numerical comparison. It wraps
// ErrToleranceExceeded so callers can match with errors.Is.
type ToleranceError struct {
	// Check names the comparison that failed (e.g. "gradient real part").
	Check string
	// Got is the offending absolute deviation.
	Got float64
	// Tol is the absolute component of the violated tolerance.
	Tol float64
}

// Error implements error.
func (e *ToleranceError) Error() string {
	return fmt.Sprintf("check: %s: |Δ| = %.3e exceeds tolerance %.3e", e.Check, e.Got, e.Tol)
}

// Unwrap ties ToleranceError to the ErrToleranceExceeded sentinel.
func (e *ToleranceError) Unwrap() error { return ErrToleranceExceeded }

// Options configures the verifier.
//
// Fields:
//   - GradTrials / DiffTrials  — sampled configurations per law (default 100).
//   - SwapRetries              — random attempts at finding two differing
//     sites before falling back to a deterministic scan (default 100).
//   - FDStep                   — finite-difference step (default 1e-9).
//   - GradSigma                — parameter scale for the gradient check
//     (default 0.1, inside finite-difference's stable regime).
//   - DiffSigma                — parameter scale for the diff check (default 0.5).
//   - GradRelTol / GradAbsTol  — combined tolerance on gradient real parts
//     (default 1e-4 each).
//   - PhaseRelTol / PhaseAbsTol — combined tolerance on the phase-wrapped
//     imaginary comparison |exp(i·Δ)−1| (default 4e-4 each).
//   - DiffRelTol / DiffAbsTol  — floating tolerance for diff-vs-recompute
//     real parts (default 1e-6 / 1e-12).
//   - AmbientSeed              — seed of the ambient engine drawing parameter
//     vectors and swap sites (default 12346).
//   - EngineSeed               — seed of the configuration-sampling engine,
//     fresh per check so sampling is independent of ambient call order
//     (default 1234).
type Options struct {
	GradTrials  int
	DiffTrials  int
	SwapRetries int

	FDStep    float64
	GradSigma float64
	DiffSigma float64

	GradRelTol  float64
	GradAbsTol  float64
	PhaseRelTol float64
	PhaseAbsTol float64
	DiffRelTol  float64
	DiffAbsTol  float64

	AmbientSeed int64
	EngineSeed  int64
}

// DefaultOptions returns the calibration defaults.
func DefaultOptions() Options {
	return Options{
		GradTrials:  100,
		DiffTrials:  100,
		SwapRetries: 100,
		FDStep:      1e-9,
		GradSigma:   0.1,
		DiffSigma:   0.5,
		GradRelTol:  1e-4,
		GradAbsTol:  1e-4,
		PhaseRelTol: 4e-4,
		PhaseAbsTol: 4e-4,
		DiffRelTol:  1e-6,
		DiffAbsTol:  1e-12,
		AmbientSeed: 12346,
		EngineSeed:  1234,
	}
}

// validateOptions rejects out-of-range fields before any check runs.
func validateOptions(o Options) error {
	if o.GradTrials < 1 || o.DiffTrials < 1 || o.SwapRetries < 1 {
		return fmt.Errorf("%w: trial and retry counts must be at least 1", ErrBadOptions)
	}
	if o.FDStep <= 0 || o.GradSigma <= 0 || o.DiffSigma <= 0 {
		return fmt.Errorf("%w: step and sigma values must be positive", ErrBadOptions)
	}
	if o.GradRelTol <= 0 || o.GradAbsTol <= 0 || o.PhaseRelTol <= 0 ||
		o.PhaseAbsTol <= 0 || o.DiffRelTol <= 0 || o.DiffAbsTol <= 0 {
		return fmt.Errorf("%w: tolerances must be positive", ErrBadOptions)
	}
	return nil
}

// randomComplexVector draws n slots with independent N(0, sigma²) real and
// imaginary parts from rng.
func randomComplexVector(rng *rand.Rand, n int, sigma float64) []complex128 {
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: hilbert.NewSource(rng)}
	p := make([]complex128, n)
	for i := range p {
		p[i] = complex(dist.Rand(), dist.Rand())
	}
	return p
}

// withinTol is the combined relative+absolute criterion used throughout.
func withinTol(got, want, absTol, relTol float64) bool {
	return scalar.EqualWithinAbsOrRel(got, want, absTol, relTol)
}

// phaseDeviation measures how far the imaginary difference between two
// log-amplitude quantities is from a pure global phase: |exp(i·Im(a−b)) − 1|.
// Zero means the imaginary parts agree up to an arbitrary constant phase
// (modulo 2π).
func phaseDeviation(a, b complex128) float64 {
	return cmplx.Abs(cmplx.Exp(complex(0, imag(a)-imag(b))) - 1)
}
