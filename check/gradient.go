// Package check - the gradient law.
//
// The analytic gradient DerLog is compared against a central finite
// difference of LogVal over the flat parameter vector, holding the
// configuration fixed. Real parts must agree under a combined
// relative+absolute tolerance. Imaginary parts of a log-amplitude are only
// defined up to a global phase, so they are compared through the wrap
// |exp(i·Δ) − 1| rather than the raw difference.
package check

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/varqlab/wavecheck/hilbert"
	"github.com/varqlab/wavecheck/machine"
)

// Gradient verifies DerLog against numerical differentiation over
// opts.GradTrials sampled configurations with fresh small-scale random
// parameters per trial. When realGradient is set, every analytic gradient
// component must additionally carry an exactly zero imaginary part.
func Gradient(m machine.Machine, realGradient bool, rng *rand.Rand, opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}
	if err := Shape(m); err != nil {
		return err
	}

	hi := m.Hilbert()
	engine := hilbert.NewEngine(opts.EngineSeed)
	v := make([]float64, hi.Size())
	numeric := make([]complex128, m.NPar())

	for trial := 0; trial < opts.GradTrials; trial++ {
		if err := hi.RandomVals(v, engine); err != nil {
			return err
		}
		pars := randomComplexVector(rng, m.NPar(), opts.GradSigma)
		if err := m.SetParameters(pars); err != nil {
			return err
		}

		analytic, err := m.DerLog(v)
		if err != nil {
			return err
		}
		if realGradient {
			if dev := maxAbsImag(analytic); dev != 0 {
				return &ToleranceError{Check: "real-amplitude gradient imaginary part", Got: dev, Tol: 0}
			}
		}

		if err = numericGradient(m, pars, v, opts.FDStep, numeric); err != nil {
			return err
		}
		if err = compareGradients(analytic, numeric, opts); err != nil {
			return fmt.Errorf("trial %d: %w", trial, err)
		}
	}
	return nil
}

// numericGradient fills dst with the central finite difference of LogVal
// over the parameter vector: (logψ(p+h·eₖ) − logψ(p−h·eₖ)) / 2h. The step is
// purely real, which equals the complex derivative for holomorphic machines
// and the real-parameter derivative for real-projected ones. pars is
// restored (and reassigned to m) before returning.
func numericGradient(m machine.Machine, pars []complex128, v []float64, step float64, dst []complex128) error {
	h := complex(step, 0)
	for k := range pars {
		orig := pars[k]

		pars[k] = orig + h
		if err := m.SetParameters(pars); err != nil {
			return err
		}
		plus, err := m.LogVal(v)
		if err != nil {
			return err
		}

		pars[k] = orig - h
		if err = m.SetParameters(pars); err != nil {
			return err
		}
		minus, err := m.LogVal(v)
		if err != nil {
			return err
		}

		pars[k] = orig
		dst[k] = (plus - minus) / (2 * h)
	}
	return m.SetParameters(pars)
}

// compareGradients applies the elementwise real and phase-wrapped imaginary
// criteria, reporting the first violation with its max-abs deviation.
func compareGradients(analytic, numeric []complex128, opts Options) error {
	for k := range analytic {
		if re, ok := realDeviation(analytic[k], numeric[k], opts.GradAbsTol, opts.GradRelTol); !ok {
			return &ToleranceError{
				Check: fmt.Sprintf("gradient real part (component %d)", k),
				Got:   re,
				Tol:   opts.GradAbsTol,
			}
		}
		if dev := phaseDeviation(analytic[k], numeric[k]); !withinTol(dev, 0, opts.PhaseAbsTol, opts.PhaseRelTol) {
			return &ToleranceError{
				Check: fmt.Sprintf("gradient imaginary part up to phase (component %d)", k),
				Got:   dev,
				Tol:   opts.PhaseAbsTol,
			}
		}
	}
	return nil
}

// realDeviation reports |Re a − Re b| and whether it passes the combined
// tolerance.
func realDeviation(a, b complex128, absTol, relTol float64) (float64, bool) {
	return math.Abs(real(a) - real(b)), withinTol(real(a), real(b), absTol, relTol)
}

// maxAbsImag reduces a complex vector to its largest |Im| entry.
func maxAbsImag(p []complex128) float64 {
	var worst float64
	for _, z := range p {
		worst = math.Max(worst, math.Abs(imag(z)))
	}
	return worst
}
