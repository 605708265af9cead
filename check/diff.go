// Package check - the incremental-diff law.
//
// For each sampled configuration the verifier builds a two-site swap
// change-set, asks the machine for the incremental difference, then applies
// the same edit through the space's UpdateConf on a copy and recomputes
// LogVal from scratch. The two deltas must agree on the real part to
// floating tolerance and on the imaginary part up to a global phase. The
// empty change-set must produce an exactly zero difference.
package check

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/varqlab/wavecheck/hilbert"
	"github.com/varqlab/wavecheck/machine"
)

// LogValDiff verifies incremental log-amplitude updates against full
// recomputation over opts.DiffTrials sampled configurations.
func LogValDiff(m machine.Machine, rng *rand.Rand, opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}
	if err := Shape(m); err != nil {
		return err
	}

	pars := randomComplexVector(rng, m.NPar(), opts.DiffSigma)
	if err := m.SetParameters(pars); err != nil {
		return err
	}

	hi := m.Hilbert()
	engine := hilbert.NewEngine(opts.EngineSeed)
	v := make([]float64, hi.Size())
	after := make([]float64, hi.Size())

	for trial := 0; trial < opts.DiffTrials; trial++ {
		if err := hi.RandomVals(v, engine); err != nil {
			return err
		}

		// Every trial carries the identity change-set alongside the swap, so
		// the zero-diff law is exercised under the same parameters.
		changes := []machine.Change{{}}
		if swap, ok := findSwap(v, rng, opts.SwapRetries); ok {
			changes = append(changes, swap)
		}

		diffs, err := m.LogValDiff(v, changes)
		if err != nil {
			return err
		}
		if diffs[0] != 0 {
			return &ToleranceError{
				Check: "empty change-set diff",
				Got:   math.Max(math.Abs(real(diffs[0])), math.Abs(imag(diffs[0]))),
				Tol:   0,
			}
		}

		base, err := m.LogVal(v)
		if err != nil {
			return err
		}
		for c := 1; c < len(changes); c++ {
			copy(after, v)
			if err = hi.UpdateConf(after, changes[c].Sites, changes[c].Values); err != nil {
				return err
			}
			full, err := m.LogVal(after)
			if err != nil {
				return err
			}
			recomputed := full - base

			if dev, ok := realDeviation(recomputed, diffs[c], opts.DiffAbsTol, opts.DiffRelTol); !ok {
				return &ToleranceError{
					Check: fmt.Sprintf("diff real part (trial %d)", trial),
					Got:   dev,
					Tol:   opts.DiffAbsTol,
				}
			}
			if dev := phaseDeviation(recomputed, diffs[c]); !withinTol(dev, 0, opts.PhaseAbsTol, opts.PhaseRelTol) {
				return &ToleranceError{
					Check: fmt.Sprintf("diff imaginary part up to phase (trial %d)", trial),
					Got:   dev,
					Tol:   opts.PhaseAbsTol,
				}
			}
		}
	}
	return nil
}

// findSwap builds a single change-set exchanging the values of two sites
// whose current occupations differ. It tries random pairs up to retries
// times, then falls back to a deterministic scan so a differing pair is
// found whenever one exists. Only a perfectly uniform configuration yields
// ok == false.
func findSwap(v []float64, rng *rand.Rand, retries int) (machine.Change, bool) {
	n := len(v)
	if n > 1 {
		for r := 0; r < retries; r++ {
			i := rng.IntN(n)
			j := rng.IntN(n - 1)
			if j >= i {
				j++
			}
			if v[i] != v[j] {
				return swapChange(v, i, j), true
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v[i] != v[j] {
				return swapChange(v, i, j), true
			}
		}
	}
	return machine.Change{}, false
}

// swapChange encodes exchanging the values at sites i and j.
func swapChange(v []float64, i, j int) machine.Change {
	return machine.Change{Sites: []int{i, j}, Values: []float64{v[j], v[i]}}
}
