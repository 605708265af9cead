// Package check - parameter, persistence, and shape checks.
package check

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/varqlab/wavecheck/machine"
)

// Shape verifies that the machine's visible-unit count equals the bound
// space's site count and that the model exposes at least one parameter.
func Shape(m machine.Machine) error {
	if m.NPar() < 1 {
		return fmt.Errorf("%w: model reports %d parameters", machine.ErrInvalidModel, m.NPar())
	}
	if hi := m.Hilbert(); m.NVisible() != hi.Size() {
		return fmt.Errorf("%w: %d visible units bound to a %d-site space",
			machine.ErrInvalidModel, m.NVisible(), hi.Size())
	}
	return nil
}

// Parameters verifies the set/get round trip: a standard-normal complex
// vector assigned via SetParameters must be read back exactly, on both parts
// for holomorphic machines and on the real part for real-projected ones.
func Parameters(m machine.Machine, rng *rand.Rand) error {
	if err := Shape(m); err != nil {
		return err
	}
	want := randomComplexVector(rng, m.NPar(), 1)
	if err := m.SetParameters(want); err != nil {
		return err
	}
	return compareParams(m, want, "parameter round trip")
}

// Persistence verifies the save/load round trip on a scratch directory that
// is removed on every exit path. Parameters are zeroed between Save and Load
// so a no-op Load cannot pass.
func Persistence(m machine.Machine, rng *rand.Rand) (err error) {
	if err = Shape(m); err != nil {
		return err
	}
	want := randomComplexVector(rng, m.NPar(), 1)
	if err = m.SetParameters(want); err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "wavecheck-wf-")
	if err != nil {
		return fmt.Errorf("check: scratch directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil && err == nil {
			err = fmt.Errorf("check: remove scratch directory: %w", rmErr)
		}
	}()

	path := filepath.Join(dir, "test.wf")
	if err = m.Save(path); err != nil {
		return err
	}
	if err = m.SetParameters(make([]complex128, m.NPar())); err != nil {
		return err
	}
	if err = m.Load(path); err != nil {
		return err
	}
	return compareParams(m, want, "persistence round trip")
}

// compareParams asserts holomorphy-aware exact equality between the
// machine's current parameters and want.
func compareParams(m machine.Machine, want []complex128, label string) error {
	got := m.Parameters()
	if m.Holomorphy().ParamsEqual(got, want) {
		return nil
	}
	return &ToleranceError{Check: label, Got: maxParamDeviation(m.Holomorphy(), got, want), Tol: 0}
}

// maxParamDeviation reduces a failed equality to its worst absolute
// deviation, honoring the holomorphy tag.
func maxParamDeviation(h machine.Holomorphy, got, want []complex128) float64 {
	if len(got) != len(want) {
		return math.Inf(1)
	}
	var worst float64
	for i := range got {
		worst = math.Max(worst, math.Abs(real(got[i])-real(want[i])))
		if h == machine.Holomorphic {
			worst = math.Max(worst, math.Abs(imag(got[i])-imag(want[i])))
		}
	}
	return worst
}
