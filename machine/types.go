// Package machine - contract types, sentinel errors, and input validation.
//
// This file declares the Machine interface, the Holomorphy tag, the Change
// type, sentinel errors, and the validation helpers shared by all concrete
// machines.
//
// Design principles:
//   - No logging, no panics on user input - only sentinel errors, wrapped
//     with context where useful.
//   - Validation always precedes mutation, so every mutating operation is
//     all-or-nothing.
package machine

import (
	"errors"
	"fmt"

	"github.com/varqlab/wavecheck/hilbert"
)

// Sentinel errors for contract violations.
var (
	// ErrInvalidModel indicates an unusable model: nil space binding or a
	// construction that yields zero free parameters.
	ErrInvalidModel = errors.New("machine: invalid model")

	// ErrInvalidArgument indicates a shape or range violation in a
	// configuration, parameter vector, change-set, or persisted file.
	ErrInvalidArgument = errors.New("machine: invalid argument")
)

// Holomorphy tags a machine as fully complex-differentiable or
// real-parametrized, and selects the parameter-equality rule used by
// round-trip and persistence checks.
type Holomorphy int

const (
	// Holomorphic machines carry fully complex parameters; equality is
	// exact on both real and imaginary parts.
	Holomorphic Holomorphy = iota

	// RealProjected machines carry real parameters in nominally complex
	// slots; only the real part is semantically meaningful.
	RealProjected
)

// String implements fmt.Stringer.
func (h Holomorphy) String() string {
	if h == RealProjected {
		return "real-projected"
	}
	return "holomorphic"
}

// ParamsEqual reports whether two parameter vectors are equal under this
// tag's semantics: exact complex equality when Holomorphic, exact equality
// of real parts when RealProjected. Vectors of differing length are never
// equal.
func (h Holomorphy) ParamsEqual(a, b []complex128) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if real(a[i]) != real(b[i]) {
			return false
		}
		if h == Holomorphic && imag(a[i]) != imag(b[i]) {
			return false
		}
	}
	return true
}

// Change is a sparse configuration edit: Values[i] replaces the occupation
// at site Sites[i]. Sites must be unique and in range, len(Sites) must equal
// len(Values), and every value must belong to the target space's local-value
// set. An empty Change is the identity edit.
type Change struct {
	Sites  []int
	Values []float64
}

// Machine is the variational machine contract. All operations are
// synchronous and none mutates its configuration argument.
type Machine interface {
	// NPar reports the number of free parameters; always positive for a
	// successfully constructed machine.
	NPar() int

	// NVisible reports the number of visible units; equals Hilbert().Size().
	NVisible() int

	// Hilbert returns the bound configuration space (read-only binding).
	Hilbert() hilbert.Space

	// Holomorphy reports the instance's fixed holomorphy tag.
	Holomorphy() Holomorphy

	// Parameters returns a copy of the flat parameter vector, length NPar().
	Parameters() []complex128

	// SetParameters replaces the full parameter vector. Returns
	// ErrInvalidArgument (wrapped) on length mismatch, leaving prior
	// parameters intact.
	SetParameters(p []complex128) error

	// LogVal evaluates the logarithm of the wavefunction amplitude at v
	// under the current parameters.
	LogVal(v []float64) (complex128, error)

	// DerLog evaluates the gradient of LogVal with respect to the parameter
	// vector, holding v fixed. Length NPar().
	DerLog(v []float64) ([]complex128, error)

	// LogValDiff returns, per change-set, LogVal(v after change) − LogVal(v),
	// computed incrementally and without mutating v.
	LogValDiff(v []float64, changes []Change) ([]complex128, error)

	// Save persists the parameter vector to path.
	Save(path string) error

	// Load restores a parameter vector previously written by Save.
	Load(path string) error
}

// validateConf checks that v is a well-formed configuration for space s.
func validateConf(s hilbert.Space, v []float64) error {
	if len(v) != s.Size() {
		return fmt.Errorf("%w: configuration length %d, space size %d",
			ErrInvalidArgument, len(v), s.Size())
	}
	return nil
}

// validateChange checks one change-set against space s: parallel lengths,
// unique in-range sites, and local-value membership.
func validateChange(s hilbert.Space, local []float64, ch Change) error {
	if len(ch.Sites) != len(ch.Values) {
		return fmt.Errorf("%w: change-set has %d sites but %d values",
			ErrInvalidArgument, len(ch.Sites), len(ch.Values))
	}
	n := s.Size()
	for i, site := range ch.Sites {
		if site < 0 || site >= n {
			return fmt.Errorf("%w: site %d out of range [0,%d)", ErrInvalidArgument, site, n)
		}
		for j := 0; j < i; j++ {
			if ch.Sites[j] == site {
				return fmt.Errorf("%w: duplicate site %d in change-set", ErrInvalidArgument, site)
			}
		}
		if !containsValue(local, ch.Values[i]) {
			return fmt.Errorf("%w: value %g not in local-value set", ErrInvalidArgument, ch.Values[i])
		}
	}
	return nil
}

func containsValue(local []float64, val float64) bool {
	for _, s := range local {
		if s == val {
			return true
		}
	}
	return false
}
