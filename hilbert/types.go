// Package hilbert - Space interface, sentinel errors, and shared validation.
//
// This file declares the collaborator contract every configuration space
// satisfies, the package's sentinel errors, and the update-validation helper
// shared by all concrete spaces.
//
// Design principles:
//   - Deterministic, side-effect free beyond the documented in-place writes.
//   - No logging, no panics on user input - only sentinel errors.
//   - O(k) validation per change-set of k sites; no hidden allocations.
package hilbert

import (
	"errors"
	"math/rand/v2"
)

// Sentinel errors for configuration-space operations.
var (
	// ErrInvalidSize indicates a space was requested with fewer than one site.
	ErrInvalidSize = errors.New("hilbert: space must have at least one site")

	// ErrInvalidTotalSz indicates the magnetization constraint cannot be met.
	ErrInvalidTotalSz = errors.New("hilbert: total magnetization unsatisfiable for this size")

	// ErrInvalidOccupation indicates a bosonic occupation bound below one.
	ErrInvalidOccupation = errors.New("hilbert: max occupation must be at least one")

	// ErrDimensionMismatch indicates a configuration of the wrong length.
	ErrDimensionMismatch = errors.New("hilbert: configuration length does not match space size")

	// ErrChangeShape indicates site-index and value sequences of differing length.
	ErrChangeShape = errors.New("hilbert: site and value sequences differ in length")

	// ErrSiteOutOfRange indicates a site index outside [0, Size()).
	ErrSiteOutOfRange = errors.New("hilbert: site index out of range")

	// ErrDuplicateSite indicates the same site listed twice in one change-set.
	ErrDuplicateSite = errors.New("hilbert: duplicate site in change-set")

	// ErrValueNotLocal indicates a value outside the local-value set.
	ErrValueNotLocal = errors.New("hilbert: value not in local-value set")

	// ErrNilEngine indicates sampling was requested without a random engine.
	ErrNilEngine = errors.New("hilbert: nil random engine")
)

// Space is the configuration-space collaborator consumed by the machine
// contract and the consistency verifier.
//
// Implementations must be deterministic given the supplied engine and must
// never mutate a configuration outside the sites named in UpdateConf.
type Space interface {
	// Size reports the number of sites (the visible-unit count of any
	// machine bound to this space).
	Size() int

	// LocalStates returns the allowed per-site values in ascending order.
	// The returned slice is a copy; callers may retain or mutate it.
	LocalStates() []float64

	// RandomVals overwrites v with a valid random configuration drawn from
	// rng. len(v) must equal Size().
	RandomVals(v []float64, rng *rand.Rand) error

	// UpdateConf applies newconf[i] to site tochange[i], in place.
	// tochange and newconf must be the same length, sites must be unique
	// and in range, and every value must belong to the local-value set.
	// An empty change-set is a no-op.
	UpdateConf(v []float64, tochange []int, newconf []float64) error
}

// defaultEngineSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultEngineSeed uint64 = 1

// NewEngine returns a deterministic random engine for configuration
// sampling. Policy: seed==0 ⇒ defaultEngineSeed; otherwise the seed is used
// verbatim. math/rand/v2 generators are not goroutine-safe; do not share one
// engine across goroutines.
//
// Complexity: O(1).
func NewEngine(seed int64) *rand.Rand {
	s := uint64(seed)
	if s == 0 {
		s = defaultEngineSeed
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Source adapts an engine to consumers expecting a Uint64/Seed source, such
// as gonum's distributions. Seed is a no-op: engines are seeded once, at
// creation via NewEngine.
type Source struct {
	rng *rand.Rand
}

// NewSource wraps rng for use as a distribution source.
func NewSource(rng *rand.Rand) Source { return Source{rng: rng} }

// Uint64 forwards to the wrapped engine.
func (s Source) Uint64() uint64 { return s.rng.Uint64() }

// Seed is a no-op; reseeding means constructing a new engine.
func (s Source) Seed(uint64) {}

// validateUpdate checks a change-set against a space of the given size and
// local-value set. Shared by all concrete spaces so they agree exactly on
// failure behavior.
//
// Complexity: O(k·L) for k changed sites and L local states (L ≤ a handful).
func validateUpdate(size int, local []float64, v []float64, tochange []int, newconf []float64) error {
	if len(v) != size {
		return ErrDimensionMismatch
	}
	if len(tochange) != len(newconf) {
		return ErrChangeShape
	}
	for i, site := range tochange {
		if site < 0 || site >= size {
			return ErrSiteOutOfRange
		}
		for j := 0; j < i; j++ {
			if tochange[j] == site {
				return ErrDuplicateSite
			}
		}
		if !isLocal(local, newconf[i]) {
			return ErrValueNotLocal
		}
	}
	return nil
}

// isLocal reports whether val is one of the allowed local states.
func isLocal(local []float64, val float64) bool {
	for _, s := range local {
		if s == val {
			return true
		}
	}
	return false
}

// applyUpdate writes the (already validated) change-set into v.
func applyUpdate(v []float64, tochange []int, newconf []float64) {
	for i, site := range tochange {
		v[site] = newconf[i]
	}
}
