// Package hilbert - the bosonic configuration space.
//
// A Boson space has n sites, each holding an integer occupation in
// {0, …, maxOcc}. Sampling draws occupations independently and uniformly;
// global particle-number constraints are not modeled here.
package hilbert

import "math/rand/v2"

// Boson is a chain of bosonic sites with bounded occupation.
// The zero value is not usable; construct with NewBoson.
type Boson struct {
	n      int
	maxOcc int
	local  []float64
}

// NewBoson creates a bosonic space of n sites with occupations 0..maxOcc.
//
// Returns ErrInvalidSize when n < 1 and ErrInvalidOccupation when maxOcc < 1.
//
// Complexity: O(maxOcc).
func NewBoson(n, maxOcc int) (*Boson, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	if maxOcc < 1 {
		return nil, ErrInvalidOccupation
	}
	local := make([]float64, maxOcc+1)
	for i := range local {
		local[i] = float64(i)
	}
	return &Boson{n: n, maxOcc: maxOcc, local: local}, nil
}

// Size reports the number of sites.
func (b *Boson) Size() int { return b.n }

// LocalStates returns {0, 1, …, MaxOccupation}.
func (b *Boson) LocalStates() []float64 {
	out := make([]float64, len(b.local))
	copy(out, b.local)
	return out
}

// MaxOccupation reports the per-site occupation bound.
func (b *Boson) MaxOccupation() int { return b.maxOcc }

// RandomVals fills v with independent uniform occupations.
//
// Complexity: O(n).
func (b *Boson) RandomVals(v []float64, rng *rand.Rand) error {
	if rng == nil {
		return ErrNilEngine
	}
	if len(v) != b.n {
		return ErrDimensionMismatch
	}
	for i := range v {
		v[i] = float64(rng.IntN(b.maxOcc + 1))
	}
	return nil
}

// UpdateConf applies the change-set to v in place.
//
// Complexity: O(k·maxOcc) for k changed sites.
func (b *Boson) UpdateConf(v []float64, tochange []int, newconf []float64) error {
	if err := validateUpdate(b.n, b.local, v, tochange, newconf); err != nil {
		return err
	}
	applyUpdate(v, tochange, newconf)
	return nil
}
