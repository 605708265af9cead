// Package hilbert - the spin-½ configuration space.
//
// A Spin space has n sites, each taking the values -1 (down) or +1 (up).
// An optional constraint pins the total magnetization Σᵢ vᵢ/2 to a fixed
// value, in which case sampling produces exactly the required number of up
// spins and shuffles their placement.
package hilbert

import "math/rand/v2"

// spinLocalStates is the (ascending) local-value set of a spin-½ site.
var spinLocalStates = []float64{-1, 1}

// Spin is a chain of spin-½ sites, optionally at fixed total magnetization.
// The zero value is not usable; construct with NewSpin.
type Spin struct {
	n           int
	constrained bool
	nUp         int // number of +1 sites when constrained
}

// SpinOption configures a Spin space before creation.
type SpinOption func(*spinConfig)

type spinConfig struct {
	constrained bool
	totalSz     float64
}

// WithTotalSz constrains every sampled configuration to total magnetization
// sz (in units of ħ, so sz=0 on four sites means two up and two down).
func WithTotalSz(sz float64) SpinOption {
	return func(c *spinConfig) {
		c.constrained = true
		c.totalSz = sz
	}
}

// NewSpin creates a spin-½ space of n sites.
//
// Returns ErrInvalidSize when n < 1, and ErrInvalidTotalSz when the
// requested magnetization cannot be realized on n sites (out of range or
// incompatible parity).
//
// Complexity: O(1).
func NewSpin(n int, opts ...SpinOption) (*Spin, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	var cfg spinConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Spin{n: n}
	if cfg.constrained {
		// Σ vᵢ = 2·sz must be an integer of the same parity as n.
		twoSz := 2 * cfg.totalSz
		sum := int(twoSz)
		if float64(sum) != twoSz {
			return nil, ErrInvalidTotalSz
		}
		if sum < -n || sum > n || (n+sum)%2 != 0 {
			return nil, ErrInvalidTotalSz
		}
		s.constrained = true
		s.nUp = (n + sum) / 2
	}
	return s, nil
}

// Size reports the number of sites.
func (s *Spin) Size() int { return s.n }

// LocalStates returns {-1, +1}.
func (s *Spin) LocalStates() []float64 {
	out := make([]float64, len(spinLocalStates))
	copy(out, spinLocalStates)
	return out
}

// RandomVals fills v with a random spin configuration. When the space is
// magnetization-constrained, exactly nUp sites are set to +1 and the layout
// is shuffled; otherwise each site is an independent fair coin.
//
// Complexity: O(n).
func (s *Spin) RandomVals(v []float64, rng *rand.Rand) error {
	if rng == nil {
		return ErrNilEngine
	}
	if len(v) != s.n {
		return ErrDimensionMismatch
	}
	if s.constrained {
		for i := range v {
			if i < s.nUp {
				v[i] = 1
			} else {
				v[i] = -1
			}
		}
		rng.Shuffle(s.n, func(i, j int) { v[i], v[j] = v[j], v[i] })
		return nil
	}
	for i := range v {
		v[i] = spinLocalStates[rng.IntN(2)]
	}
	return nil
}

// UpdateConf applies the change-set to v in place. The magnetization
// constraint is a sampling property, not an update invariant: swaps preserve
// it, and callers composing other edits own the bookkeeping.
//
// Complexity: O(k) for k changed sites.
func (s *Spin) UpdateConf(v []float64, tochange []int, newconf []float64) error {
	if err := validateUpdate(s.n, spinLocalStates, v, tochange, newconf); err != nil {
		return err
	}
	applyUpdate(v, tochange, newconf)
	return nil
}
