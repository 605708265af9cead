// Package machine - the real two-body Jastrow machine.
//
// Jastrow represents log ψ(v) = Σ_{i<k} J_ik·vᵢ·vₖ with a real symmetric
// coupling matrix J (packed upper triangle, zero diagonal). The parameters
// live in nominally complex slots but only their real part is meaningful, so
// the machine is RealProjected and both the log-amplitude and its gradient
// carry exactly zero imaginary parts.
//
// Incremental updates only touch pairs with at least one changed site, so a
// k-site change-set costs O(k·nv) instead of O(nv²).
package machine

import (
	"fmt"

	"github.com/varqlab/wavecheck/hilbert"
)

// Jastrow is a real-projected two-body machine. Instances are safe to read
// concurrently but not while parameters are being replaced.
type Jastrow struct {
	hi    hilbert.Space
	local []float64

	nv int
	j  []complex128 // packed upper triangle of J, imaginary parts pinned to 0

	cod codec
}

// NewJastrow creates a two-body Jastrow machine bound to hi.
//
// Returns ErrInvalidModel (wrapped) when hi is nil or has fewer than two
// sites (a single site admits no pair couplings, hence zero parameters).
//
// Complexity: O(nv²).
func NewJastrow(hi hilbert.Space) (*Jastrow, error) {
	if hi == nil {
		return nil, fmt.Errorf("%w: nil configuration space", ErrInvalidModel)
	}
	nv := hi.Size()
	if nv < 2 {
		return nil, fmt.Errorf("%w: %d sites admit no pair couplings", ErrInvalidModel, nv)
	}
	m := &Jastrow{
		hi:    hi,
		local: hi.LocalStates(),
		nv:    nv,
		j:     make([]complex128, nv*(nv-1)/2),
	}
	m.cod = newCodec(RealProjected, m.j)
	return m, nil
}

// NPar reports the number of free parameters, nv·(nv−1)/2.
func (m *Jastrow) NPar() int { return m.cod.nPar() }

// NVisible reports the number of visible sites.
func (m *Jastrow) NVisible() int { return m.nv }

// Hilbert returns the bound configuration space.
func (m *Jastrow) Hilbert() hilbert.Space { return m.hi }

// Holomorphy reports RealProjected.
func (m *Jastrow) Holomorphy() Holomorphy { return RealProjected }

// Parameters returns a copy of the flat parameter vector; imaginary parts
// are always zero.
func (m *Jastrow) Parameters() []complex128 { return m.cod.get() }

// SetParameters replaces the full parameter vector, all-or-nothing. The
// imaginary part of every entry is dropped.
func (m *Jastrow) SetParameters(p []complex128) error { return m.cod.set(p) }

// pairIndex maps a site pair i<k to its packed upper-triangle slot.
func (m *Jastrow) pairIndex(i, k int) int {
	return i*m.nv - i*(i+1)/2 + (k - i - 1)
}

// coupling returns J_ik for any i≠k.
func (m *Jastrow) coupling(i, k int) float64 {
	if i > k {
		i, k = k, i
	}
	return real(m.j[m.pairIndex(i, k)])
}

// LogVal evaluates log ψ(v) = Σ_{i<k} J_ik·vᵢ·vₖ. The result is purely real.
//
// Complexity: O(nv²).
func (m *Jastrow) LogVal(v []float64) (complex128, error) {
	if err := validateConf(m.hi, v); err != nil {
		return 0, err
	}
	var sum float64
	t := 0
	for i := 0; i < m.nv; i++ {
		for k := i + 1; k < m.nv; k++ {
			sum += real(m.j[t]) * v[i] * v[k]
			t++
		}
	}
	return complex(sum, 0), nil
}

// DerLog evaluates the parameter gradient of LogVal at v: ∂/∂J_ik = vᵢ·vₖ.
// Every component has exactly zero imaginary part.
//
// Complexity: O(nv²).
func (m *Jastrow) DerLog(v []float64) ([]complex128, error) {
	if err := validateConf(m.hi, v); err != nil {
		return nil, err
	}
	der := make([]complex128, 0, m.cod.nPar())
	for i := 0; i < m.nv; i++ {
		for k := i + 1; k < m.nv; k++ {
			der = append(der, complex(v[i]*v[k], 0))
		}
	}
	return der, nil
}

// LogValDiff returns log ψ(v′) − log ψ(v) for each change-set, touching only
// pairs with at least one changed site. v itself is never mutated.
//
// Complexity: O(Σₖ kₖ·nv) over all change-sets.
func (m *Jastrow) LogValDiff(v []float64, changes []Change) ([]complex128, error) {
	if err := validateConf(m.hi, v); err != nil {
		return nil, err
	}
	for _, ch := range changes {
		if err := validateChange(m.hi, m.local, ch); err != nil {
			return nil, err
		}
	}

	diffs := make([]complex128, len(changes))
	for c, ch := range changes {
		var d float64
		for si, s := range ch.Sites {
			dvs := ch.Values[si] - v[s]
			for t := 0; t < m.nv; t++ {
				if t == s {
					continue
				}
				if ti := siteIndex(ch.Sites, t); ti >= 0 {
					// Both endpoints change; count the pair once, at the
					// lower outer site.
					if t < s {
						continue
					}
					d += m.coupling(s, t) * (ch.Values[si]*ch.Values[ti] - v[s]*v[t])
				} else {
					d += m.coupling(s, t) * v[t] * dvs
				}
			}
		}
		diffs[c] = complex(d, 0)
	}
	return diffs, nil
}

// siteIndex returns the position of site in sites, or -1.
func siteIndex(sites []int, site int) int {
	for i, s := range sites {
		if s == site {
			return i
		}
	}
	return -1
}

// Save persists the parameter vector to path.
func (m *Jastrow) Save(path string) error {
	return SaveParameters(path, m.Parameters())
}

// Load restores a parameter vector written by Save.
func (m *Jastrow) Load(path string) error {
	p, err := LoadParameters(path)
	if err != nil {
		return err
	}
	return m.SetParameters(p)
}
