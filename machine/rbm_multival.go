// Package machine - the complex RBM over arbitrary finite local-value sets.
//
// RbmMultival one-hot encodes each site: a space with L local states maps
// site i with value s to the single active slot ls·i + index(s) of an
// nv·L-long binary vector ṽ. On ṽ the model is a plain RBM,
// log ψ(v) = a·ṽ + Σⱼ ln cosh(bⱼ + Σₖ Wₖⱼ·ṽₖ), which makes it usable on
// bosonic and other multi-valued spaces where RbmSpin's ±1 encoding does not
// apply. Changing one site moves exactly one active slot, so incremental
// updates subtract the old weight row and add the new one.
package machine

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"

	"github.com/varqlab/wavecheck/hilbert"
)

// RbmMultival is a fully complex RBM over a one-hot encoding of a finite
// local-value set. Instances are not goroutine-safe: evaluation reuses
// internal scratch buffers.
type RbmMultival struct {
	hi    hilbert.Space
	local []float64

	nv, nh, ls int
	confIndex  map[float64]int // local value → one-hot slot offset

	a []complex128 // visible bias over the nv·ls one-hot slots
	b []complex128 // hidden bias
	w *mat.CDense  // (nv·ls)×nh weights

	cod codec

	theta, thetaNew, tanhTheta []complex128 // scratch, length nh
	vtilde                     []float64    // scratch one-hot encoding
}

// NewRbmMultival creates a multi-valued RBM with nHidden hidden units
// bound to hi.
//
// Returns ErrInvalidModel (wrapped) when hi is nil or nHidden < 1.
//
// Complexity: O(nv·ls·nh).
func NewRbmMultival(hi hilbert.Space, nHidden int) (*RbmMultival, error) {
	if hi == nil {
		return nil, fmt.Errorf("%w: nil configuration space", ErrInvalidModel)
	}
	if nHidden < 1 {
		return nil, fmt.Errorf("%w: hidden-unit count %d, want at least 1", ErrInvalidModel, nHidden)
	}

	local := hi.LocalStates()
	nv, ls := hi.Size(), len(local)
	m := &RbmMultival{
		hi:        hi,
		local:     local,
		nv:        nv,
		nh:        nHidden,
		ls:        ls,
		confIndex: make(map[float64]int, ls),
		a:         make([]complex128, nv*ls),
		b:         make([]complex128, nHidden),
		w:         mat.NewCDense(nv*ls, nHidden, nil),
		theta:     make([]complex128, nHidden),
		thetaNew:  make([]complex128, nHidden),
		tanhTheta: make([]complex128, nHidden),
		vtilde:    make([]float64, nv*ls),
	}
	for idx, s := range local {
		m.confIndex[s] = idx
	}
	m.cod = newCodec(Holomorphic, m.a, m.b, m.w.RawCMatrix().Data)
	return m, nil
}

// NPar reports the number of free parameters.
func (m *RbmMultival) NPar() int { return m.cod.nPar() }

// NVisible reports the number of visible sites (before one-hot expansion).
func (m *RbmMultival) NVisible() int { return m.nv }

// NHidden reports the number of hidden units.
func (m *RbmMultival) NHidden() int { return m.nh }

// Hilbert returns the bound configuration space.
func (m *RbmMultival) Hilbert() hilbert.Space { return m.hi }

// Holomorphy reports Holomorphic.
func (m *RbmMultival) Holomorphy() Holomorphy { return Holomorphic }

// Parameters returns a copy of the flat parameter vector.
func (m *RbmMultival) Parameters() []complex128 { return m.cod.get() }

// SetParameters replaces the full parameter vector, all-or-nothing.
func (m *RbmMultival) SetParameters(p []complex128) error { return m.cod.set(p) }

// slot returns the active one-hot slot for site holding value val.
func (m *RbmMultival) slot(site int, val float64) int {
	return m.ls*site + m.confIndex[val]
}

// encode writes the one-hot encoding of v into m.vtilde.
func (m *RbmMultival) encode(v []float64) error {
	for i := range m.vtilde {
		m.vtilde[i] = 0
	}
	for site, val := range v {
		idx, ok := m.confIndex[val]
		if !ok {
			return fmt.Errorf("%w: value %g not in local-value set", ErrInvalidArgument, val)
		}
		m.vtilde[m.ls*site+idx] = 1
	}
	return nil
}

// weightRow returns row k of W as a slice into the matrix backing store.
func (m *RbmMultival) weightRow(k int) []complex128 {
	raw := m.w.RawCMatrix()
	return raw.Data[k*raw.Stride : k*raw.Stride+m.nh]
}

// computeTheta fills dst with θⱼ = bⱼ + Σ_sites W[slot(site,v_site)]ⱼ.
func (m *RbmMultival) computeTheta(v []float64, dst []complex128) {
	copy(dst, m.b)
	for site, val := range v {
		cmplxs.Add(dst, m.weightRow(m.slot(site, val)))
	}
}

// LogVal evaluates log ψ(v) = a·ṽ + Σⱼ ln cosh θⱼ.
//
// Complexity: O(nv·nh).
func (m *RbmMultival) LogVal(v []float64) (complex128, error) {
	if err := validateConf(m.hi, v); err != nil {
		return 0, err
	}
	if err := m.encode(v); err != nil {
		return 0, err
	}
	m.computeTheta(v, m.theta)
	sum := sumLnCosh(m.theta)
	for site, val := range v {
		sum += m.a[m.slot(site, val)]
	}
	return sum, nil
}

// DerLog evaluates the parameter gradient of LogVal at v, in codec order:
// one-hot visible bias, hidden bias, then weights row by row.
//
// Complexity: O(nv·ls·nh).
func (m *RbmMultival) DerLog(v []float64) ([]complex128, error) {
	if err := validateConf(m.hi, v); err != nil {
		return nil, err
	}
	if err := m.encode(v); err != nil {
		return nil, err
	}
	m.computeTheta(v, m.theta)
	tanhInto(m.tanhTheta, m.theta)

	der := make([]complex128, 0, m.cod.nPar())
	for _, vt := range m.vtilde {
		der = append(der, complex(vt, 0))
	}
	der = append(der, m.tanhTheta...)
	for _, vt := range m.vtilde {
		if vt == 0 {
			der = append(der, make([]complex128, m.nh)...)
			continue
		}
		der = append(der, m.tanhTheta...)
	}
	return der, nil
}

// LogValDiff returns log ψ(v′) − log ψ(v) for each change-set, where v′ is v
// with the change applied. v itself is never mutated.
//
// Complexity: O(nv·nh + Σₖ kₖ·nh) over all change-sets.
func (m *RbmMultival) LogValDiff(v []float64, changes []Change) ([]complex128, error) {
	if err := validateConf(m.hi, v); err != nil {
		return nil, err
	}
	for _, ch := range changes {
		if err := validateChange(m.hi, m.local, ch); err != nil {
			return nil, err
		}
	}
	if err := m.encode(v); err != nil {
		return nil, err
	}

	m.computeTheta(v, m.theta)
	logT := sumLnCosh(m.theta)

	diffs := make([]complex128, len(changes))
	for k, ch := range changes {
		if len(ch.Sites) == 0 {
			continue
		}
		copy(m.thetaNew, m.theta)
		var d complex128
		for s, site := range ch.Sites {
			oldSlot := m.slot(site, v[site])
			newSlot := m.slot(site, ch.Values[s])
			d += m.a[newSlot] - m.a[oldSlot]
			cmplxs.Add(m.thetaNew, m.weightRow(newSlot))
			cmplxs.Sub(m.thetaNew, m.weightRow(oldSlot))
		}
		diffs[k] = d + sumLnCosh(m.thetaNew) - logT
	}
	return diffs, nil
}

// Save persists the parameter vector to path.
func (m *RbmMultival) Save(path string) error {
	return SaveParameters(path, m.Parameters())
}

// Load restores a parameter vector written by Save.
func (m *RbmMultival) Load(path string) error {
	p, err := LoadParameters(path)
	if err != nil {
		return err
	}
	return m.SetParameters(p)
}
