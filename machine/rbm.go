// Package machine - the complex restricted Boltzmann machine over
// spin-valued sites.
//
// RbmSpin represents log ψ(v) = a·v + Σⱼ ln cosh(θⱼ(v)) with hidden-unit
// activations θⱼ(v) = bⱼ + Σᵢ Wᵢⱼ·vᵢ. All parameters are complex, so the
// machine is holomorphic: ∂logψ/∂aᵢ = vᵢ, ∂logψ/∂bⱼ = tanh θⱼ,
// ∂logψ/∂Wᵢⱼ = vᵢ·tanh θⱼ.
//
// Incremental updates exploit the fact that changing site i shifts every θⱼ
// by Wᵢⱼ·Δvᵢ, so a k-site change-set costs O(k·nh) instead of O(nv·nh).
package machine

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"

	"github.com/varqlab/wavecheck/hilbert"
)

// RbmSpin is a fully complex restricted Boltzmann machine bound to a
// configuration space. Instances are not goroutine-safe: evaluation reuses
// internal scratch buffers.
type RbmSpin struct {
	hi    hilbert.Space
	local []float64

	nv, nh     int
	useA, useB bool
	a          []complex128 // visible bias (zeros when unused)
	b          []complex128 // hidden bias (zeros when unused)
	w          *mat.CDense  // nv×nh weights; nil when nh == 0

	cod codec

	theta, thetaNew, tanhTheta []complex128 // scratch, length nh
}

// RbmOption configures an RbmSpin before creation.
type RbmOption func(*rbmConfig)

type rbmConfig struct {
	alpha       int
	hidden      int
	hiddenSet   bool
	visibleBias bool
	hiddenBias  bool
}

// WithAlpha sets the hidden-unit density: the machine gets alpha·Size()
// hidden units. Ignored when WithHiddenUnits is also given. Default 1.
func WithAlpha(alpha int) RbmOption {
	return func(c *rbmConfig) { c.alpha = alpha }
}

// WithHiddenUnits fixes the hidden-unit count directly.
func WithHiddenUnits(n int) RbmOption {
	return func(c *rbmConfig) { c.hidden = n; c.hiddenSet = true }
}

// WithVisibleBias enables or disables the visible bias a. Default on.
func WithVisibleBias(use bool) RbmOption {
	return func(c *rbmConfig) { c.visibleBias = use }
}

// WithHiddenBias enables or disables the hidden bias b. Default on.
func WithHiddenBias(use bool) RbmOption {
	return func(c *rbmConfig) { c.hiddenBias = use }
}

// NewRbmSpin creates a complex RBM bound to hi.
//
// Returns ErrInvalidModel (wrapped) when hi is nil, the hidden-unit count is
// negative, or the configuration yields zero free parameters.
//
// Complexity: O(nv·nh).
func NewRbmSpin(hi hilbert.Space, opts ...RbmOption) (*RbmSpin, error) {
	if hi == nil {
		return nil, fmt.Errorf("%w: nil configuration space", ErrInvalidModel)
	}
	cfg := rbmConfig{alpha: 1, visibleBias: true, hiddenBias: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	nv := hi.Size()
	nh := cfg.alpha * nv
	if cfg.hiddenSet {
		nh = cfg.hidden
	}
	if nh < 0 {
		return nil, fmt.Errorf("%w: negative hidden-unit count %d", ErrInvalidModel, nh)
	}

	m := &RbmSpin{
		hi:        hi,
		local:     hi.LocalStates(),
		nv:        nv,
		nh:        nh,
		a:         make([]complex128, nv),
		b:         make([]complex128, nh),
		theta:     make([]complex128, nh),
		thetaNew:  make([]complex128, nh),
		tanhTheta: make([]complex128, nh),
	}

	m.useA = cfg.visibleBias
	m.useB = cfg.hiddenBias && nh > 0
	segs := make([][]complex128, 0, 3)
	if m.useA {
		segs = append(segs, m.a)
	}
	if m.useB {
		segs = append(segs, m.b)
	}
	if nh > 0 {
		m.w = mat.NewCDense(nv, nh, nil)
		segs = append(segs, m.w.RawCMatrix().Data)
	}
	m.cod = newCodec(Holomorphic, segs...)
	if m.cod.nPar() == 0 {
		return nil, fmt.Errorf("%w: zero free parameters", ErrInvalidModel)
	}
	return m, nil
}

// NPar reports the number of free parameters.
func (m *RbmSpin) NPar() int { return m.cod.nPar() }

// NVisible reports the number of visible units.
func (m *RbmSpin) NVisible() int { return m.nv }

// NHidden reports the number of hidden units.
func (m *RbmSpin) NHidden() int { return m.nh }

// Hilbert returns the bound configuration space.
func (m *RbmSpin) Hilbert() hilbert.Space { return m.hi }

// Holomorphy reports Holomorphic.
func (m *RbmSpin) Holomorphy() Holomorphy { return Holomorphic }

// Parameters returns a copy of the flat parameter vector.
func (m *RbmSpin) Parameters() []complex128 { return m.cod.get() }

// SetParameters replaces the full parameter vector, all-or-nothing.
func (m *RbmSpin) SetParameters(p []complex128) error { return m.cod.set(p) }

// weightRow returns row i of W as a slice into the matrix backing store.
func (m *RbmSpin) weightRow(i int) []complex128 {
	raw := m.w.RawCMatrix()
	return raw.Data[i*raw.Stride : i*raw.Stride+m.nh]
}

// computeTheta fills dst with θⱼ(v) = bⱼ + Σᵢ Wᵢⱼ·vᵢ.
func (m *RbmSpin) computeTheta(v []float64, dst []complex128) {
	copy(dst, m.b)
	if m.w == nil {
		return
	}
	for i, vi := range v {
		if vi == 0 {
			continue
		}
		cmplxs.AddScaled(dst, complex(vi, 0), m.weightRow(i))
	}
}

// LogVal evaluates log ψ(v) = a·v + Σⱼ ln cosh θⱼ.
//
// Complexity: O(nv·nh).
func (m *RbmSpin) LogVal(v []float64) (complex128, error) {
	if err := validateConf(m.hi, v); err != nil {
		return 0, err
	}
	m.computeTheta(v, m.theta)
	sum := sumLnCosh(m.theta)
	for i, vi := range v {
		sum += m.a[i] * complex(vi, 0)
	}
	return sum, nil
}

// DerLog evaluates the parameter gradient of LogVal at v, in codec order:
// visible bias, hidden bias, then weights row by row.
//
// Complexity: O(nv·nh).
func (m *RbmSpin) DerLog(v []float64) ([]complex128, error) {
	if err := validateConf(m.hi, v); err != nil {
		return nil, err
	}
	m.computeTheta(v, m.theta)
	tanhInto(m.tanhTheta, m.theta)

	der := make([]complex128, 0, m.cod.nPar())
	if m.useA {
		for _, vi := range v {
			der = append(der, complex(vi, 0))
		}
	}
	if m.useB {
		der = append(der, m.tanhTheta...)
	}
	if m.nh > 0 {
		// ∂ log ψ / ∂Wᵢⱼ = vᵢ·tanh θⱼ, row by row to match codec order.
		for _, vi := range v {
			cv := complex(vi, 0)
			for j := 0; j < m.nh; j++ {
				der = append(der, cv*m.tanhTheta[j])
			}
		}
	}
	return der, nil
}

// LogValDiff returns log ψ(v′) − log ψ(v) for each change-set, where v′ is v
// with the change applied. v itself is never mutated.
//
// Complexity: O(nv·nh + Σₖ kₖ·nh) over all change-sets.
func (m *RbmSpin) LogValDiff(v []float64, changes []Change) ([]complex128, error) {
	if err := validateConf(m.hi, v); err != nil {
		return nil, err
	}
	for _, ch := range changes {
		if err := validateChange(m.hi, m.local, ch); err != nil {
			return nil, err
		}
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
			dv := complex(ch.Values[s]-v[site], 0)
			d += m.a[site] * dv
			if m.w != nil {
				cmplxs.AddScaled(m.thetaNew, dv, m.weightRow(site))
			}
		}
		diffs[k] = d + sumLnCosh(m.thetaNew) - logT
	}
	return diffs, nil
}

// Save persists the parameter vector to path.
func (m *RbmSpin) Save(path string) error {
	return SaveParameters(path, m.Parameters())
}

// Load restores a parameter vector written by Save.
func (m *RbmSpin) Load(path string) error {
	p, err := LoadParameters(path)
	if err != nil {
		return err
	}
	return m.SetParameters(p)
}
