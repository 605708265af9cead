// Package machine - seeded Gaussian parameter initialization.
package machine

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/varqlab/wavecheck/hilbert"
)

// InitRandomParameters assigns m a parameter vector whose real and imaginary
// parts are drawn independently from N(0, sigma²), using a deterministic
// engine derived from seed (seed==0 selects the fixed default stream). The
// same seed and sigma always reproduce the same parameters.
//
// Complexity: O(NPar).
func InitRandomParameters(m Machine, seed int64, sigma float64) error {
	if m == nil {
		return fmt.Errorf("%w: nil machine", ErrInvalidArgument)
	}
	if sigma <= 0 {
		return fmt.Errorf("%w: sigma %g, want positive", ErrInvalidArgument, sigma)
	}
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: hilbert.NewSource(hilbert.NewEngine(seed))}
	p := make([]complex128, m.NPar())
	for i := range p {
		p[i] = complex(dist.Rand(), dist.Rand())
	}
	return m.SetParameters(p)
}
