package hilbert_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/varqlab/wavecheck/hilbert"
)

// TestSourceForwardsEngineStream verifies the adapter yields exactly the
// wrapped engine's stream and that Seed does not disturb it.
func TestSourceForwardsEngineStream(t *testing.T) {
	want := hilbert.NewEngine(7)
	src := hilbert.NewSource(hilbert.NewEngine(7))

	for i := 0; i < 16; i++ {
		if i == 8 {
			src.Seed(99)
		}
		require.Equal(t, want.Uint64(), src.Uint64())
	}
}

// TestSourceDrivesDistributions verifies the adapter plugs into gonum's
// distributions and that equal seeds reproduce the same draws.
func TestSourceDrivesDistributions(t *testing.T) {
	a := distuv.Normal{Mu: 0, Sigma: 1, Src: hilbert.NewSource(hilbert.NewEngine(5))}
	b := distuv.Normal{Mu: 0, Sigma: 1, Src: hilbert.NewSource(hilbert.NewEngine(5))}

	for i := 0; i < 8; i++ {
		require.Equal(t, a.Rand(), b.Rand())
	}
}
