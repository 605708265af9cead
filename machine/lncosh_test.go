package machine

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLnCoshSmallArguments checks the direct branch against known values.
func TestLnCoshSmallArguments(t *testing.T) {
	require.Equal(t, complex(0, 0), lnCosh(0))

	// ln cosh(1) = ln((e + 1/e)/2).
	want := math.Log((math.E + 1/math.E) / 2)
	got := lnCosh(complex(1, 0))
	require.InDelta(t, want, real(got), 1e-14)
	require.InDelta(t, 0, imag(got), 1e-14)
}

// TestLnCoshAsymptotic checks the large-argument branch against the exact
// asymptotic expansion ln cosh(x) = x − ln 2 + e^{−2x} + O(e^{−4x}).
func TestLnCoshAsymptotic(t *testing.T) {
	for _, x := range []float64{12.5, 30, 250, 700} {
		got := lnCosh(complex(x, 0))
		require.InDelta(t, x-math.Ln2+math.Exp(-2*x), real(got), 1e-10, "x=%g", x)
		require.InDelta(t, 0, imag(got), 1e-14, "x=%g", x)
	}

	// Negative arguments mirror positive ones: cosh is even.
	pos := lnCosh(complex(40, 0.3))
	neg := lnCosh(complex(-40, -0.3))
	require.InDelta(t, real(pos), real(neg), 1e-12)
	require.InDelta(t, imag(pos), imag(neg), 1e-12)
}

// TestLnCoshBranchContinuity checks the two branches agree near the cutoff.
func TestLnCoshBranchContinuity(t *testing.T) {
	for _, im := range []float64{0, 0.7, -1.3} {
		below := lnCosh(complex(lnCoshCutoff-1e-6, im))
		above := lnCosh(complex(lnCoshCutoff+1e-6, im))
		require.InDelta(t, real(below), real(above), 1e-5)
		require.InDelta(t, imag(below), imag(above), 1e-5)
	}
}

// TestLnCoshComplexArguments cross-checks the asymptotic branch against the
// defining identity cosh(lnCosh⁻¹) on moderate complex inputs where the
// direct evaluation is still exact.
func TestLnCoshComplexArguments(t *testing.T) {
	for _, z := range []complex128{
		complex(0.5, 1.1),
		complex(-2, 0.4),
		complex(11, -3),
	} {
		require.InDelta(t, 0, cmplx.Abs(cmplx.Exp(lnCosh(z))-cmplx.Cosh(z)), 1e-9)
	}
}
