// Package machine - complex ln-cosh kernels shared by the RBM machines.
package machine

import (
	"math"
	"math/cmplx"
)

// lnCoshCutoff bounds |Re z| for the direct ln(cosh z) evaluation; beyond it
// cosh overflows float64 range and the asymptotic form is exact to machine
// precision anyway.
const lnCoshCutoff = 12.0

// lnCosh evaluates ln(cosh z) stably for arbitrary complex z.
// For |Re z| > lnCoshCutoff it uses ln(cosh z) = |z| − ln 2 + ln(1+e^{−2|z|})
// with |z| taken along the dominant real sign.
func lnCosh(z complex128) complex128 {
	if math.Abs(real(z)) <= lnCoshCutoff {
		return cmplx.Log(cmplx.Cosh(z))
	}
	s := z
	if real(z) < 0 {
		s = -z
	}
	return s - complex(math.Ln2, 0) + cmplx.Log(1+cmplx.Exp(-2*s))
}

// sumLnCosh accumulates Σⱼ ln(cosh θⱼ).
func sumLnCosh(theta []complex128) complex128 {
	var sum complex128
	for _, t := range theta {
		sum += lnCosh(t)
	}
	return sum
}

// tanhInto writes tanh(src[j]) into dst[j]. len(dst) must equal len(src).
func tanhInto(dst, src []complex128) {
	for j, t := range src {
		dst[j] = cmplx.Tanh(t)
	}
}
