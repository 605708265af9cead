// Package hilbert_test provides runnable examples for the configuration
// spaces. Each example is runnable via “go test -run Example”.
package hilbert_test

import (
	"fmt"

	"github.com/varqlab/wavecheck/hilbert"
)

// ExampleNewSpin demonstrates a magnetization-constrained spin space and an
// in-place two-site swap.
func ExampleNewSpin() {
	// Four spin-½ sites pinned to zero total magnetization.
	sp, err := hilbert.NewSpin(4, hilbert.WithTotalSz(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("sites:", sp.Size())
	fmt.Println("local states:", sp.LocalStates())

	// Swap the values of sites 0 and 2.
	v := []float64{1, 1, -1, -1}
	if err = sp.UpdateConf(v, []int{0, 2}, []float64{-1, 1}); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("after swap:", v)
	// Output:
	// sites: 4
	// local states: [-1 1]
	// after swap: [-1 1 1 -1]
}

// ExampleNewBoson demonstrates the bounded-occupation local-value set.
func ExampleNewBoson() {
	b, err := hilbert.NewBoson(3, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("sites:", b.Size())
	fmt.Println("local states:", b.LocalStates())
	// Output:
	// sites: 3
	// local states: [0 1 2]
}
