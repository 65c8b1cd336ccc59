package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-fconn/dsp/filter/biquad"
)

func ExampleSection_ProcessSample() {
	s := biquad.NewSection(biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	})

	for i := range 4 {
		var x float64
		if i == 0 {
			x = 1
		}

		fmt.Printf("y[%d] = %.4f\n", i, s.ProcessSample(x))
	}
	// Output:
	// y[0] = 0.2500
	// y[1] = 0.5500
	// y[2] = 0.3500
	// y[3] = 0.0480
}

func ExampleFilterChannels() {
	coeffs := []biquad.Coefficients{{B0: 0.5, B1: 0.5}}
	out := biquad.FilterChannels(coeffs, [][]float64{
		{1, 1, 1},
		{2, 0, 2},
	})

	fmt.Println(out[0])
	fmt.Println(out[1])
	// Output:
	// [0.5 1 1]
	// [1 1 1]
}
