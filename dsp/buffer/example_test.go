package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-fconn/dsp/buffer"
)

func ExampleBuffer_Split() {
	b := buffer.New(0)
	parts := b.Split(2, 3)
	copy(parts[0], []float64{1, 2, 3})
	copy(parts[1], []float64{4, 5, 6})

	fmt.Println(b.Samples())

	// Output:
	// [1 2 3 4 5 6]
}
