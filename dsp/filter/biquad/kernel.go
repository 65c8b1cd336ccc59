package biquad

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// kernelFn runs one section over buf in place and returns the final state.
type kernelFn func(c Coefficients, d0, d1 float64, buf []float64) (float64, float64)

type kernelEntry struct {
	name  string
	level cpu.SIMDLevel
	fn    kernelFn
}

// kernels is ordered by preference. The recursion is serial, so wider
// targets only get a deeper unroll for better instruction-level parallelism.
var kernels = []kernelEntry{
	{name: "unroll4-avx2", level: cpu.SIMDAVX2, fn: processBlock4},
	{name: "unroll4-neon", level: cpu.SIMDNEON, fn: processBlock4},
	{name: "unroll2", level: cpu.SIMDNone, fn: processBlock2},
}

var (
	selectedKernel kernelFn
	selectedName   string
	kernelOnce     sync.Once
)

func blockKernel() kernelFn {
	kernelOnce.Do(func() {
		e := lookupKernel(cpu.DetectFeatures())
		selectedKernel, selectedName = e.fn, e.name
	})

	return selectedKernel
}

func lookupKernel(f cpu.Features) kernelEntry {
	for _, e := range kernels {
		if cpu.Supports(f, e.level) {
			return e
		}
	}

	return kernels[len(kernels)-1]
}

// KernelName reports which block kernel ProcessBlock dispatches to.
func KernelName() string {
	blockKernel()
	return selectedName
}

func processBlock2(c Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0n
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}

func processBlock4(c Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	i := 0
	n := len(buf)
	for ; i+3 < n; i += 4 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		e0 := b1*x0 - a1*y0 + d1
		f0 := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + e0
		e1 := b1*x1 - a1*y1 + f0
		f1 := b2*x1 - a2*y1

		x2 := buf[i+2]
		y2 := b0*x2 + e1
		e2 := b1*x2 - a1*y2 + f1
		f2 := b2*x2 - a2*y2

		x3 := buf[i+3]
		y3 := b0*x3 + e2
		d0 = b1*x3 - a1*y3 + f2
		d1 = b2*x3 - a2*y3

		buf[i] = y0
		buf[i+1] = y1
		buf[i+2] = y2
		buf[i+3] = y3
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}
