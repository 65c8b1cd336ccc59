package spectrum

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT is a forward complex transform of fixed size. The output is
// unnormalised: X[k] = sum x[n] exp(-2πikn/N).
//
// An FFT holds scratch state and must not be shared between goroutines.
type FFT struct {
	n     int
	plan  *algofft.Plan[complex128]
	mixed *fourier.CmplxFFT
}

// NewFFT returns a plan for size n.
func NewFFT(n int) (*FFT, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	f := &FFT{n: n}

	if n >= minPlanSize && isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("spectrum: FFT plan %d: %w", n, err)
		}

		f.plan = plan

		return f, nil
	}

	f.mixed = fourier.NewCmplxFFT(n)

	return f, nil
}

// Len returns the transform size.
func (f *FFT) Len() int { return f.n }

// Backend names the implementation serving this size.
func (f *FFT) Backend() string {
	if f.plan != nil {
		return "algo-fft"
	}

	return "gonum"
}

// Forward computes the DFT of src into dst. Both must have length Len.
func (f *FFT) Forward(dst, src []complex128) error {
	if len(dst) != f.n || len(src) != f.n {
		return fmt.Errorf("%w: FFT size %d, dst %d, src %d", ErrLengthMismatch, f.n, len(dst), len(src))
	}

	if f.plan != nil {
		return f.plan.Forward(dst, src)
	}

	f.mixed.Coefficients(dst, src)

	return nil
}

// minPlanSize is the smallest size handed to algo-fft.
const minPlanSize = 16

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
