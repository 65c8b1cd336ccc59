package analytic

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrEmptySignal reports a zero-length input.
var ErrEmptySignal = errors.New("analytic: empty signal")

// PhaseMode selects how the instantaneous phase is taken from the analytic
// signal.
type PhaseMode int

const (
	// HalfRange is atan(quadrature/x), in (-π/2, π/2). Samples where x is 0
	// give ±π/2, or NaN when the quadrature is 0 as well.
	HalfRange PhaseMode = iota
	// FullRange is atan2(quadrature, x), in (-π, π].
	FullRange
)

// Transformer computes analytic signals of a fixed length. It holds FFT work
// buffers and must not be shared between goroutines.
type Transformer struct {
	n    int
	rfft *fourier.FFT
	cfft *fourier.CmplxFFT
	half []complex128
	full []complex128
}

// NewTransformer returns a Transformer for sequences of n samples.
func NewTransformer(n int) (*Transformer, error) {
	if n <= 0 {
		return nil, ErrEmptySignal
	}

	return &Transformer{
		n:    n,
		rfft: fourier.NewFFT(n),
		cfft: fourier.NewCmplxFFT(n),
		half: make([]complex128, n/2+1),
		full: make([]complex128, n),
	}, nil
}

// Len returns the sequence length.
func (t *Transformer) Len() int { return t.n }

// Signal writes the analytic signal x + j·H{x} into dst, which must have
// length Len. dst is returned.
func (t *Transformer) Signal(dst []complex128, x []float64) []complex128 {
	if len(x) != t.n || len(dst) != t.n {
		panic("analytic: length mismatch")
	}

	if t.n == 1 {
		dst[0] = complex(x[0], 0)
		return dst
	}

	t.rfft.Coefficients(t.half, x)

	// Keep DC (and Nyquist for even n) once, double the positive bins and
	// zero the negative ones.
	clear(t.full)
	t.full[0] = t.half[0]

	positive := (t.n + 1) / 2
	for k := 1; k < positive; k++ {
		t.full[k] = 2 * t.half[k]
	}

	if t.n%2 == 0 {
		t.full[t.n/2] = t.half[t.n/2]
	}

	t.cfft.Sequence(dst, t.full)

	scale := complex(1/float64(t.n), 0)
	for i := range dst {
		dst[i] *= scale
	}

	return dst
}

// Quadrature writes the Hilbert transform of x into dst.
func (t *Transformer) Quadrature(dst, x []float64) {
	z := t.Signal(make([]complex128, t.n), x)
	for i, v := range z {
		dst[i] = imag(v)
	}
}

// Phase writes the instantaneous phase of x into dst.
func (t *Transformer) Phase(dst, x []float64, mode PhaseMode) {
	z := t.Signal(make([]complex128, t.n), x)
	for i, v := range z {
		q := imag(v)
		if mode == FullRange {
			dst[i] = math.Atan2(q, x[i])
		} else {
			dst[i] = math.Atan(q / x[i])
		}
	}
}

// Envelope writes |x + j·H{x}| into dst.
func (t *Transformer) Envelope(dst, x []float64) {
	z := t.Signal(make([]complex128, t.n), x)

	re := make([]float64, t.n)
	im := make([]float64, t.n)
	for i, v := range z {
		re[i] = real(v)
		im[i] = imag(v)
	}

	vecmath.Magnitude(dst, re, im)
}

// Signal returns the analytic signal of x.
func Signal(x []float64) ([]complex128, error) {
	t, err := NewTransformer(len(x))
	if err != nil {
		return nil, err
	}

	return t.Signal(make([]complex128, len(x)), x), nil
}

// Quadrature returns the Hilbert transform of x.
func Quadrature(x []float64) ([]float64, error) {
	t, err := NewTransformer(len(x))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	t.Quadrature(out, x)

	return out, nil
}

// Phase returns the instantaneous phase of x.
func Phase(x []float64, mode PhaseMode) ([]float64, error) {
	t, err := NewTransformer(len(x))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	t.Phase(out, x, mode)

	return out, nil
}

// Envelope returns the instantaneous amplitude of x.
func Envelope(x []float64) ([]float64, error) {
	t, err := NewTransformer(len(x))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	t.Envelope(out, x)

	return out, nil
}
