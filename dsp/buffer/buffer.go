package buffer

import "github.com/cwbudde/algo-fconn/dsp/core"

// Buffer wraps a float64 slice with reuse-friendly semantics.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}

	return &Buffer{samples: make([]float64, length)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Contents are unspecified afterwards; call Zero when they matter.
func (b *Buffer) Resize(n int) {
	b.samples = core.EnsureLen(b.samples, n)
}

// Split returns parts consecutive views of length n each. The buffer is
// resized to parts*n first.
func (b *Buffer) Split(parts, n int) [][]float64 {
	b.Resize(parts * n)

	out := make([][]float64, parts)
	for i := range out {
		out[i] = b.samples[i*n : (i+1)*n : (i+1)*n]
	}

	return out
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}
