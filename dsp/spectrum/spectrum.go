package spectrum

import (
	"github.com/cwbudde/algo-fconn/dsp/buffer"
	"github.com/cwbudde/algo-vecmath"
)

var scratch = buffer.NewPool()

// getScratch returns three pooled views of length n for complex-to-real
// unpacking and the per-bin result.
func getScratch(n int) (re, im, out []float64, buf *buffer.Buffer) {
	buf = scratch.Get(0)
	parts := buf.Split(3, n)

	return parts[0], parts[1], parts[2], buf
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, _, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratch.Put(buf)

	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	AccumulatePower(out, in)

	return out
}

// AccumulatePower adds |X[k]|^2 to dst[k]. dst must be at least len(in).
func AccumulatePower(dst []float64, in []complex128) {
	if len(in) == 0 {
		return
	}

	re, im, pow, buf := getScratch(len(in))
	defer scratch.Put(buf)

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(pow, re, im)
	vecmath.AddBlockInPlace(dst[:len(in)], pow)
}
