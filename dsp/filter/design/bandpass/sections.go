package bandpass

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-fconn/dsp/filter/biquad"
)

// Sections converts a digital ZPK with conjugate-symmetric poles and real or
// conjugate zeros into second-order sections. The section holding the pole
// closest to the unit circle is placed last, and the gain is folded into the
// numerator of the first section.
func Sections(zpk ZPK) []biquad.Coefficients {
	poles := upperHalf(zpk.Poles)
	zeros := upperHalf(zpk.Zeros)

	n := (max(len(zpk.Poles), len(zpk.Zeros)) + 1) / 2
	sections := make([]biquad.Coefficients, n)

	for si := n - 1; si >= 0; si-- {
		var p1, p2 complex128
		p1, poles = takeWorstPole(poles)
		if isReal(p1) {
			p2, poles = takeNearest(poles, p1, true)
		} else {
			p2 = cmplx.Conj(p1)
		}

		var z1, z2 complex128
		z1, zeros = takeNearest(zeros, p1, false)
		if isReal(z1) {
			z2, zeros = takeNearest(zeros, p1, true)
		} else {
			z2 = cmplx.Conj(z1)
		}

		sections[si] = biquad.Coefficients{
			B0: 1,
			B1: -real(z1 + z2),
			B2: real(z1 * z2),
			A1: -real(p1 + p2),
			A2: real(p1 * p2),
		}
	}

	if n > 0 {
		sections[0].B0 *= zpk.Gain
		sections[0].B1 *= zpk.Gain
		sections[0].B2 *= zpk.Gain
	}

	return sections
}

// upperHalf keeps real roots and one representative (positive imaginary
// part) of every conjugate pair.
func upperHalf(roots []complex128) []complex128 {
	out := make([]complex128, 0, len(roots))
	for _, r := range roots {
		switch {
		case isReal(r):
			out = append(out, complex(real(r), 0))
		case imag(r) > 0:
			out = append(out, r)
		}
	}

	return out
}

func isReal(r complex128) bool {
	return math.Abs(imag(r)) <= 100*epsilon*math.Max(1, cmplx.Abs(r))
}

const epsilon = 2.220446049250313e-16

func takeWorstPole(poles []complex128) (complex128, []complex128) {
	best := 0
	bestDist := math.Inf(1)
	for i, p := range poles {
		if d := math.Abs(1 - cmplx.Abs(p)); d < bestDist {
			best, bestDist = i, d
		}
	}

	p := poles[best]

	return p, append(poles[:best], poles[best+1:]...)
}

// takeNearest removes and returns the root nearest to target. A missing root
// (odd counts) is reported as 0, which turns the section into first order.
func takeNearest(roots []complex128, target complex128, realOnly bool) (complex128, []complex128) {
	best := -1
	bestDist := math.Inf(1)
	for i, r := range roots {
		if realOnly && !isReal(r) {
			continue
		}

		if d := cmplx.Abs(r - target); d < bestDist {
			best, bestDist = i, d
		}
	}

	if best < 0 {
		return 0, roots
	}

	r := roots[best]

	return r, append(roots[:best], roots[best+1:]...)
}
