package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the z-plane poles of the section denominator
// 1 + A1*z^-1 + A2*z^-2.
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section numerator
// B0 + B1*z^-1 + B2*z^-2.
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// MaxPoleRadius returns the largest pole magnitude over all sections.
// A cascade is stable when the result is below 1.
func MaxPoleRadius(coeffs []Coefficients) float64 {
	maxR := 0.0
	for i := range coeffs {
		for _, p := range coeffs[i].Poles() {
			maxR = math.Max(maxR, cmplx.Abs(p))
		}
	}

	return maxR
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}

		return [2]complex128{complex(-c/b, 0), 0}
	}

	sqrtD := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)

	return [2]complex128{
		(-complex(b, 0) + sqrtD) / den,
		(-complex(b, 0) - sqrtD) / den,
	}
}
