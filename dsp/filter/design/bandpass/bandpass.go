package bandpass

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-fconn/dsp/filter/biquad"
)

var (
	ErrInvalidBand  = errors.New("bandpass: band must satisfy 0 < low < high < sampleRate/2")
	ErrInvalidOrder = errors.New("bandpass: order must be > 0")
)

// bilinearRate is the normalized rate used for pre-warping and the bilinear
// transform. Working at fs=2 keeps the analog frequencies of order one
// regardless of the actual sample rate.
const bilinearRate = 2.0

// ZPK is a zero/pole/gain description of a filter.
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// Butterworth designs a band-pass Butterworth filter passing [low, high] Hz
// at sampleRate Hz. order is the order of the low-pass prototype, so the
// band-pass has 2*order poles and the cascade has order sections.
// The magnitude response is exactly -3.01 dB at both band edges.
func Butterworth(low, high float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	zpk, err := ButterworthZPK(low, high, order, sampleRate)
	if err != nil {
		return nil, err
	}

	return Sections(zpk), nil
}

// ButterworthZPK returns the digital zero/pole/gain form of [Butterworth].
func ButterworthZPK(low, high float64, order int, sampleRate float64) (ZPK, error) {
	if order <= 0 {
		return ZPK{}, ErrInvalidOrder
	}

	if !(sampleRate > 0) || !(low > 0) || !(low < high) || !(high < sampleRate/2) {
		return ZPK{}, ErrInvalidBand
	}

	w1 := prewarp(low, sampleRate)
	w2 := prewarp(high, sampleRate)

	analog := lowpassToBandpass(prototype(order), math.Sqrt(w1*w2), w2-w1)

	return bilinear(analog), nil
}

// prototype returns the analog Butterworth low-pass prototype with unit
// cutoff: no zeros, poles evenly spaced on the left half of the unit circle.
func prototype(order int) ZPK {
	poles := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		theta := math.Pi * float64(m) / float64(2*order)
		poles = append(poles, -cmplx.Exp(complex(0, theta)))
	}

	return ZPK{Poles: poles, Gain: 1}
}

func prewarp(freq, sampleRate float64) float64 {
	return 2 * bilinearRate * math.Tan(math.Pi*freq/sampleRate)
}

// lowpassToBandpass applies s -> (s^2 + wo^2) / (s*bw) to an analog ZPK.
func lowpassToBandpass(lp ZPK, wo, bw float64) ZPK {
	degree := len(lp.Poles) - len(lp.Zeros)
	wo2 := complex(wo*wo, 0)
	half := complex(bw/2, 0)

	zeros := make([]complex128, 0, 2*len(lp.Zeros)+degree)
	for _, z := range lp.Zeros {
		zs := z * half
		d := cmplx.Sqrt(zs*zs - wo2)
		zeros = append(zeros, zs+d, zs-d)
	}

	for range degree {
		zeros = append(zeros, 0)
	}

	upper := make([]complex128, 0, len(lp.Poles))
	lower := make([]complex128, 0, len(lp.Poles))
	for _, p := range lp.Poles {
		ps := p * half
		d := cmplx.Sqrt(ps*ps - wo2)
		upper = append(upper, ps+d)
		lower = append(lower, ps-d)
	}

	return ZPK{
		Zeros: zeros,
		Poles: append(upper, lower...),
		Gain:  lp.Gain * math.Pow(bw, float64(degree)),
	}
}

// bilinear maps an analog ZPK to the z-plane. Zeros at infinity land on
// z = -1.
func bilinear(a ZPK) ZPK {
	fs2 := complex(2*bilinearRate, 0)
	degree := len(a.Poles) - len(a.Zeros)

	num := complex(1, 0)
	zeros := make([]complex128, 0, len(a.Zeros)+degree)
	for _, z := range a.Zeros {
		zeros = append(zeros, (fs2+z)/(fs2-z))
		num *= fs2 - z
	}

	for range degree {
		zeros = append(zeros, -1)
	}

	den := complex(1, 0)
	poles := make([]complex128, len(a.Poles))
	for i, p := range a.Poles {
		poles[i] = (fs2 + p) / (fs2 - p)
		den *= fs2 - p
	}

	return ZPK{
		Zeros: zeros,
		Poles: poles,
		Gain:  a.Gain * real(num/den),
	}
}
