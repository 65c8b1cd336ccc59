package connectivity

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ICOH computes imaginary coherence Im(Pxy)/sqrt(Pxx·Pyy) between every pair
// of the first sensors channels, averaged over the bins with
// fMin <= f <= fMax. Values lie in [-1, 1] and the diagonal is 0.
//
// Im(Pyx) = -Im(Pxy), so the matrix is antisymmetric: m[k,i] = -m[i,k].
// The vector holds the upper triangle, i.e. Im(conj(Xi)·Xk) for i < k.
func ICOH(sensors int, data [][]float64, fMin, fMax, fs float64, opts ...Option) (*mat.Dense, []float64, error) {
	samples, err := checkSignals(sensors, data)
	if err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts)
	defer cfg.trace(MetricICOH.String(), sensors, samples)()

	cs, err := prepareSpectra(data[:sensors], samples, Band{Low: fMin, High: fMax, SampleRate: fs}, &cfg)
	if err != nil {
		return nil, nil, err
	}

	m := pairMatrix(sensors, cfg.workers, -1, func(i, k int) float64 {
		pxy, pxx, pyy := cs.cross(i, k)

		sum := 0.0
		for b, c := range pxy {
			sum += imag(c) / math.Sqrt(pxx[b]*pyy[b])
		}

		return sum / float64(len(pxy))
	})

	return m, Vector(m), nil
}
