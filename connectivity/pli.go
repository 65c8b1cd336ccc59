package connectivity

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PLI computes the phase-lag index |mean(sign(φi-φk))| between every pair of
// the first sensors channels. Values lie in [0, 1] and the diagonal is 0.
func PLI(sensors int, data [][]float64, opts ...Option) (*mat.Dense, []float64, error) {
	samples, err := checkSignals(sensors, data)
	if err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts)
	defer cfg.trace(MetricPLI.String(), sensors, samples)()

	phase, err := phases(data[:sensors], &cfg)
	if err != nil {
		return nil, nil, err
	}

	n := float64(samples)

	m := pairMatrix(sensors, cfg.workers, 1, func(i, k int) float64 {
		sum := 0.0
		for t, p := range phase[i] {
			sum += sign(p - phase[k][t])
		}

		return math.Abs(sum) / n
	})

	return m, Vector(m), nil
}

// sign returns -1, 0 or 1, and NaN for NaN.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		// 0 or NaN
		return x * 0
	}
}
