package connectivity

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// PLV computes the phase-locking value |mean(exp(j(φi-φk)))| between every
// pair of the first sensors channels. Values lie in [0, 1] and the diagonal
// is 1.
func PLV(sensors int, data [][]float64, opts ...Option) (*mat.Dense, []float64, error) {
	samples, err := checkSignals(sensors, data)
	if err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts)
	defer cfg.trace(MetricPLV.String(), sensors, samples)()

	phase, err := phases(data[:sensors], &cfg)
	if err != nil {
		return nil, nil, err
	}

	cos, sin := phasors(phase, &cfg)
	n := float64(samples)

	// exp(jφi)·exp(-jφk) summed over time, split into real and imaginary dot
	// products.
	m := pairMatrix(sensors, cfg.workers, 1, func(i, k int) float64 {
		re := vecmath.DotProduct(cos[i], cos[k]) + vecmath.DotProduct(sin[i], sin[k])
		im := vecmath.DotProduct(sin[i], cos[k]) - vecmath.DotProduct(cos[i], sin[k])

		return math.Hypot(re, im) / n
	})

	return m, Vector(m), nil
}
