package connectivity

import (
	"github.com/cwbudde/algo-fconn/dsp/core"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// CCF computes the zero-lag Pearson correlation between every pair of the
// first sensors channels. Values are clipped to [-1, 1] and the diagonal is
// 1. Constant channels give NaN.
func CCF(sensors int, data [][]float64, opts ...Option) (*mat.Dense, []float64, error) {
	samples, err := checkSignals(sensors, data)
	if err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts)
	defer cfg.trace(MetricCCF.String(), sensors, samples)()

	m := pairMatrix(sensors, cfg.workers, 1, func(i, k int) float64 {
		return clip(stat.Correlation(data[i], data[k], nil))
	})

	return m, Vector(m), nil
}

// clip limits x to [-1, 1]. NaN passes through.
func clip(x float64) float64 {
	return core.Clamp(x, -1, 1)
}
