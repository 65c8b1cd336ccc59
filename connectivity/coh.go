package connectivity

import (
	"github.com/cwbudde/algo-fconn/dsp/spectrum"
	"gonum.org/v1/gonum/mat"
)

// COH computes Welch magnitude-squared coherence |Pxy|²/(Pxx·Pyy) between
// every pair of the first sensors channels, averaged over the bins with
// fMin <= f <= fMax. Values lie in [0, 1] and the diagonal is 1.
func COH(sensors int, data [][]float64, fMin, fMax, fs float64, opts ...Option) (*mat.Dense, []float64, error) {
	samples, err := checkSignals(sensors, data)
	if err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts)
	defer cfg.trace(MetricCOH.String(), sensors, samples)()

	cs, err := prepareSpectra(data[:sensors], samples, Band{Low: fMin, High: fMax, SampleRate: fs}, &cfg)
	if err != nil {
		return nil, nil, err
	}

	m := pairMatrix(sensors, cfg.workers, 1, func(i, k int) float64 {
		pxy, pxx, pyy := cs.cross(i, k)

		sum := 0.0
		for b, p := range spectrum.Power(pxy) {
			sum += p / pxx[b] / pyy[b]
		}

		return sum / float64(len(pxy))
	})

	return m, Vector(m), nil
}
