package connectivity

import (
	"math"

	"github.com/cwbudde/algo-fconn/dsp/analytic"
)

// phases returns the instantaneous phase of every row.
func phases(rows [][]float64, cfg *config) ([][]float64, error) {
	out := make([][]float64, len(rows))

	err := forEachRow(len(rows), cfg.workers, func(i int) error {
		t, err := analytic.NewTransformer(len(rows[i]))
		if err != nil {
			return err
		}

		out[i] = make([]float64, len(rows[i]))
		t.Phase(out[i], rows[i], cfg.phase)

		return nil
	})

	return out, err
}

// phasors returns cos(φ) and sin(φ) of every phase row.
func phasors(phase [][]float64, cfg *config) (cos, sin [][]float64) {
	cos = make([][]float64, len(phase))
	sin = make([][]float64, len(phase))

	_ = forEachRow(len(phase), cfg.workers, func(i int) error {
		c := make([]float64, len(phase[i]))
		s := make([]float64, len(phase[i]))

		for t, p := range phase[i] {
			s[t], c[t] = math.Sincos(p)
		}

		cos[i], sin[i] = c, s

		return nil
	})

	return cos, sin
}
