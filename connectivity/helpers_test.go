package connectivity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

type metricFunc func(sensors int, data [][]float64, opts ...Option) (*mat.Dense, []float64, error)

// allMetrics binds the spectral metrics to a 5-20 Hz band at 250 Hz.
func allMetrics() map[Metric]metricFunc {
	band := Band{Low: 5, High: 20, SampleRate: 250}
	out := make(map[Metric]metricFunc)

	for _, m := range Metrics() {
		out[m] = func(sensors int, data [][]float64, opts ...Option) (*mat.Dense, []float64, error) {
			return Compute(m, sensors, data, band, opts...)
		}
	}

	return out
}

// requireMirrored checks m[k,i] = sign·m[i,k] for every off-diagonal pair.
func requireMirrored(t *testing.T, m *mat.Dense, sign float64) {
	t.Helper()

	n, _ := m.Dims()
	for i := range n {
		for k := i + 1; k < n; k++ {
			require.InDelta(t, sign*m.At(i, k), m.At(k, i), tol, "cell (%d,%d)", i, k)
		}
	}
}

func requireRange(t *testing.T, m *mat.Dense, lo, hi float64) {
	t.Helper()

	n, _ := m.Dims()
	for i := range n {
		for k := range n {
			v := m.At(i, k)
			require.False(t, math.IsNaN(v), "cell (%d,%d) is NaN", i, k)
			require.GreaterOrEqual(t, v, lo-tol, "cell (%d,%d)", i, k)
			require.LessOrEqual(t, v, hi+tol, "cell (%d,%d)", i, k)
		}
	}
}

func requireDiagonal(t *testing.T, m *mat.Dense, want, delta float64) {
	t.Helper()

	n, _ := m.Dims()
	for i := range n {
		require.InDelta(t, want, m.At(i, i), delta, "diagonal %d", i)
	}
}
