package connectivity

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fconn/internal/testutil"
	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ShapeAndVector(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 10} {
		data := testutil.NoiseChannels(1, n, 1000, 1)

		for metric, fn := range allMetrics() {
			m, vec, err := fn(n, data)
			require.NoError(t, err, metric.String())

			r, c := m.Dims()
			require.Equal(t, n, r, metric.String())
			require.Equal(t, n, c, metric.String())
			require.Len(t, vec, n*(n-1)/2, metric.String())
			require.Equal(t, Vector(m), vec, metric.String())
		}
	}
}

func TestMetrics_ScenarioC(t *testing.T) {
	t.Parallel()

	data := testutil.NoiseChannels(3, 3, 800, 1)

	for metric, fn := range allMetrics() {
		m, vec, err := fn(3, data)
		require.NoError(t, err, metric.String())
		require.Equal(t, []float64{m.At(0, 1), m.At(0, 2), m.At(1, 2)}, vec, metric.String())
	}
}

func TestMetrics_RangesDiagonalsSymmetry(t *testing.T) {
	t.Parallel()

	data := testutil.NoiseChannels(5, 6, 1500, 1)
	// Correlated neighbours so the off-diagonal values are not all near 0.
	data[1] = testutil.Mix(data[1], data[0], 0.8)
	data[3] = testutil.Mix(data[3], data[2], -1.5)

	tests := []struct {
		metric   Metric
		lo, hi   float64
		diagonal float64
		mirror   float64
	}{
		{MetricPLV, 0, 1, 1, 1},
		{MetricPLI, 0, 1, 0, 1},
		{MetricCCF, -1, 1, 1, 1},
		{MetricCOH, 0, 1, 1, 1},
		{MetricICOH, -1, 1, 0, -1},
	}

	fns := allMetrics()
	for _, tt := range tests {
		t.Run(tt.metric.String(), func(t *testing.T) {
			m, _, err := fns[tt.metric](6, data)
			require.NoError(t, err)

			requireRange(t, m, tt.lo, tt.hi)
			requireDiagonal(t, m, tt.diagonal, 1e-9)
			requireMirrored(t, m, tt.mirror)
		})
	}
}

func TestMetrics_SerialEqualsParallel(t *testing.T) {
	t.Parallel()

	data := testutil.NoiseChannels(9, 8, 1200, 1)

	for metric, fn := range allMetrics() {
		serial, _, err := fn(8, data, WithWorkers(1))
		require.NoError(t, err)

		parallel, _, err := fn(8, data, WithWorkers(8))
		require.NoError(t, err)

		require.Equal(t, serial.RawMatrix().Data, parallel.RawMatrix().Data, metric.String())
	}
}

func TestMetrics_SensorSubset(t *testing.T) {
	t.Parallel()

	data := testutil.NoiseChannels(13, 5, 600, 1)

	for metric, fn := range allMetrics() {
		sub, _, err := fn(3, data)
		require.NoError(t, err)

		direct, _, err := fn(3, data[:3])
		require.NoError(t, err)

		require.Equal(t, direct.RawMatrix().Data, sub.RawMatrix().Data, metric.String())
	}
}

func TestMetrics_InputNotModified(t *testing.T) {
	t.Parallel()

	data := testutil.NoiseChannels(17, 3, 500, 1)
	orig := make([][]float64, len(data))
	for i := range data {
		orig[i] = append([]float64(nil), data[i]...)
	}

	for _, fn := range allMetrics() {
		_, _, err := fn(3, data)
		require.NoError(t, err)
	}

	require.Equal(t, orig, data)
}

// Scenario A: identical in-band sinusoids after filtering.
func TestScenarioA_IdenticalSinusoids(t *testing.T) {
	t.Parallel()

	const fs = 250.0

	raw := testutil.SineChannels(10, fs, 2000, 0.3, 0.3)
	data, err := Filter(raw, 5, 20, fs)
	require.NoError(t, err)

	plv, _, err := PLV(2, data)
	require.NoError(t, err)
	assert.InDelta(t, 1, plv.At(0, 1), 1e-9)

	ccf, _, err := CCF(2, data)
	require.NoError(t, err)
	assert.InDelta(t, 1, ccf.At(0, 1), 1e-9)

	coh, _, err := COH(2, data, 5, 20, fs)
	require.NoError(t, err)
	assert.InDelta(t, 1, coh.At(0, 1), 1e-9)

	pli, _, err := PLI(2, data)
	require.NoError(t, err)
	assert.Zero(t, pli.At(0, 1))
}

// Scenario B: independent white noise.
func TestScenarioB_IndependentNoise(t *testing.T) {
	t.Parallel()

	data := testutil.NoiseChannels(101, 2, 8000, 1)

	ccf, _, err := CCF(2, data)
	require.NoError(t, err)
	assert.Less(t, math.Abs(ccf.At(0, 1)), 0.05)

	full, _, err := PLV(2, data, WithFullRangePhase())
	require.NoError(t, err)
	assert.Less(t, full.At(0, 1), 0.05)

	// Half-range phases are uniform on (-π/2, π/2), so independent channels
	// settle at |E[exp(jφ)]|² = (2/π)².
	half, _, err := PLV(2, data)
	require.NoError(t, err)
	assert.InDelta(t, 4/(math.Pi*math.Pi), half.At(0, 1), 0.03)

	pli, _, err := PLI(2, data)
	require.NoError(t, err)
	assert.Less(t, pli.At(0, 1), 0.05)

	coh, _, err := COH(2, data, 5, 20, 250)
	require.NoError(t, err)
	assert.Less(t, coh.At(0, 1), 0.1)
}

func TestPLV_ConstantPhaseLag(t *testing.T) {
	t.Parallel()

	// Whole periods keep the FFT analytic signal exact.
	data := testutil.SineChannels(10, 250, 1000, 0, 0.7, 2.1)

	m, _, err := PLV(3, data, WithFullRangePhase())
	require.NoError(t, err)

	for _, v := range Vector(m) {
		assert.InDelta(t, 1, v, 1e-9)
	}
}

func TestPhaseMetrics_NaNPropagation(t *testing.T) {
	t.Parallel()

	data := testutil.NoiseChannels(23, 2, 256, 1)
	data = append(data, make([]float64, 256))

	for _, fn := range []metricFunc{PLV, PLI} {
		m, _, err := fn(3, data)
		require.NoError(t, err)

		assert.False(t, math.IsNaN(m.At(0, 1)))
		assert.True(t, math.IsNaN(m.At(0, 2)))
		assert.True(t, math.IsNaN(m.At(2, 1)))
		assert.True(t, math.IsNaN(m.At(2, 2)))
	}
}

func TestCCF_MatchesReference(t *testing.T) {
	t.Parallel()

	data := testutil.NoiseChannels(31, 4, 700, 2)
	data[2] = testutil.Mix(data[2], data[1], 0.6)

	m, _, err := CCF(4, data)
	require.NoError(t, err)

	for i := range 4 {
		for k := range 4 {
			want, err := stats.Pearson(data[i], data[k])
			require.NoError(t, err)
			assert.InDelta(t, want, m.At(i, k), 1e-9, "cell (%d,%d)", i, k)
		}
	}
}

func TestCCF_ConstantChannelIsNaN(t *testing.T) {
	t.Parallel()

	data := [][]float64{{1, 2, 3, 4}, {5, 5, 5, 5}}

	m, _, err := CCF(2, data)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m.At(0, 1)))
}

func TestICOH_ZeroLagAndQuadrature(t *testing.T) {
	t.Parallel()

	const fs = 250.0

	x := testutil.GaussianNoise(41, 1, 4000)

	// Scaled copy: instantaneous mixing has a real cross spectrum.
	m, _, err := ICOH(2, [][]float64{x, testutil.Mix(make([]float64, len(x)), x, 2)}, 5, 20, fs)
	require.NoError(t, err)
	assert.InDelta(t, 0, m.At(0, 1), tol)

	coh, _, err := COH(2, [][]float64{x, testutil.Mix(make([]float64, len(x)), x, 2)}, 5, 20, fs)
	require.NoError(t, err)
	assert.InDelta(t, 1, coh.At(0, 1), 1e-9)

	// cos leads sin by a quarter period: Pxy is positive imaginary.
	sin := testutil.Mix(testutil.Sine(10, fs, 1, 0, 4000), testutil.GaussianNoise(42, 0.1, 4000), 1)
	cos := testutil.Mix(testutil.Sine(10, fs, 1, math.Pi/2, 4000), testutil.GaussianNoise(43, 0.1, 4000), 1)

	q, _, err := ICOH(2, [][]float64{sin, cos}, 8, 12, fs)
	require.NoError(t, err)
	assert.Greater(t, q.At(0, 1), 0.5)
	assert.InDelta(t, -q.At(0, 1), q.At(1, 0), tol)
}

func TestSign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, sign(0.3))
	assert.Equal(t, -1.0, sign(-2))
	assert.Zero(t, sign(0))
	assert.True(t, math.IsNaN(sign(math.NaN())))
}

func TestClip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, clip(1+1e-15))
	assert.Equal(t, -1.0, clip(-1-1e-15))
	assert.Equal(t, 0.25, clip(0.25))
	assert.True(t, math.IsNaN(clip(math.NaN())))
}
