package spectrum

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// BandRange returns the half-open index range [lo, hi) of the ascending
// freqs that satisfy fMin <= f <= fMax.
func BandRange(freqs []float64, fMin, fMax float64) (lo, hi int, err error) {
	lo = sort.SearchFloat64s(freqs, fMin)
	hi = sort.Search(len(freqs), func(i int) bool { return freqs[i] > fMax })

	if lo >= hi {
		return 0, 0, fmt.Errorf("%w: [%g, %g] Hz", ErrEmptyBand, fMin, fMax)
	}

	return lo, hi, nil
}

// BandMean averages values over the bins of freqs inside [fMin, fMax].
func BandMean(freqs, values []float64, fMin, fMax float64) (float64, error) {
	if len(freqs) != len(values) {
		return 0, fmt.Errorf("%w: %d freqs, %d values", ErrLengthMismatch, len(freqs), len(values))
	}

	lo, hi, err := BandRange(freqs, fMin, fMax)
	if err != nil {
		return 0, err
	}

	return vecmath.Sum(values[lo:hi]) / float64(hi-lo), nil
}
