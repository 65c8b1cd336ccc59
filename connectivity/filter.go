package connectivity

import (
	"fmt"

	"github.com/cwbudde/algo-fconn/dsp/filter/biquad"
	"github.com/cwbudde/algo-fconn/dsp/filter/design/bandpass"
)

// Filter band-passes every channel of data with a 10th-order Butterworth
// filter between fMin and fMax at sample rate fs.
//
// Each channel runs causally through second-order sections starting from
// zero state. The output has the shape of data and data is not modified.
func Filter(data [][]float64, fMin, fMax, fs float64) ([][]float64, error) {
	return FilterBand(data, Band{Low: fMin, High: fMax, SampleRate: fs})
}

// FilterBand is Filter taking a Band and options. Only WithWorkers and
// WithLogger apply.
func FilterBand(data [][]float64, band Band, opts ...Option) ([][]float64, error) {
	if err := band.Validate(); err != nil {
		return nil, err
	}

	samples, err := checkRows(data)
	if err != nil {
		return nil, err
	}

	sections, err := FilterSections(band)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts)
	defer cfg.trace("filter", len(data), samples)()

	out := make([][]float64, len(data))
	_ = forEachRow(len(data), cfg.workers, func(i int) error {
		row := append([]float64(nil), data[i]...)
		biquad.NewChain(sections).ProcessBlock(row)
		out[i] = row

		return nil
	})

	return out, nil
}

// FilterSections returns the second-order sections Filter applies for band.
func FilterSections(band Band) ([]biquad.Coefficients, error) {
	if err := band.Validate(); err != nil {
		return nil, err
	}

	sections, err := bandpass.Butterworth(band.Low, band.High, FilterOrder, band.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBand, err)
	}

	return sections, nil
}
