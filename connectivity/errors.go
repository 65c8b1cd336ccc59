package connectivity

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the kind of every invalid-parameter error.
	ErrConfiguration = errors.New("connectivity: invalid configuration")
	// ErrInput is the kind of every error caused by the signal matrix.
	ErrInput = errors.New("connectivity: invalid input")
)

var (
	// ErrInvalidBand reports a band outside 0 < fMin < fMax < fs/2.
	ErrInvalidBand = fmt.Errorf("%w: band must satisfy 0 < fMin < fMax < fs/2", ErrConfiguration)
	// ErrInvalidSegment reports an unusable spectral segment, overlap or window.
	ErrInvalidSegment = fmt.Errorf("%w: invalid spectral segment settings", ErrConfiguration)

	// ErrTooFewSensors reports fewer than two sensors.
	ErrTooFewSensors = fmt.Errorf("%w: at least 2 sensors required", ErrInput)
	// ErrSensorCount reports more sensors than channels in the data.
	ErrSensorCount = fmt.Errorf("%w: sensors exceeds channel count", ErrInput)
	// ErrEmptySignal reports channels without samples.
	ErrEmptySignal = fmt.Errorf("%w: empty signal", ErrInput)
	// ErrRaggedSignal reports channels of different lengths.
	ErrRaggedSignal = fmt.Errorf("%w: channels differ in length", ErrInput)
	// ErrSegmentTooLong reports an explicit segment length above the sample count.
	ErrSegmentTooLong = fmt.Errorf("%w: segment length exceeds samples", ErrInput)
	// ErrEmptyBand reports a band that contains no frequency bin at the
	// available spectral resolution.
	ErrEmptyBand = fmt.Errorf("%w: no frequency bin inside band", ErrInput)
)

// checkSignals validates the first sensors rows of data and returns their
// common length.
func checkSignals(sensors int, data [][]float64) (int, error) {
	if sensors < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewSensors, sensors)
	}

	if sensors > len(data) {
		return 0, fmt.Errorf("%w: %d sensors, %d channels", ErrSensorCount, sensors, len(data))
	}

	return checkRows(data[:sensors])
}

func checkRows(rows [][]float64) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: no channels", ErrEmptySignal)
	}

	samples := len(rows[0])
	for i, row := range rows {
		if len(row) != samples {
			return 0, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d", ErrRaggedSignal, i, len(row), samples)
		}
	}

	if samples == 0 {
		return 0, ErrEmptySignal
	}

	return samples, nil
}
