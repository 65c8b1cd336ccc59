package spectrum

import "errors"

var (
	// ErrInvalidSampleRate reports a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be > 0")
	// ErrInvalidSegment reports an unusable segment length or overlap.
	ErrInvalidSegment = errors.New("spectrum: invalid segment length or overlap")
	// ErrInvalidSize reports a non-positive transform size.
	ErrInvalidSize = errors.New("spectrum: FFT size must be > 0")
	// ErrEmptySignal reports a zero-length input.
	ErrEmptySignal = errors.New("spectrum: empty signal")
	// ErrLengthMismatch reports inputs of different lengths or layouts.
	ErrLengthMismatch = errors.New("spectrum: length mismatch")
	// ErrEmptyBand reports a frequency range that contains no bin.
	ErrEmptyBand = errors.New("spectrum: no frequency bin in band")
)
