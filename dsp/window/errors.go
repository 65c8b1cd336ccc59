package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength reports a non-positive window length.
	ErrInvalidLength = errors.New("window: length must be > 0")
	// ErrUnknownType reports a Type outside the supported set.
	ErrUnknownType = errors.New("window: unknown type")

	errEmptyCoeffs      = errors.New("window: coefficients must not be empty")
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
	errMismatchedLength = errors.New("window: samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}

	return nil
}
