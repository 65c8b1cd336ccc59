package connectivity

import (
	"fmt"
	"math"
)

// FilterOrder is the order of the Butterworth band-pass applied by Filter.
const FilterOrder = 10

// Band is a frequency range at a sample rate, all in Hz.
type Band struct {
	Low        float64
	High       float64
	SampleRate float64
}

// Validate reports ErrInvalidBand unless 0 < Low < High < SampleRate/2.
func (b Band) Validate() error {
	finite := !math.IsInf(b.SampleRate, 0) && !math.IsNaN(b.SampleRate)
	if !finite || !(b.Low > 0) || !(b.Low < b.High) || !(b.High < b.SampleRate/2) {
		return fmt.Errorf("%w: got [%g, %g] Hz at fs=%g Hz", ErrInvalidBand, b.Low, b.High, b.SampleRate)
	}

	return nil
}

// String formats the band as "low-high Hz @ fs Hz".
func (b Band) String() string {
	return fmt.Sprintf("%g-%g Hz @ %g Hz", b.Low, b.High, b.SampleRate)
}
