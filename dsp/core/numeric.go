package core

import "math"

// Clamp limits value to the inclusive range [min, max]. NaN passes through.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// LinearToDB converts an amplitude ratio to dB. Zero gives -Inf and negative
// ratios give NaN.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	return 20 * math.Log10(linear)
}
