// Package testutil provides deterministic multichannel signals and
// tolerance checks shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine generates amplitude·sin(2π·f·n/fs + phase).
func Sine(freqHz, sampleRate, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out
}

// GaussianNoise generates zero-mean white noise with standard deviation
// sigma and a fixed seed.
func GaussianNoise(seed int64, sigma float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64() * sigma
	}
	return out
}

// NoiseChannels returns sensors independent Gaussian channels. Channel i
// uses seed+i.
func NoiseChannels(seed int64, sensors, samples int, sigma float64) [][]float64 {
	out := make([][]float64, sensors)
	for i := range out {
		out[i] = GaussianNoise(seed+int64(i), sigma, samples)
	}
	return out
}

// SineChannels returns one unit sine per phase offset, all at freqHz.
func SineChannels(freqHz, sampleRate float64, samples int, phases ...float64) [][]float64 {
	out := make([][]float64, len(phases))
	for i, p := range phases {
		out[i] = Sine(freqHz, sampleRate, 1, p, samples)
	}
	return out
}

// Mix returns a + gain·b.
func Mix(a, b []float64, gain float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		out[i] = a[i] + gain*b[i]
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
