// Package spectrum provides FFT plans and Welch spectral estimation.
//
// Power-of-two transform sizes from 16 up run on algo-fft plans; other sizes fall back
// to gonum's mixed-radix FFT. The Welch estimator follows the conventional
// one-sided, density-scaled, segment-averaged definition, so PSD, CSD and
// magnitude-squared coherence agree with common numerical toolkits.
package spectrum
