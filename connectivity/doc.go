// Package connectivity computes pairwise functional-connectivity estimates
// between the channels of a multichannel recording.
//
// A recording is a [][]float64 with one row per channel (sensor) and equal
// row lengths. Each metric maps the first `sensors` rows to a sensors×sensors
// connectivity matrix and its strictly upper-triangular vector:
//
//   - PLV: phase-locking value, |mean(exp(jΔφ))|
//   - PLI: phase-lag index, |mean(sign(Δφ))|
//   - CCF: zero-lag Pearson correlation
//   - COH: Welch magnitude-squared coherence averaged over a band
//   - ICOH: imaginary part of coherency averaged over a band
//
// Phases come from the FFT analytic signal as atan(quadrature/x), which
// folds them into (-π/2, π/2). Samples where x is 0 produce ±π/2 or NaN and
// the NaN propagates into the affected cells without an error.
// [WithFullRangePhase] switches to atan2.
//
// [Filter] applies the 10th-order Butterworth band-pass used ahead of the
// phase metrics. It runs causally from zero state, so the first samples of
// every channel carry the filter's start-up transient.
//
// Pairs are evaluated concurrently, one task per matrix row. Results do not
// depend on the worker count.
package connectivity
