// Package bandpass designs digital band-pass IIR filters as cascades of
// second-order sections.
//
// [Butterworth] follows the classic zero/pole/gain route: an analog
// Butterworth low-pass prototype is pre-warped, shifted to a band-pass,
// mapped to the z-plane with the bilinear transform and finally split into
// biquad sections. The result plugs directly into [biquad.NewChain] or
// [biquad.FilterChannels].
//
// Sections are ordered so that the poles closest to the unit circle come
// last, each section taking the zeros nearest to its poles. This keeps the
// intermediate signal levels well-conditioned for high orders.
package bandpass
