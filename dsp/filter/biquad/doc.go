// Package biquad provides the second-order-section (SOS) runtime used to
// apply IIR designs to EEG channels.
//
// A [Section] implements Direct Form II Transposed processing for one
// second-order section defined by [Coefficients]. A [Chain] cascades
// sections for higher-order designs such as the 10th-order Butterworth
// band-pass produced by dsp/filter/design/bandpass. Every chain starts from
// zero state, so the causal start-up transient of a filter is reproduced
// exactly.
//
// Coefficient design lives in dsp/filter/design.
package biquad
