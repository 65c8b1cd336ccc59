// Package analytic computes the analytic signal of a real sequence by the
// FFT method and derives instantaneous phase and envelope from it.
//
// The transform works on the whole block at its exact length; no padding is
// applied, so the result is the periodic (circular) analytic signal.
package analytic
