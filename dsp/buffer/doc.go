// Package buffer provides a reusable float64 buffer and a pool of them for
// scratch memory in spectral loops. Callers work on the raw slice returned
// by Samples.
package buffer
