package connectivity

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fconn/dsp/spectrum"
)

// channelSpectra holds the cached Welch segments and auto spectrum of every
// channel plus the bin range of the band.
type channelSpectra struct {
	segments []*spectrum.Segments
	power    [][]float64
	lo, hi   int
}

// prepareSpectra validates the band and computes each channel's segments
// and auto spectrum once.
func prepareSpectra(rows [][]float64, samples int, band Band, cfg *config) (*channelSpectra, error) {
	if err := band.Validate(); err != nil {
		return nil, err
	}

	w, err := cfg.welch(band.SampleRate, samples)
	if err != nil {
		return nil, err
	}

	cs := &channelSpectra{
		segments: make([]*spectrum.Segments, len(rows)),
		power:    make([][]float64, len(rows)),
	}

	err = forEachRow(len(rows), cfg.workers, func(i int) error {
		s, err := w.Segments(rows[i])
		if err != nil {
			return fmt.Errorf("channel %d: %w", i, err)
		}

		cs.segments[i] = s
		cs.power[i] = spectrum.PowerFromSegments(s)

		return nil
	})
	if err != nil {
		return nil, mapSpectrumError(err)
	}

	cs.lo, cs.hi, err = spectrum.BandRange(cs.segments[0].Freqs, band.Low, band.High)
	if err != nil {
		return nil, mapSpectrumError(err)
	}

	return cs, nil
}

// cross returns the band slice of the cross spectrum conj(Xi)·Xk and the
// matching auto spectra.
func (cs *channelSpectra) cross(i, k int) (pxy []complex128, pxx, pyy []float64) {
	full, err := spectrum.CrossFromSegments(cs.segments[i], cs.segments[k])
	if err != nil {
		// Segments share one estimator and one length.
		panic(err)
	}

	return full[cs.lo:cs.hi], cs.power[i][cs.lo:cs.hi], cs.power[k][cs.lo:cs.hi]
}

func mapSpectrumError(err error) error {
	switch {
	case errors.Is(err, spectrum.ErrEmptyBand):
		return fmt.Errorf("%w: %w", ErrEmptyBand, err)
	case errors.Is(err, spectrum.ErrInvalidSegment):
		return fmt.Errorf("%w: %w", ErrInvalidSegment, err)
	case errors.Is(err, spectrum.ErrEmptySignal):
		return fmt.Errorf("%w: %w", ErrEmptySignal, err)
	default:
		return err
	}
}
