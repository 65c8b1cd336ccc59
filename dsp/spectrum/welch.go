package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-fconn/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultSegmentLength is the Welch segment length used unless overridden.
// Signals shorter than this use a single segment of their full length.
const DefaultSegmentLength = 256

// Option configures a Welch estimator.
type Option func(*config)

type config struct {
	segment    int
	overlap    int
	hasOverlap bool
	window     window.Type
	detrend    bool
}

func defaultConfig() config {
	return config{
		segment: DefaultSegmentLength,
		window:  window.TypeHann,
		detrend: true,
	}
}

// WithSegmentLength sets the nominal segment length. Values <= 0 are ignored.
func WithSegmentLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.segment = n
		}
	}
}

// WithOverlap sets the number of samples shared by consecutive segments.
// The default is half the resolved segment length. Negative values are
// ignored; values not below the segment length fail at estimation time.
func WithOverlap(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.overlap = n
			c.hasOverlap = true
		}
	}
}

// WithWindow selects the segment taper. The periodic form is always used.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithoutDetrend disables removal of each segment's mean before windowing.
func WithoutDetrend() Option {
	return func(c *config) {
		c.detrend = false
	}
}

// Welch estimates one-sided, density-scaled spectra by averaging windowed
// periodograms of overlapping segments.
//
// A Welch value is immutable and safe for concurrent use.
type Welch struct {
	sampleRate float64
	cfg        config
}

// NewWelch returns an estimator for signals sampled at sampleRate.
func NewWelch(sampleRate float64, opts ...Option) (*Welch, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if _, err := window.New(cfg.window, 1); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSegment, err)
	}

	return &Welch{sampleRate: sampleRate, cfg: cfg}, nil
}

// SampleRate returns the configured sample rate.
func (w *Welch) SampleRate() float64 { return w.sampleRate }

// Layout returns the segment length, overlap and segment count used for a
// signal of n samples.
func (w *Welch) Layout(n int) (segment, overlap, count int, err error) {
	if n <= 0 {
		return 0, 0, 0, ErrEmptySignal
	}

	segment = min(w.cfg.segment, n)

	overlap = segment / 2
	if w.cfg.hasOverlap {
		overlap = w.cfg.overlap
	}

	if overlap >= segment {
		return 0, 0, 0, fmt.Errorf("%w: overlap %d with segment length %d", ErrInvalidSegment, overlap, segment)
	}

	count = (n - overlap) / (segment - overlap)

	return segment, overlap, count, nil
}

// Freqs returns the bin frequencies k·fs/segment, k = 0..segment/2.
func Freqs(segment int, sampleRate float64) []float64 {
	if segment <= 0 {
		return nil
	}

	out := make([]float64, segment/2+1)
	for k := range out {
		out[k] = float64(k) * sampleRate / float64(segment)
	}

	return out
}

// Spectrum is a real-valued one-sided spectrum.
type Spectrum struct {
	Freqs  []float64
	Values []float64
}

// CrossSpectrum is a complex one-sided cross spectrum.
type CrossSpectrum struct {
	Freqs  []float64
	Values []complex128
}

// Segments holds the windowed one-sided FFT of every Welch segment of one
// signal. Cross and auto spectra of any pair of signals with the same
// length can be formed from their Segments without further transforms.
type Segments struct {
	Freqs []float64

	bins  [][]complex128
	nfft  int
	scale float64
}

// Count returns the number of averaged segments.
func (s *Segments) Count() int { return len(s.bins) }

// NFFT returns the transform length of each segment.
func (s *Segments) NFFT() int { return s.nfft }

// Segments splits x into overlapping segments, detrends and windows each one
// and transforms it.
func (w *Welch) Segments(x []float64) (*Segments, error) {
	segment, overlap, count, err := w.Layout(len(x))
	if err != nil {
		return nil, err
	}

	win := window.Generate(w.cfg.window, segment, window.WithPeriodic())

	plan, err := NewFFT(segment)
	if err != nil {
		return nil, err
	}

	step := segment - overlap
	nbins := segment/2 + 1
	buf := make([]float64, segment)
	in := make([]complex128, segment)
	out := make([]complex128, segment)

	// One backing array for all segments.
	store := make([]complex128, count*nbins)
	bins := make([][]complex128, count)

	for s := range count {
		copy(buf, x[s*step:s*step+segment])

		if w.cfg.detrend {
			mean := vecmath.Sum(buf) / float64(segment)
			for i := range buf {
				buf[i] -= mean
			}
		}

		vecmath.MulBlockInPlace(buf, win)

		for i, v := range buf {
			in[i] = complex(v, 0)
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("spectrum: segment %d: %w", s, err)
		}

		bins[s] = store[s*nbins : (s+1)*nbins : (s+1)*nbins]
		copy(bins[s], out[:nbins])
	}

	return &Segments{
		Freqs: Freqs(segment, w.sampleRate),
		bins:  bins,
		nfft:  segment,
		scale: 1 / (w.sampleRate * window.Energy(win)),
	}, nil
}

// PowerFromSegments averages the auto spectrum |X|² of s.
func PowerFromSegments(s *Segments) []float64 {
	out := make([]float64, len(s.Freqs))
	for _, seg := range s.bins {
		AccumulatePower(out, seg)
	}

	vecmath.ScaleBlockInPlace(out, s.scale/float64(len(s.bins)))
	oneSided(s.nfft, func(k int) { out[k] *= 2 })

	return out
}

// CrossFromSegments averages the cross spectrum conj(X)·Y of x and y, which
// must come from equally long signals and the same estimator.
func CrossFromSegments(x, y *Segments) ([]complex128, error) {
	if x.nfft != y.nfft || len(x.bins) != len(y.bins) || x.scale != y.scale {
		return nil, fmt.Errorf("%w: segments %d×%d vs %d×%d", ErrLengthMismatch,
			len(x.bins), x.nfft, len(y.bins), y.nfft)
	}

	out := make([]complex128, len(x.Freqs))
	for s := range x.bins {
		xs, ys := x.bins[s], y.bins[s]
		for k := range out {
			out[k] += cmplx.Conj(xs[k]) * ys[k]
		}
	}

	norm := complex(x.scale/float64(len(x.bins)), 0)
	for k := range out {
		out[k] *= norm
	}

	oneSided(x.nfft, func(k int) { out[k] *= 2 })

	return out, nil
}

// oneSided calls double for every bin whose negative-frequency twin was
// folded in: all but DC and, for even nfft, Nyquist.
func oneSided(nfft int, double func(k int)) {
	last := nfft / 2
	if nfft%2 != 0 {
		last++
	}

	for k := 1; k < last; k++ {
		double(k)
	}
}

// PSD returns the power spectral density of x.
func (w *Welch) PSD(x []float64) (Spectrum, error) {
	s, err := w.Segments(x)
	if err != nil {
		return Spectrum{}, err
	}

	return Spectrum{Freqs: s.Freqs, Values: PowerFromSegments(s)}, nil
}

// CSD returns the cross spectral density conj(X)·Y of x and y.
func (w *Welch) CSD(x, y []float64) (CrossSpectrum, error) {
	sx, sy, err := w.pair(x, y)
	if err != nil {
		return CrossSpectrum{}, err
	}

	pxy, err := CrossFromSegments(sx, sy)
	if err != nil {
		return CrossSpectrum{}, err
	}

	return CrossSpectrum{Freqs: sx.Freqs, Values: pxy}, nil
}

// Coherence returns the magnitude-squared coherence |Pxy|²/(Pxx·Pyy).
func (w *Welch) Coherence(x, y []float64) (Spectrum, error) {
	sx, sy, err := w.pair(x, y)
	if err != nil {
		return Spectrum{}, err
	}

	return Spectrum{Freqs: sx.Freqs, Values: CoherenceFromSegments(sx, sy)}, nil
}

// CoherenceFromSegments is Coherence on precomputed segments. Mismatched
// segments yield nil.
func CoherenceFromSegments(x, y *Segments) []float64 {
	pxy, err := CrossFromSegments(x, y)
	if err != nil {
		return nil
	}

	pxx := PowerFromSegments(x)
	pyy := PowerFromSegments(y)

	out := Power(pxy)
	for k := range out {
		out[k] = out[k] / pxx[k] / pyy[k]
	}

	return out
}

func (w *Welch) pair(x, y []float64) (*Segments, *Segments, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: %d vs %d samples", ErrLengthMismatch, len(x), len(y))
	}

	sx, err := w.Segments(x)
	if err != nil {
		return nil, nil, err
	}

	sy, err := w.Segments(y)
	if err != nil {
		return nil, nil, err
	}

	return sx, sy, nil
}
