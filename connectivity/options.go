package connectivity

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/cwbudde/algo-fconn/dsp/analytic"
	"github.com/cwbudde/algo-fconn/dsp/spectrum"
	"github.com/cwbudde/algo-fconn/dsp/window"
)

// Option configures a connectivity computation.
type Option func(*config)

type config struct {
	workers  int
	logger   *slog.Logger
	phase    analytic.PhaseMode
	segment  int
	spectral []spectrum.Option
}

func newConfig(opts []Option) config {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.DiscardHandler),
		phase:   analytic.HalfRange,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithWorkers bounds the number of rows evaluated concurrently. 1 runs
// serially. Values <= 0 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger receiving debug records for each computation.
// The default discards everything. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFullRangePhase makes PLV and PLI use atan2 phases in (-π, π] instead
// of the default half-range atan(quadrature/x).
func WithFullRangePhase() Option {
	return func(c *config) {
		c.phase = analytic.FullRange
	}
}

// WithSegmentLength sets the Welch segment length for COH and ICOH. The
// default is 256 or the signal length, whichever is smaller. Values <= 0
// are ignored.
func WithSegmentLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.segment = n
			c.spectral = append(c.spectral, spectrum.WithSegmentLength(n))
		}
	}
}

// WithOverlap sets the Welch segment overlap in samples. The default is half
// the segment length. Negative values are ignored.
func WithOverlap(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.spectral = append(c.spectral, spectrum.WithOverlap(n))
		}
	}
}

// WithWindow selects the Welch segment window. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.spectral = append(c.spectral, spectrum.WithWindow(t))
	}
}

// welch builds the spectral estimator for signals of the given length.
func (c *config) welch(fs float64, samples int) (*spectrum.Welch, error) {
	if c.segment > samples {
		return nil, fmt.Errorf("%w: %d > %d", ErrSegmentTooLong, c.segment, samples)
	}

	w, err := spectrum.NewWelch(fs, c.spectral...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSegment, err)
	}

	if _, _, _, err := w.Layout(samples); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSegment, err)
	}

	return w, nil
}

// trace logs the start of a computation and returns a function logging its
// end.
func (c *config) trace(op string, sensors, samples int) func() {
	start := time.Now()

	c.logger.Debug("connectivity started",
		"op", op,
		"sensors", sensors,
		"samples", samples,
		"workers", c.workers,
	)

	return func() {
		c.logger.Debug("connectivity done",
			"op", op,
			"sensors", sensors,
			"elapsed", time.Since(start),
		)
	}
}
