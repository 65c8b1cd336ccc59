// Command bandinfo prints the band-pass filter and spectral bins used for a
// connectivity frequency band.
//
// Usage:
//
//	bandinfo [flags]
//
// It lists the second-order sections of the 10th-order Butterworth design,
// each section's pole radius, the magnitude response at a few frequencies
// and the Welch bins that COH and ICOH average over.
//
// Examples:
//
//	bandinfo -fmin 8 -fmax 13
//	bandinfo -fmin 4 -fmax 8 -fs 500 -points 12
//	bandinfo -fmin 13 -fmax 30 -segment 512
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-fconn/connectivity"
	"github.com/cwbudde/algo-fconn/dsp/filter/biquad"
	"github.com/cwbudde/algo-fconn/dsp/spectrum"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("bandinfo", flag.ContinueOnError)
	fMin := fs.Float64("fmin", 5, "lower band edge in Hz")
	fMax := fs.Float64("fmax", 20, "upper band edge in Hz")
	rate := fs.Float64("fs", 250, "sample rate in Hz")
	points := fs.Int("points", 8, "number of response points between DC and Nyquist")
	segment := fs.Int("segment", spectrum.DefaultSegmentLength, "Welch segment length in samples")
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: bandinfo [flags]\n\n")
		fmt.Fprintf(w, "Prints the band-pass design and Welch bins for a connectivity band.\n\n")
		fmt.Fprintf(w, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	band := connectivity.Band{Low: *fMin, High: *fMax, SampleRate: *rate}

	sections, err := connectivity.FilterSections(band)
	if err != nil {
		return err
	}

	if *points < 2 {
		return fmt.Errorf("points must be >= 2: %d", *points)
	}

	if *segment <= 0 {
		return fmt.Errorf("segment must be > 0: %d", *segment)
	}

	fmt.Fprintf(out, "Band %s, Butterworth order %d, %d sections\n\n", band, connectivity.FilterOrder, len(sections))

	if err := printSections(out, sections); err != nil {
		return err
	}

	fmt.Fprintln(out)

	if err := printResponse(out, biquad.NewChain(sections), band, *points); err != nil {
		return err
	}

	fmt.Fprintln(out)

	return printBins(out, band, *segment)
}

func printSections(out io.Writer, sections []biquad.Coefficients) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Section\tb0\tb1\tb2\ta1\ta2\tPole radius\n")
	fmt.Fprintf(tw, "-------\t--\t--\t--\t--\t--\t-----------\n")

	for i := range sections {
		c := sections[i]
		p := c.Poles()
		fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t%.6g\t%.6f\t%.6f\t%.6f\n",
			i, c.B0, c.B1, c.B2, c.A1, c.A2, math.Max(cmplx.Abs(p[0]), cmplx.Abs(p[1])))
	}

	fmt.Fprintf(tw, "max\t\t\t\t\t\t%.6f\n", biquad.MaxPoleRadius(sections))

	return tw.Flush()
}

func printResponse(out io.Writer, chain *biquad.Chain, band connectivity.Band, points int) error {
	nyquist := band.SampleRate / 2

	freqs := []float64{band.Low, band.High}
	for i := range points {
		freqs = append(freqs, nyquist*float64(i)/float64(points-1))
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude [dB]\n")
	fmt.Fprintf(tw, "--------------\t--------------\n")

	for _, f := range freqs {
		db := chain.MagnitudeDB(f, band.SampleRate)
		fmt.Fprintf(tw, "%.3f\t%.2f\n", f, db)
	}

	return tw.Flush()
}

func printBins(out io.Writer, band connectivity.Band, segment int) error {
	freqs := spectrum.Freqs(segment, band.SampleRate)

	lo, hi, err := spectrum.BandRange(freqs, band.Low, band.High)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Welch segment %d: %.4f Hz resolution, %d bins in band (%.3f to %.3f Hz)\n",
		segment, freqs[1], hi-lo, freqs[lo], freqs[hi-1])

	return nil
}
