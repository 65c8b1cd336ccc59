package bandpass

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-fconn/dsp/filter/biquad"
)

func TestButterworth_InvalidParams(t *testing.T) {
	tests := []struct {
		name          string
		low, high, fs float64
		order         int
		want          error
	}{
		{"zero low", 0, 20, 250, 10, ErrInvalidBand},
		{"negative low", -1, 20, 250, 10, ErrInvalidBand},
		{"low equals high", 20, 20, 250, 10, ErrInvalidBand},
		{"low above high", 30, 20, 250, 10, ErrInvalidBand},
		{"high at nyquist", 5, 125, 250, 10, ErrInvalidBand},
		{"high above nyquist", 5, 200, 250, 10, ErrInvalidBand},
		{"zero sample rate", 5, 20, 0, 10, ErrInvalidBand},
		{"nan low", math.NaN(), 20, 250, 10, ErrInvalidBand},
		{"zero order", 5, 20, 250, 0, ErrInvalidOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Butterworth(tt.low, tt.high, tt.order, tt.fs)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestButterworth_SectionCountAndStability(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 10} {
		coeffs, err := Butterworth(5, 20, order, 250)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		if len(coeffs) != order {
			t.Fatalf("order %d: got %d sections", order, len(coeffs))
		}

		if r := biquad.MaxPoleRadius(coeffs); r >= 1 {
			t.Fatalf("order %d: unstable, max pole radius %v", order, r)
		}
	}
}

func TestButterworth_MagnitudeResponse(t *testing.T) {
	const fs = 250.0

	bands := [][2]float64{{5, 20}, {8, 13}, {1, 4}, {30, 45}}
	for _, b := range bands {
		coeffs, err := Butterworth(b[0], b[1], 10, fs)
		if err != nil {
			t.Fatal(err)
		}

		c := biquad.NewChain(coeffs)

		for _, edge := range b {
			if db := c.MagnitudeDB(edge, fs); math.Abs(db+10*math.Log10(2)) > 1e-4 {
				t.Errorf("band %v: edge %v Hz at %.6f dB, want -3.0103", b, edge, db)
			}
		}

		center := fs / math.Pi * math.Atan(math.Sqrt(math.Tan(math.Pi*b[0]/fs)*math.Tan(math.Pi*b[1]/fs)))
		if mag := cmplx.Abs(c.Response(center, fs)); math.Abs(mag-1) > 1e-6 {
			t.Errorf("band %v: |H(%.3f)| = %v, want 1", b, center, mag)
		}
	}
}

func TestButterworth_StopBand(t *testing.T) {
	coeffs, err := Butterworth(5, 20, 10, 250)
	if err != nil {
		t.Fatal(err)
	}

	c := biquad.NewChain(coeffs)
	for _, f := range []float64{0.5, 1, 60, 100} {
		if db := c.MagnitudeDB(f, 250); db > -100 {
			t.Errorf("f=%v Hz: %.1f dB, want < -100 dB", f, db)
		}
	}
}

func TestButterworthZPK_Structure(t *testing.T) {
	zpk, err := ButterworthZPK(5, 20, 10, 250)
	if err != nil {
		t.Fatal(err)
	}

	if len(zpk.Poles) != 20 || len(zpk.Zeros) != 20 {
		t.Fatalf("got %d poles / %d zeros, want 20 / 20", len(zpk.Poles), len(zpk.Zeros))
	}

	var atDC, atNyquist int
	for _, z := range zpk.Zeros {
		switch {
		case cmplx.Abs(z-1) < 1e-12:
			atDC++
		case cmplx.Abs(z+1) < 1e-12:
			atNyquist++
		}
	}

	if atDC != 10 || atNyquist != 10 {
		t.Fatalf("zeros: %d at z=1, %d at z=-1, want 10 and 10", atDC, atNyquist)
	}

	for _, p := range zpk.Poles {
		if cmplx.Abs(p) >= 1 {
			t.Fatalf("pole %v outside unit circle", p)
		}
	}

	if !(zpk.Gain > 0) {
		t.Fatalf("gain %v, want > 0", zpk.Gain)
	}
}

func TestSections_WorstPoleLast(t *testing.T) {
	coeffs, err := Butterworth(5, 20, 10, 250)
	if err != nil {
		t.Fatal(err)
	}

	// A2 is the squared pole radius of a conjugate pair.
	last := coeffs[len(coeffs)-1].A2
	for i, c := range coeffs[:len(coeffs)-1] {
		if c.A2 > last {
			t.Fatalf("section %d has pole radius² %v above last section %v", i, c.A2, last)
		}
	}
}

func TestSections_RealRoots(t *testing.T) {
	// (1 - 0.5 z^-1)(1 - 0.25 z^-1) over zeros at -1, -1.
	zpk := ZPK{
		Zeros: []complex128{-1, -1},
		Poles: []complex128{0.5, 0.25},
		Gain:  2,
	}

	s := Sections(zpk)
	if len(s) != 1 {
		t.Fatalf("got %d sections, want 1", len(s))
	}

	want := biquad.Coefficients{B0: 2, B1: 4, B2: 2, A1: -0.75, A2: 0.125}
	if s[0] != want {
		t.Fatalf("got %+v, want %+v", s[0], want)
	}
}
