package math

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum holds the single-sided amplitude spectrum of a signal.
type Spectrum struct {
	Amplitudes []float64
}

// NewSpectrum computes the amplitude spectrum of the given signal.
// Only the first half of the transform carries information for real input.
func NewSpectrum(xx []float64) Spectrum {
	cc := fft.FFTReal(xx)

	amplitudes := make([]float64, 0, len(cc)/2+1)
	for i, c := range cc {
		if i > len(cc)/2 {
			continue
		}
		amplitudes = append(amplitudes, cmplx.Abs(c))
	}

	return Spectrum{Amplitudes: amplitudes}
}

// Features returns the first n amplitudes as a fixed-size feature vector,
// zero-padded when the signal is shorter than requested.
func (s Spectrum) Features(n int) []float64 {
	ff := make([]float64, n)
	for i := 0; i < n && i < len(s.Amplitudes); i++ {
		ff[i] = s.Amplitudes[i]
	}
	return ff
}
