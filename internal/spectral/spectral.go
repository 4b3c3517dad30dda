// Package spectral measures properties of generated tone sequences:
// single-frequency magnitude via the Goertzel recurrence, dominant
// frequency via FFT, and signal level. Tests use it to verify that
// scan output carries the frequencies the protocol dictates; the
// analyze command uses it to inspect WAV files.
package spectral

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-sstv/internal/simdops"
)

// Float64 widens 16-bit samples for numerical processing.
func Float64(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s)
	}
	return out
}

// Goertzel returns the amplitude estimate of the component at freqHz,
// in sample units. The estimate is exact for a full-cycle sine on the
// bin and degrades with spectral leakage off it, so callers comparing
// candidate frequencies should compare magnitudes rather than trust
// absolute values near bin edges.
func Goertzel(samples []int16, sampleRate int, freqHz float64) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}

	omega := 2 * math.Pi * freqHz / float64(sampleRate)
	coeff := 2 * math.Cos(omega)

	var s1, s2 float64
	for _, x := range samples {
		s0 := float64(x) + coeff*s1 - s2
		s2 = s1
		s1 = s0
	}

	power := s1*s1 + s2*s2 - coeff*s1*s2
	return 2 * math.Sqrt(math.Abs(power)) / float64(n)
}

// DominantFrequency returns the frequency in Hz of the strongest
// non-DC spectral bin. Resolution is sampleRate/len(samples).
func DominantFrequency(samples []int16, sampleRate int) float64 {
	if len(samples) < 2 {
		return 0
	}

	fft := fourier.NewFFT(len(samples))
	coeffs := fft.Coefficients(nil, Float64(samples))

	maxIdx := 1
	maxMag := 0.0
	for i := 1; i < len(coeffs); i++ {
		if mag := cmplxAbs(coeffs[i]); mag > maxMag {
			maxMag = mag
			maxIdx = i
		}
	}

	return fft.Freq(maxIdx) * float64(sampleRate)
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

// RMS returns the root-mean-square level of the samples in sample
// units.
func RMS(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}
	x := Float64(samples)
	return math.Sqrt(simdops.DotProduct(x, x) / float64(len(x)))
}

// Mean returns the average sample value, a DC offset indicator.
func Mean(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}
	return simdops.Sum(Float64(samples)) / float64(len(samples))
}

// LinearToDB converts a linear amplitude ratio to decibels.
func LinearToDB(linear float64) float64 {
	return 20 * math.Log10(linear)
}

// DBToLinear converts decibels to a linear amplitude ratio.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}
