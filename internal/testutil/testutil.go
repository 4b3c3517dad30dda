// Package testutil provides shared test helpers: deterministic signal
// generation and tolerance assertions for measured signal properties.
package testutil

import (
	"math"
	"testing"
)

// Tolerances for comparing measured signal properties. Spectral
// estimates on short windows carry bin-width error; level comparisons
// carry rounding and leakage error.
const (
	// FreqToleranceHz bounds frequency estimate error.
	FreqToleranceHz = 25.0

	// LevelTolerance bounds relative amplitude and RMS error.
	LevelTolerance = 0.05
)

// SineInt16 returns duration seconds of a sine wave as 16-bit samples.
// Amplitude is in sample units, not normalized.
func SineInt16(sampleRate int, freqHz, duration, amplitude float64) []int16 {
	n := int(duration * float64(sampleRate))
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(math.Round(amplitude * math.Sin(2*math.Pi*freqHz*float64(i)/float64(sampleRate))))
	}
	return out
}

// ChirpInt16 returns a linear frequency sweep from startHz to endHz
// over duration seconds.
func ChirpInt16(sampleRate int, startHz, endHz, duration, amplitude float64) []int16 {
	n := int(duration * float64(sampleRate))
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		f := startHz + (endHz-startHz)*t/duration
		out[i] = int16(math.Round(amplitude * math.Sin(2*math.Pi*f*t)))
	}
	return out
}

// AssertFinite fails the test if any element is NaN or infinite.
func AssertFinite(t *testing.T, values []float64) {
	t.Helper()
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("values[%d] = %v, want a finite number", i, v)
		}
	}
}

// AssertFreqNear fails the test unless got lies within FreqToleranceHz
// of want.
func AssertFreqNear(t *testing.T, want, got float64) {
	t.Helper()
	if math.Abs(want-got) > FreqToleranceHz {
		t.Fatalf("frequency = %.2f Hz, want %.2f Hz within %.0f Hz", got, want, FreqToleranceHz)
	}
}

// AssertLevelNear fails the test unless got lies within LevelTolerance
// of want, relatively. A zero want degrades to an absolute comparison.
func AssertLevelNear(t *testing.T, want, got float64) {
	t.Helper()
	if want == 0 {
		if math.Abs(got) > LevelTolerance {
			t.Fatalf("level = %.4f, want 0 within %.2f", got, LevelTolerance)
		}
		return
	}
	if math.Abs(got-want)/math.Abs(want) > LevelTolerance {
		t.Fatalf("level = %.4f, want %.4f within %.0f%%", got, want, LevelTolerance*100)
	}
}
