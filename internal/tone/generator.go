// Package tone synthesizes phase-continuous audio tone sequences as
// 16-bit PCM samples.
//
// SSTV transmissions are long chains of short sine tones at protocol
// frequencies. A naive per-tone synthesis restarts the sine at zero
// phase on every boundary, which produces an audible click and smears
// the spectrum; it also truncates the fractional sample each tone
// duration leaves behind, so timing drifts by up to a sample per tone
// and by whole scan lines over a full transmission. [Generator] avoids
// both: each tone starts at the phase where the previous one ended,
// and the fractional remainders accumulate in a carry that is paid
// back as whole samples.
package tone

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrRateOutOfRange indicates a sample rate outside the supported range.
// Errors returned for such rates wrap this sentinel and carry the
// offending value as a [RateError].
var ErrRateOutOfRange = errors.New("sample rate out of range")

// RateError reports a rejected sample rate together with the accepted
// bounds.
type RateError struct {
	// Rate is the rejected sample rate in Hz.
	Rate int

	// Min and Max are the inclusive bounds of the supported range.
	Min int
	Max int
}

func (e *RateError) Error() string {
	return fmt.Sprintf("sample rate %d Hz outside supported range %d-%d Hz", e.Rate, e.Min, e.Max)
}

func (e *RateError) Unwrap() error { return ErrRateOutOfRange }

// ValidateRate checks that sampleRate lies within
// [MinSampleRate, MaxSampleRate]. It returns a [RateError] wrapping
// [ErrRateOutOfRange] otherwise.
func ValidateRate(sampleRate int) error {
	if sampleRate < MinSampleRate || sampleRate > MaxSampleRate {
		return &RateError{Rate: sampleRate, Min: MinSampleRate, Max: MaxSampleRate}
	}
	return nil
}

// Generator accumulates 16-bit PCM samples for a sequence of tones at a
// fixed sample rate.
//
// The zero value is not usable; construct with [NewGenerator]. Generator
// is not safe for concurrent use.
type Generator struct {
	sampleRate int

	// prevValue and prevCos hold the sine value and its cosine at the
	// first sample position after the last written tone. Together they
	// determine the phase the next tone must start at to continue the
	// waveform without a discontinuity.
	prevValue float64
	prevCos   float64

	// carry accumulates the fractional sample left over by each tone
	// duration. Once it reaches one, the whole part is emitted as extra
	// samples of the current tone.
	carry float64

	samples []int16
}

// NewGenerator returns a Generator producing samples at sampleRate Hz.
// The initial state continues from silence: the next tone starts at
// zero phase.
func NewGenerator(sampleRate int) (*Generator, error) {
	if err := ValidateRate(sampleRate); err != nil {
		return nil, fmt.Errorf("tone generator: %w", err)
	}
	return &Generator{sampleRate: sampleRate, prevCos: 1}, nil
}

// WriteTone appends a sine tone of the given frequency and duration,
// starting at the phase where the previous tone ended.
func (g *Generator) WriteTone(freqHz, durationMS float64) {
	g.writeTone(freqHz, durationMS, g.continuationPhase())
}

// WriteToneAt appends a sine tone starting at an explicit phase in
// radians instead of the continuation phase. The carry and phase state
// update exactly as for [Generator.WriteTone].
func (g *Generator) WriteToneAt(freqHz, durationMS, phase float64) {
	g.writeTone(freqHz, durationMS, phase)
}

// WriteSilence appends durationMS of a zero-frequency tone. The samples
// hold the continuation value of the previous tone, so silence written
// from the reset state is all zeros while silence written mid-waveform
// holds the last amplitude. Carry and phase state update as for any
// other tone.
func (g *Generator) WriteSilence(durationMS float64) {
	g.WriteTone(0, durationMS)
}

// continuationPhase derives the starting phase that continues the
// waveform from the recorded end state. The arcsine alone is ambiguous
// between a rising and a falling crossing; the cosine sign picks the
// branch.
func (g *Generator) continuationPhase() float64 {
	if g.prevCos >= 0 {
		return math.Asin(g.prevValue)
	}
	return math.Pi - math.Asin(g.prevValue)
}

func (g *Generator) writeTone(freqHz, durationMS, phase float64) {
	exact := float64(g.sampleRate) * durationMS / msPerSecond
	n := int(exact)
	g.carry += exact - float64(n)
	if g.carry >= 1 {
		whole := math.Floor(g.carry)
		n += int(whole)
		g.carry -= whole
	}

	step := 2 * math.Pi * freqHz / float64(g.sampleRate)
	for i := range n {
		g.samples = append(g.samples, int16(math.Round(amplitude*math.Sin(step*float64(i)+phase))))
	}

	end := step*float64(n) + phase
	g.prevValue = math.Sin(end)
	g.prevCos = math.Cos(end)
}

// Samples returns the accumulated PCM buffer. The slice aliases the
// generator's internal storage; callers that hand it out must copy.
func (g *Generator) Samples() []int16 { return g.samples }

// Len returns the number of accumulated samples.
func (g *Generator) Len() int { return len(g.samples) }

// SampleRate returns the sample rate in Hz.
func (g *Generator) SampleRate() int { return g.sampleRate }

// Duration returns the accumulated audio length in seconds.
func (g *Generator) Duration() float64 {
	return float64(len(g.samples)) / float64(g.sampleRate)
}

// Grow reserves capacity for at least n additional samples, avoiding
// repeated reallocation when the final length is known in advance.
func (g *Generator) Grow(n int) {
	g.samples = slices.Grow(g.samples, n)
}

// Reset discards all samples and restores the initial synthesis state,
// as if the generator were freshly constructed. Capacity is retained.
func (g *Generator) Reset() {
	g.samples = g.samples[:0]
	g.prevValue = 0
	g.prevCos = 1
	g.carry = 0
}
