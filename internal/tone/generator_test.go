package tone

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// === Rate Validation Tests ===

func TestNewGeneratorRateValidation(t *testing.T) {
	tests := []struct {
		name    string
		rate    int
		wantErr bool
	}{
		{"below minimum", 500, true},
		{"just below minimum", 999, true},
		{"at minimum", 1000, false},
		{"common telephony", 8000, false},
		{"cd quality", 44100, false},
		{"at maximum", 192000, false},
		{"just above maximum", 192001, true},
		{"far above maximum", 250000, true},
		{"zero", 0, true},
		{"negative", -44100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(tt.rate)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, g)
				assert.ErrorIs(t, err, ErrRateOutOfRange)

				var rateErr *RateError
				require.ErrorAs(t, err, &rateErr)
				assert.Equal(t, tt.rate, rateErr.Rate)
				assert.Equal(t, MinSampleRate, rateErr.Min)
				assert.Equal(t, MaxSampleRate, rateErr.Max)
			} else {
				require.NoError(t, err)
				require.NotNil(t, g)
				assert.Equal(t, tt.rate, g.SampleRate())
			}
		})
	}
}

func TestRateErrorMessage(t *testing.T) {
	err := ValidateRate(500)
	require.Error(t, err)

	// The message must name both the rejected value and the bounds so a
	// caller can correct the configuration without reading source.
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "1000")
	assert.Contains(t, err.Error(), "192000")
}

// === Sample Count Tests ===

func TestWriteToneSampleCount(t *testing.T) {
	tests := []struct {
		name       string
		rate       int
		freqHz     float64
		durationMS float64
		want       int
	}{
		{"exact whole samples", 6000, 1200, 100, 600},
		{"one second", 44100, 1900, 1000, 44100},
		{"fractional truncates", 44100, 1500, 0.275, 12}, // 12.1275 exact
		{"sub-sample duration", 8000, 1100, 0.1, 0},      // 0.8 exact, all carry
		{"zero duration", 44100, 1500, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(tt.rate)
			require.NoError(t, err)

			g.WriteTone(tt.freqHz, tt.durationMS)
			assert.Equal(t, tt.want, g.Len())
		})
	}
}

func TestCarryPaysBackWholeSamples(t *testing.T) {
	g, err := NewGenerator(6000)
	require.NoError(t, err)

	// Each 0.572 ms tone is exactly 3.432 samples at 6000 Hz. One
	// hundred of them must emit 343 samples total, not 100*3 = 300.
	for range 100 {
		g.WriteTone(1200, 0.572)
	}
	assert.Equal(t, 343, g.Len())
}

func TestNoDriftOverManyTones(t *testing.T) {
	const (
		rate       = 44100
		durationMS = 0.4576
		count      = 10000
	)

	g, err := NewGenerator(rate)
	require.NoError(t, err)

	for range count {
		g.WriteTone(1700, durationMS)
	}

	// 10000 * 20.18016 = 201801.6 exact samples. The carry bounds the
	// deviation to under one sample plus float accumulation error.
	exact := float64(rate) * durationMS * count / 1000.0
	drift := math.Abs(float64(g.Len()) - exact)
	assert.LessOrEqual(t, drift, 2.0, "emitted %d samples for %.1f exact", g.Len(), exact)

	t.Logf("emitted %d samples, exact %.4f, drift %.4f", g.Len(), exact, drift)
}

// === Phase Continuity Tests ===

func TestPhaseContinuityAcrossBoundary(t *testing.T) {
	g, err := NewGenerator(44100)
	require.NoError(t, err)

	// A duration chosen so the tone ends mid-cycle at an awkward value.
	g.WriteTone(1900, 7.3)
	endValue := g.prevValue

	start := g.Len()
	g.WriteTone(1200, 5)
	require.Greater(t, g.Len(), start)

	// The next tone starts where the previous ended: its first sample
	// reproduces the recorded end value.
	assert.InDelta(t, math.Round(amplitude*endValue), float64(g.samples[start]), 1)
}

func TestNoDiscontinuityInToneSequence(t *testing.T) {
	const rate = 44100
	g, err := NewGenerator(rate)
	require.NoError(t, err)

	freqs := []float64{1900, 1200, 1100, 2300, 1500, 1300, 2044.8, 1546.9}
	for i, f := range freqs {
		g.WriteTone(f, 3.0+0.7*float64(i))
	}

	// The largest per-sample step a continuous 2300 Hz sine can take,
	// plus rounding slack. Any boundary click exceeds this by far.
	maxStep := amplitude*2*math.Pi*2300/rate + 2

	samples := g.Samples()
	for i := 1; i < len(samples); i++ {
		diff := math.Abs(float64(samples[i]) - float64(samples[i-1]))
		require.LessOrEqualf(t, diff, maxStep, "jump of %.0f at sample %d", diff, i)
	}
}

func TestFalseBranchPhaseRecovery(t *testing.T) {
	g, err := NewGenerator(8000)
	require.NoError(t, err)

	// Drive the state to a falling slope (negative cosine) so the
	// continuation phase takes the pi - asin branch, then verify the
	// boundary still lines up across several more transitions.
	g.WriteTone(1100, 0.35) // 2.8 samples, ends early in the cycle
	g.WriteTone(2300, 13.31)

	for range 5 {
		before := g.prevValue
		start := g.Len()
		g.WriteTone(1500, 4.123)
		require.Greater(t, g.Len(), start)
		assert.InDelta(t, math.Round(amplitude*before), float64(g.samples[start]), 1.5)
	}
}

// === Silence Tests ===

func TestSilenceFromRestIsZero(t *testing.T) {
	g, err := NewGenerator(8000)
	require.NoError(t, err)

	g.WriteSilence(200)
	require.Equal(t, 1600, g.Len())

	for i, s := range g.Samples() {
		require.Zerof(t, s, "sample %d not zero", i)
	}
}

func TestSilenceHoldsContinuationValue(t *testing.T) {
	g, err := NewGenerator(44100)
	require.NoError(t, err)

	g.WriteTone(1500, 3.7)
	entry := int16(math.Round(amplitude * g.prevValue))

	start := g.Len()
	g.WriteSilence(10)
	held := g.Samples()[start:]
	require.NotEmpty(t, held)

	// Zero frequency freezes the waveform: every sample of the silence
	// holds the value the previous tone ended at.
	for i, s := range held {
		require.Equalf(t, entry, s, "sample %d of silence moved", i)
	}
}

// === State Lifecycle Tests ===

func TestResetMatchesFreshGenerator(t *testing.T) {
	writeSequence := func(g *Generator) {
		g.WriteSilence(12.5)
		g.WriteTone(1900, 300)
		g.WriteTone(1100, 30)
		g.WriteTone(1300, 30.7)
		g.WriteTone(2300, 0.4576)
	}

	used, err := NewGenerator(22050)
	require.NoError(t, err)
	used.WriteTone(1546.9, 250)
	used.WriteTone(2044.8, 91.3)
	used.Reset()

	assert.Zero(t, used.Len())
	assert.Zero(t, used.prevValue)
	assert.Equal(t, 1.0, used.prevCos)
	assert.Zero(t, used.carry)

	fresh, err := NewGenerator(22050)
	require.NoError(t, err)

	writeSequence(used)
	writeSequence(fresh)

	require.Equal(t, fresh.Samples(), used.Samples(),
		"reset generator diverged from fresh generator")
}

func TestDeterministicOutput(t *testing.T) {
	run := func() []int16 {
		g, err := NewGenerator(11025)
		require.NoError(t, err)
		for i := range 50 {
			g.WriteTone(1500+3.1372549*float64(i*5), 0.9+0.01*float64(i))
		}
		out := make([]int16, g.Len())
		copy(out, g.Samples())
		return out
	}

	first := run()
	second := run()
	require.Equal(t, first, second)
}

func TestWriteToneAtExplicitPhase(t *testing.T) {
	g, err := NewGenerator(8000)
	require.NoError(t, err)

	g.WriteToneAt(1200, 10, 0)
	assert.Zero(t, g.Samples()[0], "zero phase must start at zero crossing")

	g.Reset()
	g.WriteToneAt(1200, 10, math.Pi/2)
	assert.Equal(t, int16(32767), g.Samples()[0], "quarter turn must start at peak")
}

func TestDurationAndGrow(t *testing.T) {
	g, err := NewGenerator(16000)
	require.NoError(t, err)

	g.Grow(48000)
	assert.Zero(t, g.Len())
	assert.GreaterOrEqual(t, cap(g.samples), 48000)

	g.WriteTone(1200, 1500)
	assert.InDelta(t, 1.5, g.Duration(), 1e-9)
}
