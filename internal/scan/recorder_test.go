package scan

// toneRecorder captures every tone for sequence-level assertions.
type toneRecorder struct {
	tones []recordedTone
}

type recordedTone struct {
	freqHz     float64
	durationMS float64
	phase      float64
	explicit   bool
}

func (r *toneRecorder) WriteTone(freqHz, durationMS float64) {
	r.tones = append(r.tones, recordedTone{freqHz: freqHz, durationMS: durationMS})
}

func (r *toneRecorder) WriteToneAt(freqHz, durationMS, phase float64) {
	r.tones = append(r.tones, recordedTone{freqHz: freqHz, durationMS: durationMS, phase: phase, explicit: true})
}

func (r *toneRecorder) totalMS() float64 {
	var sum float64
	for _, t := range r.tones {
		sum += t.durationMS
	}
	return sum
}

// freqs returns the frequency sequence alone.
func (r *toneRecorder) freqs() []float64 {
	out := make([]float64, len(r.tones))
	for i, t := range r.tones {
		out[i] = t.freqHz
	}
	return out
}

// toneCounter sums counts and durations without storing tones, for
// full-resolution scans where the sequence itself is too long to keep.
type toneCounter struct {
	count   int
	totalMS float64
}

func (c *toneCounter) WriteTone(freqHz, durationMS float64) {
	c.count++
	c.totalMS += durationMS
}

func (c *toneCounter) WriteToneAt(freqHz, durationMS, phase float64) {
	c.WriteTone(freqHz, durationMS)
}
