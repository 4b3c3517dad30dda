package sstv

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tphakala/go-sstv/internal/imagefit"
	"github.com/tphakala/go-sstv/internal/scan"
	"github.com/tphakala/go-sstv/internal/tone"
	"github.com/tphakala/go-sstv/internal/wavio"
)

// transmissionOverheadSeconds sizes buffer preallocation above the
// nominal mode duration. Scan overshoot plus the VIS header, end tones
// and silences stay well under this headroom for every mode.
const transmissionOverheadSeconds = 10.0

// Config holds modulator configuration.
type Config struct {
	// Mode selects the SSTV transmission mode.
	Mode Mode

	// SampleRate is the output sample rate in Hz, within
	// [MinSampleRate, MaxSampleRate]. Zero selects DefaultSampleRate.
	SampleRate int
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if !c.Mode.valid() {
		return fmt.Errorf("%w: Mode(%d)", ErrUnsupportedMode, int(c.Mode))
	}
	if c.SampleRate != 0 {
		if err := tone.ValidateRate(c.SampleRate); err != nil {
			return err
		}
	}
	return nil
}

// Modulator converts images into SSTV audio. It retains the samples,
// the letterboxed image and the processing metadata of the most recent
// run until cleared or replaced by the next run.
//
// A Modulator is safe for concurrent use. Modulate serializes with all
// other methods; accessors may run concurrently with each other.
type Modulator struct {
	mu sync.RWMutex

	mode       Mode
	sampleRate int

	gen       *tone.Generator
	processed *image.RGBA
	meta      *Metadata
}

// New creates a Modulator for the given configuration.
func New(config *Config) (*Modulator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	rate := config.SampleRate
	if rate == 0 {
		rate = DefaultSampleRate
	}
	gen, err := tone.NewGenerator(rate)
	if err != nil {
		return nil, err
	}

	return &Modulator{
		mode:       config.Mode,
		sampleRate: rate,
		gen:        gen,
	}, nil
}

// NewModulator creates a Modulator for mode at DefaultSampleRate.
func NewModulator(mode Mode) (*Modulator, error) {
	return New(&Config{Mode: mode})
}

// Mode returns the configured SSTV mode.
func (m *Modulator) Mode() Mode { return m.mode }

// SampleRate returns the configured sample rate in Hz.
func (m *Modulator) SampleRate() int { return m.sampleRate }

// Modulate generates the complete transmission for src: lead silence,
// VIS header, the mode scan, the end tone sequence and trail silence.
// The source is letterboxed to the mode dimensions first.
//
// The returned slice is the caller's copy. The run replaces the
// retained samples, image and metadata of any previous run; on error
// the previous run's state is left untouched.
func (m *Modulator) Modulate(src image.Image) ([]int16, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source image", ErrImageDecode)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	width, height := m.mode.Dimensions()
	fit := imagefit.Fit(src, width, height)
	meta := newMetadata(m.mode, m.sampleRate, fit, time.Now().UTC())

	gen, err := tone.NewGenerator(m.sampleRate)
	if err != nil {
		return nil, err
	}
	gen.Grow(int(float64(m.sampleRate) * (m.mode.Duration() + transmissionOverheadSeconds)))

	gen.WriteSilence(leadSilenceMS)
	if err := scan.WriteHeader(gen, m.mode.VISCode()); err != nil {
		return nil, err
	}

	switch m.mode {
	case ModeScottieDX:
		scan.ScottieDX(gen, fit.Image)
	case ModeRobot36:
		scan.Robot36(gen, fit.Image)
	case ModePD120:
		scan.PD120(gen, fit.Image)
	case ModeMartinM1:
		scan.MartinM1(gen, fit.Image)
	}

	scan.WriteTrailer(gen)
	gen.WriteSilence(trailSilenceMS)

	m.gen = gen
	m.processed = fit.Image
	m.meta = &meta

	out := make([]int16, gen.Len())
	copy(out, gen.Samples())
	return out, nil
}

// Samples returns the retained samples of the most recent run. The
// slice is shared with the Modulator; it is valid until the next run
// or clear. Callers needing an independent copy should use the slice
// returned by Modulate instead.
func (m *Modulator) Samples() []int16 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gen.Samples()
}

// Duration returns the length of the retained audio in seconds.
func (m *Modulator) Duration() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gen.Duration()
}

// ProcessedImage returns the letterboxed image of the most recent run,
// or nil if no run has completed. The image is shared with the
// Modulator.
func (m *Modulator) ProcessedImage() *image.RGBA {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.processed
}

// Metadata returns the processing metadata of the most recent run.
// The second return is false if no run has completed.
func (m *Modulator) Metadata() (Metadata, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.meta == nil {
		return Metadata{}, false
	}
	return *m.meta, true
}

// WriteWAV writes the retained samples to path as a mono 16-bit WAV
// file at the configured sample rate.
func (m *Modulator) WriteWAV(path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return wavio.WriteFile(path, m.gen.Samples(), m.sampleRate)
}

// BatchProcess modulates src and writes both outputs under outputDir:
// the WAV as "{base}_{mode}_{timestamp}_{rate}.wav" and the processed
// image named by the auto-save convention with base as suffix. It
// returns the paths of the written audio and image files.
func (m *Modulator) BatchProcess(src image.Image, outputDir, baseName string, config ImageSaveConfig) (audioPath, imagePath string, err error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output directory: %w", err)
	}

	if _, err := m.Modulate(src); err != nil {
		return "", "", err
	}

	timestamp := time.Now().UTC().Format(timestampLayout)
	audioPath = filepath.Join(outputDir, fmt.Sprintf("%s_%s_%s_%d.wav",
		baseName, m.mode, timestamp, m.sampleRate))
	if err := m.WriteWAV(audioPath); err != nil {
		return "", "", err
	}

	config.Suffix = baseName
	imagePath, err = m.SaveProcessedImageAuto(outputDir, config)
	if err != nil {
		return "", "", err
	}
	return audioPath, imagePath, nil
}
