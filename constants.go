package sstv

import "github.com/tphakala/go-sstv/internal/tone"

// Version is the library version embedded in metadata sidecars.
const Version = "1.0.0"

// Sample rate limits for generated audio.
const (
	// DefaultSampleRate is used when a configuration leaves the
	// sample rate unset. 6 kHz comfortably covers the 1100-2300 Hz
	// signal band while keeping sample buffers small.
	DefaultSampleRate = 6000

	// MinSampleRate is the lowest accepted sample rate in Hz.
	MinSampleRate = tone.MinSampleRate

	// MaxSampleRate is the highest accepted sample rate in Hz.
	MaxSampleRate = tone.MaxSampleRate
)

// Transmission framing.
const (
	// leadSilenceMS precedes the VIS header in every transmission.
	leadSilenceMS = 200.0

	// trailSilenceMS follows the end tone sequence.
	trailSilenceMS = 200.0
)

// Image output defaults.
const (
	// defaultJPEGQuality applies when a save configuration leaves the
	// JPEG quality unset.
	defaultJPEGQuality = 95

	// timestampLayout formats the UTC timestamps embedded in
	// generated filenames and metadata.
	timestampLayout = "20060102_150405"
)

// Advisory memory model used by the estimation helpers. The model
// deliberately counts 3 bytes per pixel, matching the planar RGB cost
// of the scan stage rather than the in-memory RGBA representation.
const (
	// estimatePixelBytes is the modeled per-pixel cost of an image.
	estimatePixelBytes = 3

	// assumedAvailableMB is the baseline the requirement check
	// measures jobs against.
	assumedAvailableMB = 100

	// memoryScaleMargin keeps suggested dimensions safely under the
	// available budget.
	memoryScaleMargin = 0.8

	// minSuggestedDim is the floor for suggested downscale dimensions.
	minSuggestedDim = 100

	// estimateOverheadBytes covers fixed bookkeeping in the estimate.
	estimateOverheadBytes = 1024

	bytesPerMB = 1024 * 1024
)
