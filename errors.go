package sstv

import (
	"errors"

	"github.com/tphakala/go-sstv/internal/scan"
	"github.com/tphakala/go-sstv/internal/tone"
	"github.com/tphakala/go-sstv/internal/wavio"
)

// Common errors returned by the modulator.
var (
	// ErrInvalidConfig is returned when a configuration is nil or
	// contains values that fail validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedMode is returned when a Mode value does not name
	// one of the supported SSTV modes.
	ErrUnsupportedMode = errors.New("unsupported SSTV mode")

	// ErrInvalidSampleRate is returned when a sample rate falls outside
	// [MinSampleRate, MaxSampleRate]. Errors carrying it can be
	// inspected as a *RateError for the offending value and bounds.
	ErrInvalidSampleRate = tone.ErrRateOutOfRange

	// ErrInvalidBitDepth is returned when a bit depth is not one of
	// the depths accepted for size estimation (16, 24 or 32).
	ErrInvalidBitDepth = wavio.ErrInvalidBitDepth

	// ErrInvalidVISCode is returned when a VIS code string is not
	// exactly seven binary digits.
	ErrInvalidVISCode = scan.ErrVISCode

	// ErrNoProcessedImage is returned when an image accessor or save
	// operation runs before any successful modulation.
	ErrNoProcessedImage = errors.New("no processed image available")

	// ErrImageDecode is returned when a source image cannot be opened
	// or decoded.
	ErrImageDecode = errors.New("image decode failed")

	// ErrImageEncode is returned when a processed image cannot be
	// encoded or written.
	ErrImageEncode = errors.New("image encode failed")

	// ErrMemoryLimit is returned by ProcessComplete when the advisory
	// memory model predicts a job would exceed the configured limit.
	ErrMemoryLimit = errors.New("estimated memory exceeds limit")
)

// RateError reports a sample rate outside the supported range. It wraps
// ErrInvalidSampleRate and records the rejected rate and the bounds.
type RateError = tone.RateError
