// Package wavio reads and writes the mono 16-bit PCM WAV files the
// modulator produces, and validates the bit depth parameter of the
// file size estimator.
package wavio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrInvalidBitDepth indicates a bit depth outside the supported set.
var ErrInvalidBitDepth = errors.New("invalid bit depth")

// ErrNotWAV indicates a file that is not a readable PCM WAV stream.
var ErrNotWAV = errors.New("not a valid WAV file")

// HeaderBytes is the size of the canonical PCM WAV header: RIFF and fmt
// chunks plus the data chunk preamble.
const HeaderBytes = 44

// OutputBitDepth is the bit depth of every file this package writes.
const OutputBitDepth = 16

// ValidateBitDepth checks that bits names a supported PCM sample width.
func ValidateBitDepth(bits int) error {
	switch bits {
	case 16, 24, 32:
		return nil
	}
	return fmt.Errorf("%w: %d bits, supported widths are 16, 24 and 32", ErrInvalidBitDepth, bits)
}

// WriteFile writes samples to path as a single-channel 16-bit PCM WAV
// file at sampleRate Hz.
func WriteFile(path string, samples []int16, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := wav.NewEncoder(f, sampleRate, OutputBitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: OutputBitDepth,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return f.Close()
}

// ReadFile loads a mono PCM WAV file and returns its samples and sample
// rate. Samples wider than 16 bits are rejected by the decoder's buffer
// conversion; the modulator only ever produces 16-bit files.
func ReadFile(path string) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotWAV, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = int16(s)
	}
	return samples, buf.Format.SampleRate, nil
}
