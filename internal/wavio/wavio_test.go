package wavio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// === Bit Depth Validation Tests ===

func TestValidateBitDepth(t *testing.T) {
	for _, bits := range []int{16, 24, 32} {
		assert.NoErrorf(t, ValidateBitDepth(bits), "%d bits rejected", bits)
	}

	for _, bits := range []int{0, 8, 12, 17, 31, 64, -16} {
		err := ValidateBitDepth(bits)
		require.Errorf(t, err, "%d bits accepted", bits)
		assert.ErrorIs(t, err, ErrInvalidBitDepth)
	}
}

// === File Round Trip Tests ===

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")

	samples := make([]int16, 4800)
	for i := range samples {
		samples[i] = int16(math.Round(12000 * math.Sin(2*math.Pi*1200*float64(i)/48000)))
	}

	require.NoError(t, WriteFile(path, samples, 48000))

	got, rate, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 48000, rate)
	assert.Equal(t, samples, got)
}

func TestWriteFileHeaderOverhead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.wav")
	samples := []int16{0, 1000, -1000, 32767, -32768, 0}

	require.NoError(t, WriteFile(path, samples, 8000))

	// A canonical PCM file carries exactly HeaderBytes of container
	// around the raw data, which is what the file size estimator
	// accounts for.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, HeaderBytes+2*len(samples), info.Size())
}

func TestWriteFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	require.NoError(t, WriteFile(path, nil, 44100))

	got, rate, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 44100, rate)
	assert.Empty(t, got)
}

func TestReadFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.bin")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a RIFF container"), 0o644))

	_, _, err := ReadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotWAV)
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "absent.wav"))
	require.Error(t, err)
}
