package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sstv "github.com/tphakala/go-sstv"
)

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBatchConfig_Defaults(t *testing.T) {
	path := writeJobFile(t, `
jobs:
  - input: photos/alpha.jpg
`)

	config, err := loadBatchConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sstv_output", config.OutputDir)
	assert.Equal(t, "robot36", config.Mode)
	assert.Equal(t, "png", config.ImageFormat)
	assert.Equal(t, 95, config.JPEGQuality)
	assert.Zero(t, config.SampleRate)
	assert.Nil(t, config.SaveMetadata)

	require.Len(t, config.Jobs, 1)
	assert.Equal(t, "alpha", config.Jobs[0].Name)
}

func TestLoadBatchConfig_Full(t *testing.T) {
	path := writeJobFile(t, `
output_dir: transmissions
mode: martin-m1
sample_rate: 16000
image_format: jpeg
jpeg_quality: 80
save_metadata: false
memory_limit_mb: 200
auto_clear_mb: 50
jobs:
  - input: photos/alpha.jpg
  - input: photos/beta.png
    name: beta_cq
`)

	config, err := loadBatchConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "transmissions", config.OutputDir)
	assert.Equal(t, 16000, config.SampleRate)
	assert.Equal(t, 200, config.MemoryLimitMB)
	assert.Equal(t, 50, config.AutoClearMB)
	require.NotNil(t, config.SaveMetadata)
	assert.False(t, *config.SaveMetadata)

	require.Len(t, config.Jobs, 2)
	assert.Equal(t, "alpha", config.Jobs[0].Name)
	assert.Equal(t, "beta_cq", config.Jobs[1].Name)

	mode, err := config.mode()
	require.NoError(t, err)
	assert.Equal(t, sstv.ModeMartinM1, mode)

	saveConfig, err := config.saveConfig()
	require.NoError(t, err)
	assert.Equal(t, sstv.FormatJPEG, saveConfig.Format)
	assert.Equal(t, 80, saveConfig.JPEGQuality)
	assert.False(t, saveConfig.SaveMetadata)
}

func TestLoadBatchConfig_NoJobs(t *testing.T) {
	path := writeJobFile(t, "output_dir: out\n")

	_, err := loadBatchConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no jobs")
}

func TestLoadBatchConfig_MissingInput(t *testing.T) {
	path := writeJobFile(t, `
jobs:
  - name: orphan
`)

	_, err := loadBatchConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input")
}

func TestLoadBatchConfig_FileNotFound(t *testing.T) {
	_, err := loadBatchConfig("/nonexistent/jobs.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read job file")
}

func TestLoadBatchConfig_BadYAML(t *testing.T) {
	path := writeJobFile(t, "jobs: [\n")

	_, err := loadBatchConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse job file")
}

func TestSaveConfig_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   sstv.ImageFormat
	}{
		{"png", sstv.FormatPNG},
		{"jpg", sstv.FormatJPEG},
		{"jpeg", sstv.FormatJPEG},
		{"BMP", sstv.FormatBMP},
	}
	for _, tt := range tests {
		config := &batchConfig{ImageFormat: tt.format, JPEGQuality: defaultJPEGQuality}
		saveConfig, err := config.saveConfig()
		require.NoError(t, err, "format %q", tt.format)
		assert.Equal(t, tt.want, saveConfig.Format, "format %q", tt.format)
		assert.True(t, saveConfig.SaveMetadata, "format %q", tt.format)
	}

	config := &batchConfig{ImageFormat: "tiff"}
	_, err := config.saveConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown image format")
}

func TestBatchConfigMode_Invalid(t *testing.T) {
	config := &batchConfig{Mode: "robot72"}
	_, err := config.mode()
	require.Error(t, err)
}
