package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	sstv "github.com/tphakala/go-sstv"
)

const (
	defaultOutputDir   = "sstv_output"
	defaultMode        = "robot36"
	defaultImageFormat = "png"
	defaultJPEGQuality = 95
)

// batchJob is one image to encode.
type batchJob struct {
	// Input is the source image path.
	Input string `yaml:"input"`

	// Name is the base name for the job's outputs. Defaults to the
	// input filename without its extension.
	Name string `yaml:"name"`
}

// batchConfig is the YAML job file layout.
type batchConfig struct {
	OutputDir     string     `yaml:"output_dir"`
	Mode          string     `yaml:"mode"`
	SampleRate    int        `yaml:"sample_rate"`
	ImageFormat   string     `yaml:"image_format"`
	JPEGQuality   int        `yaml:"jpeg_quality"`
	SaveMetadata  *bool      `yaml:"save_metadata"`
	MemoryLimitMB int        `yaml:"memory_limit_mb"`
	AutoClearMB   int        `yaml:"auto_clear_mb"`
	Jobs          []batchJob `yaml:"jobs"`
}

// loadBatchConfig reads and validates a YAML job file, filling in
// defaults for absent fields.
func loadBatchConfig(path string) (*batchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}

	var config batchConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}

	if config.OutputDir == "" {
		config.OutputDir = defaultOutputDir
	}
	if config.Mode == "" {
		config.Mode = defaultMode
	}
	if config.ImageFormat == "" {
		config.ImageFormat = defaultImageFormat
	}
	if config.JPEGQuality == 0 {
		config.JPEGQuality = defaultJPEGQuality
	}

	if len(config.Jobs) == 0 {
		return nil, fmt.Errorf("job file %s lists no jobs", path)
	}
	for i := range config.Jobs {
		job := &config.Jobs[i]
		if job.Input == "" {
			return nil, fmt.Errorf("job %d has no input", i)
		}
		if job.Name == "" {
			base := filepath.Base(job.Input)
			job.Name = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	return &config, nil
}

// mode resolves the configured mode name.
func (c *batchConfig) mode() (sstv.Mode, error) {
	return sstv.ParseMode(c.Mode)
}

// saveConfig builds the image save configuration for the batch.
func (c *batchConfig) saveConfig() (sstv.ImageSaveConfig, error) {
	var config sstv.ImageSaveConfig
	switch strings.ToLower(c.ImageFormat) {
	case "png":
		config = sstv.PNGSaveConfig()
	case "jpg", "jpeg":
		config = sstv.JPEGSaveConfig(c.JPEGQuality)
	case "bmp":
		config = sstv.BMPSaveConfig()
	default:
		return config, fmt.Errorf("unknown image format %q", c.ImageFormat)
	}
	if c.SaveMetadata != nil {
		config.SaveMetadata = *c.SaveMetadata
	}
	return config, nil
}
