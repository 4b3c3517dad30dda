package sstv

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ImageFormat selects the encoding for saved processed images.
type ImageFormat int

const (
	// FormatPNG writes lossless PNG. The default.
	FormatPNG ImageFormat = iota

	// FormatJPEG writes JPEG at the configured quality.
	FormatJPEG

	// FormatBMP writes uncompressed BMP.
	FormatBMP
)

func (f ImageFormat) valid() bool {
	return f >= FormatPNG && f <= FormatBMP
}

// extension returns the filename extension for the format, without dot.
func (f ImageFormat) extension() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatBMP:
		return "bmp"
	default:
		return "png"
	}
}

// ImageSaveConfig controls how processed images are written to disk.
type ImageSaveConfig struct {
	// Format selects the encoding.
	Format ImageFormat

	// JPEGQuality is the JPEG encoding quality, 1 to 100. Zero selects
	// the default of 95. Ignored by other formats.
	JPEGQuality int

	// SaveMetadata writes a JSON sidecar describing the processing
	// next to the image, under the same name with a .json extension.
	SaveMetadata bool

	// Suffix is inserted before the extension of auto-generated
	// filenames.
	Suffix string
}

// DefaultImageSaveConfig returns the default configuration: PNG with a
// metadata sidecar.
func DefaultImageSaveConfig() ImageSaveConfig {
	return ImageSaveConfig{
		Format:       FormatPNG,
		JPEGQuality:  defaultJPEGQuality,
		SaveMetadata: true,
	}
}

// PNGSaveConfig returns a PNG configuration with a metadata sidecar.
func PNGSaveConfig() ImageSaveConfig {
	return DefaultImageSaveConfig()
}

// JPEGSaveConfig returns a JPEG configuration with a metadata sidecar.
// The quality is clamped to the 1 to 100 range.
func JPEGSaveConfig(quality int) ImageSaveConfig {
	if quality < 1 {
		quality = 1
	} else if quality > 100 {
		quality = 100
	}
	return ImageSaveConfig{
		Format:       FormatJPEG,
		JPEGQuality:  quality,
		SaveMetadata: true,
	}
}

// BMPSaveConfig returns a BMP configuration with a metadata sidecar.
func BMPSaveConfig() ImageSaveConfig {
	return ImageSaveConfig{
		Format:       FormatBMP,
		JPEGQuality:  defaultJPEGQuality,
		SaveMetadata: true,
	}
}

// SaveProcessedImage writes the letterboxed image of the most recent
// run to path using the default configuration.
func (m *Modulator) SaveProcessedImage(path string) error {
	return m.SaveProcessedImageWithConfig(path, DefaultImageSaveConfig())
}

// SaveProcessedImageWithConfig writes the letterboxed image of the
// most recent run to path. The format follows config.Format regardless
// of the path's extension.
func (m *Modulator) SaveProcessedImageWithConfig(path string, config ImageSaveConfig) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saveProcessedLocked(path, config)
}

// SaveProcessedImageAuto writes the letterboxed image under dir with a
// generated filename: sstv_{mode}_{timestamp}_{width}x{height}.{ext},
// with config.Suffix inserted before the extension when set. It
// returns the path of the written file.
func (m *Modulator) SaveProcessedImageAuto(dir string, config ImageSaveConfig) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.processed == nil {
		return "", ErrNoProcessedImage
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	suffix := ""
	if config.Suffix != "" {
		suffix = "_" + config.Suffix
	}
	width, height := m.mode.Dimensions()
	name := fmt.Sprintf("sstv_%s_%s_%dx%d%s.%s",
		m.mode, m.meta.Timestamp, width, height, suffix, config.Format.extension())

	path := filepath.Join(dir, name)
	if err := m.saveProcessedLocked(path, config); err != nil {
		return "", err
	}
	return path, nil
}

// saveProcessedLocked writes the retained image and optional sidecar.
// Callers hold at least a read lock.
func (m *Modulator) saveProcessedLocked(path string, config ImageSaveConfig) error {
	if m.processed == nil {
		return ErrNoProcessedImage
	}
	if !config.Format.valid() {
		return fmt.Errorf("%w: unknown format %d", ErrImageEncode, int(config.Format))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageEncode, err)
	}

	switch config.Format {
	case FormatJPEG:
		quality := config.JPEGQuality
		if quality == 0 {
			quality = defaultJPEGQuality
		}
		err = jpeg.Encode(f, m.processed, &jpeg.Options{Quality: quality})
	case FormatBMP:
		err = bmp.Encode(f, m.processed)
	default:
		err = png.Encode(f, m.processed)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrImageEncode, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrImageEncode, err)
	}

	if config.SaveMetadata && m.meta != nil {
		sidecarPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
		if err := writeMetadataSidecar(sidecarPath, m.meta); err != nil {
			return err
		}
	}
	return nil
}
