package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for the common source image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	sstv "github.com/tphakala/go-sstv"
)

// loadImage opens and decodes a source image in any registered format.
// It returns the decoded image and the detected format name.
func loadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open input image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, format, nil
}

// saveConfigForPath picks the save configuration matching the file
// extension, defaulting to PNG.
func saveConfigForPath(path string) sstv.ImageSaveConfig {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return sstv.JPEGSaveConfig(defaultJPEGQuality)
	case ".bmp":
		return sstv.BMPSaveConfig()
	default:
		return sstv.PNGSaveConfig()
	}
}

// formatSize renders a byte count in human readable units.
func formatSize(n int64) string {
	switch {
	case float64(n) >= bytesPerMB:
		return fmt.Sprintf("%.1f MB", float64(n)/bytesPerMB)
	case float64(n) >= bytesPerKB:
		return fmt.Sprintf("%.1f KB", float64(n)/bytesPerKB)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
