package sstv

import (
	"fmt"
	"image"
	"math"
	"os"

	// Source images may arrive as GIF. PNG, JPEG and BMP decoding is
	// registered through the encoder imports.
	_ "image/gif"

	"github.com/tphakala/go-sstv/internal/tone"
	"github.com/tphakala/go-sstv/internal/wavio"
)

// decodeImage opens and decodes a source image file.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}
	return img, nil
}

// GenerateFromFile modulates the image at imagePath and writes the
// transmission to outputPath as a mono 16-bit WAV at DefaultSampleRate.
func GenerateFromFile(imagePath, outputPath string, mode Mode) error {
	img, err := decodeImage(imagePath)
	if err != nil {
		return err
	}
	return GenerateFromImage(img, outputPath, mode)
}

// GenerateFromImage modulates img and writes the transmission to
// outputPath as a mono 16-bit WAV at DefaultSampleRate.
func GenerateFromImage(img image.Image, outputPath string, mode Mode) error {
	m, err := NewModulator(mode)
	if err != nil {
		return err
	}
	if _, err := m.Modulate(img); err != nil {
		return err
	}
	return m.WriteWAV(outputPath)
}

// GenerateWithImageSave modulates the image at imagePath and writes
// both the WAV transmission and the letterboxed image under outputDir,
// named after baseName. It returns the paths of the written files.
func GenerateWithImageSave(imagePath, outputDir, baseName string, mode Mode, config ImageSaveConfig) (audioPath, imagePath2 string, err error) {
	img, err := decodeImage(imagePath)
	if err != nil {
		return "", "", err
	}
	m, err := NewModulator(mode)
	if err != nil {
		return "", "", err
	}
	return m.BatchProcess(img, outputDir, baseName, config)
}

// ProcessComplete runs the full pipeline for one image: decode, an
// optional advisory memory check, modulation and writing both outputs
// under outputDir. A memoryLimitMB of zero disables the check. It
// returns the output paths and the memory retained by the run before
// it was released.
func ProcessComplete(inputPath, outputDir, baseName string, mode Mode, config ImageSaveConfig, memoryLimitMB int) (audioPath, imagePath string, usage MemoryUsageMB, err error) {
	img, err := decodeImage(inputPath)
	if err != nil {
		return "", "", MemoryUsageMB{}, err
	}

	if memoryLimitMB > 0 {
		bounds := img.Bounds()
		check := CheckMemoryRequirements(bounds.Dx(), bounds.Dy(), mode, DefaultSampleRate)
		if !check.Fits && check.RequiredMB > float64(memoryLimitMB) {
			return "", "", MemoryUsageMB{}, fmt.Errorf("%w: %.1f MB required, limit %d MB",
				ErrMemoryLimit, check.RequiredMB, memoryLimitMB)
		}
	}

	m, err := NewModulator(mode)
	if err != nil {
		return "", "", MemoryUsageMB{}, err
	}
	audioPath, imagePath, err = m.BatchProcess(img, outputDir, baseName, config)
	if err != nil {
		return "", "", MemoryUsageMB{}, err
	}

	usage = m.MemoryUsage().MB()
	m.Reset()
	return audioPath, imagePath, usage, nil
}

// EstimateFileSize returns the size in bytes of the WAV file a
// transmission would produce at the nominal mode duration, for the
// given sample rate and bit depth.
func EstimateFileSize(mode Mode, sampleRate, bitDepth int) (int, error) {
	if !mode.valid() {
		return 0, fmt.Errorf("%w: Mode(%d)", ErrUnsupportedMode, int(mode))
	}
	if err := tone.ValidateRate(sampleRate); err != nil {
		return 0, err
	}
	if err := wavio.ValidateBitDepth(bitDepth); err != nil {
		return 0, err
	}
	samples := int(mode.Duration() * float64(sampleRate))
	return samples*(bitDepth/8) + wavio.HeaderBytes, nil
}

// EstimateMemoryUsage returns the modeled memory requirement in bytes
// for modulating an imageWidth by imageHeight source in mode at
// sampleRate. The model counts 3 bytes per pixel for the source and
// target images and 2 bytes per audio sample at the nominal duration.
func EstimateMemoryUsage(imageWidth, imageHeight int, mode Mode, sampleRate int) int {
	targetWidth, targetHeight := mode.Dimensions()
	sourceBytes := imageWidth * imageHeight * estimatePixelBytes
	targetBytes := targetWidth * targetHeight * estimatePixelBytes
	audioBytes := int(float64(sampleRate) * mode.Duration() * 2.0)
	return sourceBytes + targetBytes + audioBytes + estimateOverheadBytes
}

// MemoryCheck reports whether a job fits the advisory memory model.
type MemoryCheck struct {
	// Fits reports whether the estimated requirement stays within the
	// assumed available memory.
	Fits bool

	// RequiredMB is the estimated requirement in megabytes.
	RequiredMB float64

	// SuggestedWidth and SuggestedHeight are downscaled source
	// dimensions expected to fit the budget. Both are zero when Fits
	// is true.
	SuggestedWidth  int
	SuggestedHeight int
}

// CheckMemoryRequirements estimates the memory requirement of a job
// and, when it exceeds the assumed available budget, suggests smaller
// source dimensions.
func CheckMemoryRequirements(imageWidth, imageHeight int, mode Mode, sampleRate int) MemoryCheck {
	requiredMB := float64(EstimateMemoryUsage(imageWidth, imageHeight, mode, sampleRate)) / bytesPerMB
	if requiredMB <= assumedAvailableMB {
		return MemoryCheck{Fits: true, RequiredMB: requiredMB}
	}

	scale := math.Sqrt(assumedAvailableMB / requiredMB * memoryScaleMargin)
	width := int(float64(imageWidth) * scale)
	height := int(float64(imageHeight) * scale)
	if width < minSuggestedDim {
		width = minSuggestedDim
	}
	if height < minSuggestedDim {
		height = minSuggestedDim
	}
	return MemoryCheck{
		RequiredMB:      requiredMB,
		SuggestedWidth:  width,
		SuggestedHeight: height,
	}
}
