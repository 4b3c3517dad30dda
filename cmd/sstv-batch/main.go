// Command sstv-batch encodes a set of images as SSTV transmissions,
// driven by a YAML job file.
//
// Usage:
//
//	sstv-batch -config jobs.yaml
//	sstv-batch -config jobs.yaml -v
//
// Job file:
//
//	output_dir: transmissions
//	mode: robot36
//	sample_rate: 16000
//	image_format: png
//	memory_limit_mb: 200
//	auto_clear_mb: 50
//	jobs:
//	  - input: photos/alpha.jpg
//	  - input: photos/beta.png
//	    name: beta_cq
//
// Each job writes a WAV transmission and the letterboxed image under
// output_dir. A nonzero auto_clear_mb releases retained buffers
// between jobs once they exceed the threshold.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	// Register decoders for the common source image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	sstv "github.com/tphakala/go-sstv"
)

const defaultConfigFile = "sstv-batch.yaml"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigFile, "YAML job file")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	config, err := loadBatchConfig(*configPath)
	if err != nil {
		return err
	}
	mode, err := config.mode()
	if err != nil {
		return err
	}
	saveConfig, err := config.saveConfig()
	if err != nil {
		return err
	}

	m, err := sstv.New(&sstv.Config{Mode: mode, SampleRate: config.SampleRate})
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Mode: %s at %d Hz", mode.DisplayName(), m.SampleRate())
		log.Printf("Output directory: %s", config.OutputDir)
		log.Printf("Jobs: %d", len(config.Jobs))
	}

	start := time.Now()
	failed := 0
	for _, job := range config.Jobs {
		if err := runJob(m, config, job, saveConfig, *verbose); err != nil {
			log.Printf("job %s: %v", job.Name, err)
			failed++
		}
		if config.AutoClearMB > 0 && m.AutoManageMemory(config.AutoClearMB) && *verbose {
			log.Printf("job %s: released retained buffers", job.Name)
		}
	}
	elapsed := time.Since(start)

	done := len(config.Jobs) - failed
	fmt.Printf("Encoded %d/%d jobs in %.1fs\n", done, len(config.Jobs), elapsed.Seconds())
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(config.Jobs))
	}
	return nil
}

func runJob(m *sstv.Modulator, config *batchConfig, job batchJob, saveConfig sstv.ImageSaveConfig, verbose bool) error {
	src, err := decodeSource(job.Input)
	if err != nil {
		return err
	}

	if config.MemoryLimitMB > 0 {
		bounds := src.Bounds()
		check := sstv.CheckMemoryRequirements(bounds.Dx(), bounds.Dy(), m.Mode(), m.SampleRate())
		if !check.Fits && check.RequiredMB > float64(config.MemoryLimitMB) {
			return fmt.Errorf("estimated %.1f MB exceeds limit %d MB, try %dx%d",
				check.RequiredMB, config.MemoryLimitMB, check.SuggestedWidth, check.SuggestedHeight)
		}
	}

	start := time.Now()
	audioPath, imagePath, err := m.BatchProcess(src, config.OutputDir, job.Name, saveConfig)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("job %s: %s, %s (%.2fs)", job.Name,
			filepath.Base(audioPath), filepath.Base(imagePath), time.Since(start).Seconds())
	}
	return nil
}

func decodeSource(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
