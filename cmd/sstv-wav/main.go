// Command sstv-wav encodes an image as an SSTV WAV transmission.
//
// Usage:
//
//	sstv-wav -mode robot36 picture.jpg transmission.wav
//	sstv-wav -mode pd120 -rate 44100 picture.png transmission.wav
//	sstv-wav -mode martin-m1 -image fitted.png picture.jpg out.wav
//	sstv-wav -list
//
// The source image is letterboxed to the mode dimensions before
// encoding. The -image flag additionally saves the letterboxed image
// with a JSON sidecar describing the fit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	sstv "github.com/tphakala/go-sstv"
)

const (
	// CLI defaults
	defaultModeName    = "robot36"
	defaultJPEGQuality = 95
	minRequiredArgs    = 2

	// Size formatting
	bytesPerKB = 1024.0
	bytesPerMB = 1024.0 * 1024.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	modeName := flag.String("mode", defaultModeName, "SSTV mode: scottie-dx, robot36, pd120, martin-m1")
	rate := flag.Int("rate", sstv.DefaultSampleRate, "Output sample rate in Hz")
	imagePath := flag.String("image", "", "Also save the letterboxed image to this path")
	list := flag.Bool("list", false, "List supported modes and exit")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *list {
		printModes()
		return nil
	}

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input-image output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -mode robot36 photo.jpg tx.wav       # 36 s transmission\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -mode pd120 -rate 44100 photo.png tx.wav\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -mode scottie-dx -image fitted.png photo.jpg tx.wav\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}
	inputPath := args[0]
	outputPath := args[1]

	mode, err := sstv.ParseMode(*modeName)
	if err != nil {
		return err
	}
	m, err := sstv.New(&sstv.Config{Mode: mode, SampleRate: *rate})
	if err != nil {
		return err
	}

	src, format, err := loadImage(inputPath)
	if err != nil {
		return err
	}

	width, height := mode.Dimensions()
	if *verbose {
		bounds := src.Bounds()
		log.Printf("Input: %s (%s, %dx%d)", inputPath, format, bounds.Dx(), bounds.Dy())
		log.Printf("Output: %s", outputPath)
		log.Printf("Mode: %s (%dx%d, %.1f s nominal)", mode.DisplayName(), width, height, mode.Duration())
		log.Printf("Sample rate: %d Hz", *rate)
	}

	start := time.Now()
	samples, err := m.Modulate(src)
	if err != nil {
		return err
	}
	if err := m.WriteWAV(outputPath); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if *verbose {
		if meta, ok := m.Metadata(); ok {
			log.Printf("Fit: scale %.3f, bars left/right %d/%d top/bottom %d/%d",
				meta.Scale, meta.BarLeft, meta.BarRight, meta.BarTop, meta.BarBottom)
		}
	}

	if *imagePath != "" {
		if err := m.SaveProcessedImageWithConfig(*imagePath, saveConfigForPath(*imagePath)); err != nil {
			return err
		}
		if *verbose {
			log.Printf("Letterboxed image: %s", *imagePath)
		}
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return err
	}

	duration := m.Duration()
	fmt.Printf("Encoded %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %s, %dx%d target, %.1f s audio at %d Hz\n",
		mode.DisplayName(), width, height, duration, *rate)
	fmt.Printf("  %d samples, %s\n", len(samples), formatSize(info.Size()))
	fmt.Printf("  Encoded in %.2fs (%.0fx realtime)\n",
		elapsed.Seconds(), duration/elapsed.Seconds())
	return nil
}

func printModes() {
	fmt.Println("Supported modes:")
	for _, info := range sstv.SupportedModes() {
		fmt.Printf("  %-11s %4dx%-4d %6.1f s\n", info.Name, info.Width, info.Height, info.Duration)
	}
}
