// Command sstv-analyze inspects the VIS header of an SSTV WAV file.
// It verifies the preamble tone sequence, decodes the seven VIS data
// bits, checks their parity and matches the code against the known
// modes.
package main

import (
	"fmt"
	"math"
	"os"

	sstv "github.com/tphakala/go-sstv"
	"github.com/tphakala/go-sstv/internal/spectral"
	"github.com/tphakala/go-sstv/internal/wavio"
)

const (
	// VIS tone frequencies in Hz
	leaderHz  = 1900.0
	breakHz   = 1200.0
	porchHz   = 1500.0
	whiteHz   = 2300.0
	bitOneHz  = 1100.0
	bitZeroHz = 1300.0

	// VIS bit cell duration in milliseconds
	bitMS = 30.0

	// Tone classification tolerance in Hz
	toneTolerance = 50.0

	// Samples below this amplitude count as silence
	silenceFloor = 8

	// Full scale of 16-bit samples for level calculations
	fullScale = 32767.0

	visBits = 7
)

// preambleSegment is one expected tone of the VIS preamble.
type preambleSegment struct {
	hz float64
	ms float64
}

var visPreamble = []preambleSegment{
	{leaderHz, 100}, {porchHz, 100}, {leaderHz, 100}, {porchHz, 100},
	{whiteHz, 100}, {porchHz, 100}, {whiteHz, 100}, {porchHz, 100},
	{leaderHz, 300}, {breakHz, 10}, {leaderHz, 300}, {breakHz, 30},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s transmission.wav\n", os.Args[0])
		os.Exit(1)
	}

	samples, rate, err := wavio.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== SSTV WAV Analysis ===")
	fmt.Printf("File: %s\n", os.Args[1])
	fmt.Printf("  Sample rate: %d Hz\n", rate)
	fmt.Printf("  Samples: %d (%.2f s)\n", len(samples), float64(len(samples))/float64(rate))

	rms := spectral.RMS(samples)
	fmt.Printf("  RMS level: %.1f dBFS\n", spectral.LinearToDB(rms/fullScale))

	visStart := firstNonSilent(samples)
	if visStart < 0 {
		fmt.Println("\nNo signal found, file is silent.")
		os.Exit(1)
	}
	fmt.Printf("  Lead silence: %.1f ms\n", 1000*float64(visStart)/float64(rate))

	fmt.Println("\n=== VIS Preamble ===")
	pos := visStart
	ok := true
	for _, seg := range visPreamble {
		n := int(seg.ms * float64(rate) / 1000)
		if pos+n > len(samples) {
			fmt.Println("  File ends inside the preamble.")
			os.Exit(1)
		}
		got := spectral.DominantFrequency(samples[pos:pos+n], rate)
		status := "ok"
		if math.Abs(got-seg.hz) > toneTolerance {
			status = "DEVIATES"
			ok = false
		}
		fmt.Printf("  %5.0f ms  expect %4.0f Hz  got %6.1f Hz  %s\n", seg.ms, seg.hz, got, status)
		pos += n
	}
	if !ok {
		fmt.Println("  Preamble does not match the VIS sequence.")
	}

	fmt.Println("\n=== VIS Data Bits ===")
	bitSamples := int(bitMS * float64(rate) / 1000)
	code := make([]byte, visBits)
	ones := 0
	for i := range visBits {
		if pos+bitSamples > len(samples) {
			fmt.Println("  File ends inside the data bits.")
			os.Exit(1)
		}
		got := spectral.DominantFrequency(samples[pos:pos+bitSamples], rate)
		bit := classifyBit(got)
		// Bits arrive least significant first.
		code[visBits-1-i] = bit
		if bit == '1' {
			ones++
		}
		fmt.Printf("  Bit %d: %6.1f Hz -> %c\n", i, got, bit)
		pos += bitSamples
	}

	if pos+bitSamples > len(samples) {
		fmt.Println("  File ends before the parity bit.")
		os.Exit(1)
	}
	parityWant := bitZeroHz
	if ones%2 != 0 {
		parityWant = bitOneHz
	}
	parityGot := spectral.DominantFrequency(samples[pos:pos+bitSamples], rate)
	parityStatus := "ok"
	if math.Abs(parityGot-parityWant) > toneTolerance {
		parityStatus = "FAIL"
	}
	fmt.Printf("  Parity: %6.1f Hz, expect %4.0f Hz  %s\n", parityGot, parityWant, parityStatus)

	fmt.Println("\n=== Mode Identification ===")
	fmt.Printf("  VIS code: %s\n", code)
	for _, info := range sstv.SupportedModes() {
		if info.Mode.VISCode() == string(code) {
			fmt.Printf("  Mode: %s (%dx%d, %.1f s nominal)\n",
				info.Name, info.Width, info.Height, info.Duration)
			audioSeconds := float64(len(samples)) / float64(rate)
			fmt.Printf("  Audio duration: %.2f s (nominal %.1f s plus header and trailer)\n",
				audioSeconds, info.Duration)
			return
		}
	}
	fmt.Println("  No known mode matches this code.")
}

// firstNonSilent returns the index of the first sample above the
// silence floor, or -1 for an all-silent file.
func firstNonSilent(samples []int16) int {
	for i, s := range samples {
		if s > silenceFloor || s < -silenceFloor {
			return i
		}
	}
	return -1
}

// classifyBit maps a measured frequency to a VIS bit value, or '?'
// when it matches neither bit tone.
func classifyBit(hz float64) byte {
	switch {
	case math.Abs(hz-bitOneHz) <= toneTolerance:
		return '1'
	case math.Abs(hz-bitZeroHz) <= toneTolerance:
		return '0'
	default:
		return '?'
	}
}
