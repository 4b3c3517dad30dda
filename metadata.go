package sstv

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tphakala/go-sstv/internal/imagefit"
)

// Metadata records how the most recent modulation run prepared its
// source image.
type Metadata struct {
	// Mode is the SSTV mode the image was prepared for.
	Mode Mode

	// SampleRate is the audio sample rate of the run in Hz.
	SampleRate int

	// OriginalWidth and OriginalHeight are the source dimensions.
	OriginalWidth  int
	OriginalHeight int

	// TargetWidth and TargetHeight are the mode dimensions.
	TargetWidth  int
	TargetHeight int

	// Scale is the uniform factor applied to the source.
	Scale float64

	// BarLeft, BarTop, BarRight and BarBottom are the widths of the
	// black bars padding the scaled image, in pixels.
	BarLeft   int
	BarTop    int
	BarRight  int
	BarBottom int

	// Timestamp is the UTC processing time, formatted 20060102_150405.
	Timestamp string
}

func newMetadata(mode Mode, sampleRate int, fit *imagefit.Result, now time.Time) Metadata {
	left, top, right, bottom := fit.Bars()
	width, height := mode.Dimensions()
	return Metadata{
		Mode:           mode,
		SampleRate:     sampleRate,
		OriginalWidth:  fit.SourceWidth,
		OriginalHeight: fit.SourceHeight,
		TargetWidth:    width,
		TargetHeight:   height,
		Scale:          fit.Scale,
		BarLeft:        left,
		BarTop:         top,
		BarRight:       right,
		BarBottom:      bottom,
		Timestamp:      now.Format(timestampLayout),
	}
}

// Sidecar JSON layout. Field names are part of the on-disk format.
type sidecarDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type sidecarBars struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

type sidecarInfo struct {
	Version             string            `json:"version"`
	SSTVMode            string            `json:"sstv_mode"`
	OriginalDimensions  sidecarDimensions `json:"original_dimensions"`
	TargetDimensions    sidecarDimensions `json:"target_dimensions"`
	ScaleFactor         float64           `json:"scale_factor"`
	BlackBars           sidecarBars       `json:"black_bars"`
	ProcessingTimestamp string            `json:"processing_timestamp"`
	SampleRate          int               `json:"sample_rate"`
	DurationSeconds     float64           `json:"duration_seconds"`
}

type sidecar struct {
	SSTVProcessingInfo sidecarInfo `json:"sstv_processing_info"`
}

// writeMetadataSidecar writes meta as pretty-printed JSON at path.
func writeMetadataSidecar(path string, meta *Metadata) error {
	doc := sidecar{
		SSTVProcessingInfo: sidecarInfo{
			Version:  Version,
			SSTVMode: meta.Mode.String(),
			OriginalDimensions: sidecarDimensions{
				Width:  meta.OriginalWidth,
				Height: meta.OriginalHeight,
			},
			TargetDimensions: sidecarDimensions{
				Width:  meta.TargetWidth,
				Height: meta.TargetHeight,
			},
			ScaleFactor:         meta.Scale,
			BlackBars:           sidecarBars{Left: meta.BarLeft, Top: meta.BarTop, Right: meta.BarRight, Bottom: meta.BarBottom},
			ProcessingTimestamp: meta.Timestamp,
			SampleRate:          meta.SampleRate,
			DurationSeconds:     meta.Mode.Duration(),
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("metadata sidecar: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("metadata sidecar: %w", err)
	}
	return nil
}
