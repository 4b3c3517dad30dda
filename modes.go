package sstv

import (
	"fmt"
	"strings"
)

// Mode identifies an SSTV transmission mode. Each mode fixes the target
// image dimensions, the VIS identification code and the scan line
// structure of the generated signal.
type Mode int

const (
	// ModeScottieDX transmits 320x256 color images in roughly 269.6
	// seconds. Slowest of the supported modes, best image quality on
	// noisy paths.
	ModeScottieDX Mode = iota

	// ModeRobot36 transmits 320x240 color images in roughly 36
	// seconds using luma scans with alternating line-pair chroma.
	ModeRobot36

	// ModePD120 transmits 640x496 color images in roughly 120 seconds,
	// sharing chroma between line pairs.
	ModePD120

	// ModeMartinM1 transmits 320x256 color images in roughly 114.7
	// seconds with sequential green, blue and red scans.
	ModeMartinM1
)

// modeSpec describes the static attributes of one mode.
type modeSpec struct {
	name        string // compact name used in filenames and metadata
	displayName string // hyphenated name used in mode listings
	width       int
	height      int
	duration    float64 // nominal transmission time in seconds
	visCode     string  // seven binary digits, LSB transmitted first
}

var modeSpecs = [...]modeSpec{
	ModeScottieDX: {"ScottieDX", "Scottie-DX", 320, 256, 269.6, "1001100"},
	ModeRobot36:   {"Robot36", "Robot-36", 320, 240, 36.0, "0001000"},
	ModePD120:     {"PD120", "PD-120", 640, 496, 120.0, "1011111"},
	ModeMartinM1:  {"MartinM1", "Martin-M1", 320, 256, 114.7, "0101100"},
}

func (m Mode) valid() bool {
	return m >= 0 && int(m) < len(modeSpecs)
}

// String returns the compact mode name, such as "Robot36". The compact
// form is embedded in generated filenames and metadata sidecars.
func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeSpecs[m].name
}

// DisplayName returns the hyphenated mode name, such as "Robot-36".
func (m Mode) DisplayName() string {
	if !m.valid() {
		return m.String()
	}
	return modeSpecs[m].displayName
}

// Dimensions returns the target image width and height in pixels.
func (m Mode) Dimensions() (width, height int) {
	if !m.valid() {
		return 0, 0
	}
	return modeSpecs[m].width, modeSpecs[m].height
}

// Duration returns the nominal transmission time in seconds. The
// nominal time is the published figure for the mode; the generated
// audio additionally carries the VIS header, the end tone sequence and
// the surrounding silences.
func (m Mode) Duration() float64 {
	if !m.valid() {
		return 0
	}
	return modeSpecs[m].duration
}

// VISCode returns the seven binary digits identifying the mode in the
// VIS header, least significant bit transmitted first.
func (m Mode) VISCode() string {
	if !m.valid() {
		return ""
	}
	return modeSpecs[m].visCode
}

// ParseMode resolves a mode name to a Mode. Matching ignores case and
// any "-" or "_" separators, so "Robot36", "robot-36" and "ROBOT_36"
// all resolve to ModeRobot36.
func ParseMode(name string) (Mode, error) {
	folded := strings.ToLower(name)
	folded = strings.ReplaceAll(folded, "-", "")
	folded = strings.ReplaceAll(folded, "_", "")
	for m, spec := range modeSpecs {
		if strings.ToLower(spec.name) == folded {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
}

// ModeInfo describes one supported mode for listings.
type ModeInfo struct {
	Mode     Mode
	Name     string  // hyphenated display name
	Width    int     // target width in pixels
	Height   int     // target height in pixels
	Duration float64 // nominal transmission time in seconds
}

// SupportedModes returns the supported modes in declaration order.
func SupportedModes() []ModeInfo {
	infos := make([]ModeInfo, len(modeSpecs))
	for m, spec := range modeSpecs {
		infos[m] = ModeInfo{
			Mode:     Mode(m),
			Name:     spec.displayName,
			Width:    spec.width,
			Height:   spec.height,
			Duration: spec.duration,
		}
	}
	return infos
}
