// Package colorspace converts RGB pixels to the studio-swing luminance
// and chrominance values that SSTV modes transmit.
//
// The coefficient set is the fixed-point table common to SSTV encoders,
// with the 1/256 normalization folded in as a literal 0.003906 factor.
// Results are intentionally not clamped: scan engines map them straight
// to tone frequencies, and the unclipped fractional values keep that
// mapping reversible by receivers.
package colorspace

const (
	scale = 0.003906

	lumaOffset   = 16.0
	chromaOffset = 128.0
)

// Luminance returns the Y component for an RGB pixel, nominally in
// [16, 235] for in-gamut colors.
func Luminance(r, g, b uint8) float64 {
	return lumaOffset + scale*(65.738*float64(r)+129.057*float64(g)+25.064*float64(b))
}

// ChromaRed returns the R-Y component, nominally centered at 128.
func ChromaRed(r, g, b uint8) float64 {
	return chromaOffset + scale*(112.439*float64(r)-94.154*float64(g)-18.285*float64(b))
}

// ChromaBlue returns the B-Y component, nominally centered at 128.
func ChromaBlue(r, g, b uint8) float64 {
	return chromaOffset + scale*(-37.945*float64(r)-74.494*float64(g)+112.439*float64(b))
}
