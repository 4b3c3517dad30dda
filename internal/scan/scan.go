// Package scan implements the tone sequences of the supported SSTV
// modes: the VIS identification header, the per-mode image scan
// engines, and the closing tone sequence.
//
// Engines read pixel data from an RGBA image and emit protocol tones
// through a [ToneWriter] in transmission order. They scan whatever
// dimensions the image has; callers are expected to fit the image to
// the mode's native resolution first.
package scan

import "image"

// ToneWriter receives the tones of a transmission in order. The tone
// generator satisfies it directly; tests substitute a recorder.
type ToneWriter interface {
	// WriteTone appends a tone continuing from the current phase.
	WriteTone(freqHz, durationMS float64)

	// WriteToneAt appends a tone starting at an explicit phase in
	// radians.
	WriteToneAt(freqHz, durationMS, phase float64)
}

// protoTone is one entry of a fixed tone table.
type protoTone struct {
	freqHz     float64
	durationMS float64
}

// pixelFreq maps a pixel component value to its tone frequency above
// the black level.
func pixelFreq(value float64) float64 {
	return freqBlack + value*freqPerUnit
}

func rgbAt(img *image.RGBA, x, y int) (r, g, b uint8) {
	i := img.PixOffset(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

// channelFreq returns the tone frequency for one raw RGB channel of the
// pixel at logical position (x, y). Channel 0 is red, 1 green, 2 blue.
func channelFreq(img *image.RGBA, x, y, channel int) float64 {
	i := img.PixOffset(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)
	return pixelFreq(float64(img.Pix[i+channel]))
}

// pairAverage evaluates a component over the pixel at (x, y) and the
// one directly below, averaged. On the last row the single value
// stands in for the pair.
func pairAverage(img *image.RGBA, x, y, height int, f func(r, g, b uint8) float64) float64 {
	r, g, b := rgbAt(img, x, y)
	v := f(r, g, b)
	if y+1 < height {
		r, g, b = rgbAt(img, x, y+1)
		return (v + f(r, g, b)) / 2
	}
	return v
}
