package scan

import (
	"image"

	"github.com/tphakala/go-sstv/internal/colorspace"
)

// Robot36 writes the Robot 36 scan. Every 150 ms line carries the full
// luminance row at 0.275 ms per pixel plus one chroma channel at half
// the horizontal rate, alternating R-Y on even lines and B-Y on odd
// lines. Chroma values average the line with the one below it, which
// halves the vertical chroma resolution the way receivers expect.
func Robot36(w ToneWriter, img *image.RGBA) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	for row := range height {
		w.WriteTone(freqSync, robotSyncMS)
		w.WriteTone(freqBlack, robotPorchMS)

		for col := range width {
			r, g, b := rgbAt(img, col, row)
			w.WriteTone(pixelFreq(colorspace.Luminance(r, g, b)), robotLumaMS)
		}

		if row%2 == 0 {
			w.WriteTone(freqBlack, robotSeparatorMS)
			w.WriteTone(freqLeader, robotChromaPorchMS)
			for col := range width {
				w.WriteTone(pixelFreq(pairAverage(img, col, row, height, colorspace.ChromaRed)), robotChromaMS)
			}
		} else {
			w.WriteTone(freqWhite, robotSeparatorMS)
			w.WriteTone(freqLeader, robotChromaPorchMS)
			for col := range width {
				w.WriteTone(pixelFreq(pairAverage(img, col, row, height, colorspace.ChromaBlue)), robotChromaMS)
			}
		}
	}
}
