package scan

import (
	"image"

	"github.com/tphakala/go-sstv/internal/colorspace"
)

// PD120 writes the PD-120 scan. Lines go out in pairs behind a single
// 20 ms sync: the upper line's luminance, both chroma channels averaged
// over the pair, then the lower line's luminance, all at 0.19 ms per
// pixel. An unpaired final line transmits its luminance without a
// partner pass.
func PD120(w ToneWriter, img *image.RGBA) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	for row := 0; row < height; row += 2 {
		w.WriteTone(freqSync, pdSyncMS)
		w.WriteTone(freqBlack, pdPorchMS)

		for col := range width {
			r, g, b := rgbAt(img, col, row)
			w.WriteTone(pixelFreq(colorspace.Luminance(r, g, b)), pdPixelMS)
		}

		for col := range width {
			w.WriteTone(pixelFreq(pairAverage(img, col, row, height, colorspace.ChromaRed)), pdPixelMS)
		}

		for col := range width {
			w.WriteTone(pixelFreq(pairAverage(img, col, row, height, colorspace.ChromaBlue)), pdPixelMS)
		}

		if row+1 < height {
			for col := range width {
				r, g, b := rgbAt(img, col, row+1)
				w.WriteTone(pixelFreq(colorspace.Luminance(r, g, b)), pdPixelMS)
			}
		}
	}
}
