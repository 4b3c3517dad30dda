package scan

import "image"

// MartinM1 writes the Martin M1 scan: a short 4.862 ms sync and 0.572 ms
// separator, then the green, blue and red channels at 0.4576 ms per
// pixel, each channel closed by another separator.
func MartinM1(w ToneWriter, img *image.RGBA) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	for row := range height {
		w.WriteTone(freqSync, martinSyncMS)
		w.WriteTone(freqBlack, martinSeparatorMS)

		for _, channel := range [3]int{1, 2, 0} {
			for col := range width {
				w.WriteTone(channelFreq(img, col, row, channel), martinPixelMS)
			}
			w.WriteTone(freqBlack, martinSeparatorMS)
		}
	}
}
