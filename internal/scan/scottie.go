package scan

import "image"

// ScottieDX writes the Scottie DX scan. Channels go out green, blue,
// red at 1.08 ms per pixel, with the line sync placed between the blue
// and red scans as the mode's published timing dictates.
func ScottieDX(w ToneWriter, img *image.RGBA) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	// The sync pulse of the first line starts at forced zero phase;
	// every tone after it continues the waveform.
	w.WriteToneAt(freqSync, scottieSyncMS, 0)

	for row := range height {
		w.WriteTone(freqBlack, scottieSeparatorMS)
		for col := range width {
			w.WriteTone(channelFreq(img, col, row, 1), scottiePixelMS)
		}

		w.WriteTone(freqBlack, scottieSeparatorMS)
		for col := range width {
			w.WriteTone(channelFreq(img, col, row, 2), scottiePixelMS)
		}

		w.WriteTone(freqSync, scottieSyncMS)
		w.WriteTone(freqBlack, scottieSeparatorMS)
		for col := range width {
			w.WriteTone(channelFreq(img, col, row, 0), scottiePixelMS)
		}
	}
}
