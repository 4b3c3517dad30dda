// Package sstv generates Slow-Scan Television (SSTV) transmissions
// from images.
//
// An image is letterboxed to the dimensions of the selected mode and
// encoded as a sequence of audio tones: a VIS header identifying the
// mode, the scan line signal carrying the pixel data and a closing end
// tone sequence. Tone boundaries are phase continuous and fractional
// sample durations carry over between tones, so long transmissions do
// not drift against their nominal timing.
//
// # Modes
//
// Four modes are supported: [ModeScottieDX] and [ModeMartinM1]
// transmit 320x256 RGB images, [ModeRobot36] transmits 320x240 using
// luma scans with line-alternating chroma, and [ModePD120] transmits
// 640x496 sharing chroma between line pairs. [SupportedModes] lists
// them with their dimensions and nominal durations; [ParseMode]
// resolves user-supplied names.
//
// # Basic Usage
//
// The one-shot helpers cover the common cases:
//
//	err := sstv.GenerateFromFile("photo.jpg", "photo.wav", sstv.ModeRobot36)
//
// For control over the sample rate, or to reuse buffers across runs,
// construct a [Modulator]:
//
//	m, err := sstv.New(&sstv.Config{Mode: sstv.ModeMartinM1, SampleRate: 44100})
//	if err != nil {
//		log.Fatal(err)
//	}
//	samples, err := m.Modulate(img)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = m.WriteWAV("out.wav")
//
// [Modulator.Modulate] returns the caller's copy of the samples and
// retains the run's audio, letterboxed image and processing metadata
// for later access through [Modulator.Samples],
// [Modulator.ProcessedImage] and [Modulator.Metadata].
//
// # Image Output
//
// The letterboxed image can be written next to the audio, with an
// optional JSON sidecar describing how the source was fitted:
//
//	err := m.SaveProcessedImageWithConfig("out.png", sstv.PNGSaveConfig())
//
// [Modulator.BatchProcess] writes both outputs under one directory
// with generated names, and [ProcessComplete] wraps the whole pipeline
// including an advisory memory check.
//
// # Memory Management
//
// Retained state persists until the next run or an explicit clear.
// [Modulator.MemoryUsage] reports its size, [Modulator.Reset],
// [Modulator.ClearAudio] and [Modulator.ClearImage] release it, and
// [Modulator.AutoManageMemory] clears automatically past a threshold.
// [EstimateFileSize], [EstimateMemoryUsage] and
// [CheckMemoryRequirements] model job costs without running them.
package sstv
