package scan

// Signal frequencies in Hz shared across modes.
const (
	// freqSync marks line starts and the VIS start and stop bits.
	freqSync = 1200.0

	// freqBlack is the black level; it also serves as the separator and
	// porch tone in most modes.
	freqBlack = 1500.0

	// freqWhite is the white level and the odd-line separator of Robot 36.
	freqWhite = 2300.0

	// freqLeader is the calibration leader and chroma porch tone.
	freqLeader = 1900.0

	// freqBitOne and freqBitZero encode the VIS data bits.
	freqBitOne  = 1100.0
	freqBitZero = 1300.0

	// freqPerUnit maps one unit of pixel or component value to Hz above
	// the black level, spanning 0-255 across the 1500-2300 Hz band.
	freqPerUnit = 3.1372549
)

// VIS header format.
const (
	visBits  = 7
	visBitMS = 30.0
)

// Scottie DX timing in ms. Lines run separator, green scan, separator,
// blue scan, sync, separator, red scan.
const (
	scottieSyncMS      = 9.0
	scottieSeparatorMS = 1.5
	scottiePixelMS     = 1.08
)

// Robot 36 timing in ms. Each 150 ms line carries luminance plus one
// alternating chroma channel.
const (
	robotSyncMS        = 9.0
	robotPorchMS       = 3.0
	robotLumaMS        = 0.275
	robotSeparatorMS   = 4.5
	robotChromaPorchMS = 1.5
	robotChromaMS      = 0.1375
)

// PD-120 timing in ms. Line pairs share one sync and one chroma pass.
const (
	pdSyncMS  = 20.0
	pdPorchMS = 2.08
	pdPixelMS = 0.19
)

// Martin M1 timing in ms. Lines run sync, separator, then green, blue
// and red scans each followed by a separator.
const (
	martinSyncMS      = 4.862
	martinSeparatorMS = 0.572
	martinPixelMS     = 0.4576
)
