package tone

// Sample rate limits.
//
// Rates below the lower bound cannot represent the SSTV frequency band
// (1100-2300 Hz) without aliasing; rates above the upper bound exceed
// any rate used by real capture or playback hardware.
const (
	// MinSampleRate is the lowest accepted sample rate in Hz.
	MinSampleRate = 1000

	// MaxSampleRate is the highest accepted sample rate in Hz.
	MaxSampleRate = 192000
)

// Synthesis constants.
const (
	// amplitude scales the unit sine wave to the full int16 range.
	amplitude = 32767.0

	// msPerSecond converts tone durations, which the protocol states in
	// milliseconds, to seconds.
	msPerSecond = 1000.0
)
