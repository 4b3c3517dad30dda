package scan

// endTones is the closing sequence marking the end of a transmission:
// half a second at black level, then two short leader pulses.
var endTones = []protoTone{
	{freqBlack, 500},
	{freqLeader, 100},
	{freqBlack, 100},
	{freqLeader, 100},
	{freqBlack, 100},
}

// WriteTrailer writes the closing tone sequence.
func WriteTrailer(w ToneWriter) {
	for _, t := range endTones {
		w.WriteTone(t.freqHz, t.durationMS)
	}
}

// TrailerDurationMS returns the fixed duration of the closing sequence
// in milliseconds.
func TrailerDurationMS() float64 {
	var total float64
	for _, t := range endTones {
		total += t.durationMS
	}
	return total
}
