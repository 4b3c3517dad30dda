package scan

import (
	"errors"
	"fmt"
)

// ErrVISCode indicates a VIS code string that is not exactly seven
// binary digits.
var ErrVISCode = errors.New("VIS code must be 7 binary digits")

// visPreamble is the calibration sequence preceding the VIS data bits:
// an attention pattern of alternating leader and level tones, then the
// classic leader-break-leader lead-in and the 30 ms start bit.
var visPreamble = []protoTone{
	{freqLeader, 100}, {freqBlack, 100}, {freqLeader, 100}, {freqBlack, 100},
	{freqWhite, 100}, {freqBlack, 100}, {freqWhite, 100}, {freqBlack, 100},
	{freqLeader, 300}, {freqSync, 10}, {freqLeader, 300}, {freqSync, 30},
}

// WriteHeader writes the VIS header for the given 7-bit code string.
//
// The data bits go out least significant first, so the code string is
// walked from its last character to its first, with '1' at 1100 Hz and
// '0' at 1300 Hz for 30 ms each. An even parity bit and a 1200 Hz stop
// bit follow: the parity tone is chosen so the count of one bits
// including parity is even.
func WriteHeader(w ToneWriter, visCode string) error {
	if len(visCode) != visBits {
		return fmt.Errorf("%w: got %q", ErrVISCode, visCode)
	}

	ones := 0
	for _, c := range visCode {
		switch c {
		case '1':
			ones++
		case '0':
		default:
			return fmt.Errorf("%w: got %q", ErrVISCode, visCode)
		}
	}

	for _, t := range visPreamble {
		w.WriteTone(t.freqHz, t.durationMS)
	}

	for i := visBits - 1; i >= 0; i-- {
		if visCode[i] == '1' {
			w.WriteTone(freqBitOne, visBitMS)
		} else {
			w.WriteTone(freqBitZero, visBitMS)
		}
	}

	if ones%2 == 0 {
		w.WriteTone(freqBitZero, visBitMS)
	} else {
		w.WriteTone(freqBitOne, visBitMS)
	}

	w.WriteTone(freqSync, visBitMS)
	return nil
}

// HeaderDurationMS returns the fixed duration of the VIS header in
// milliseconds.
func HeaderDurationMS() float64 {
	var total float64
	for _, t := range visPreamble {
		total += t.durationMS
	}
	return total + float64(visBits+2)*visBitMS
}
