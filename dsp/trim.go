// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

const (
	// TrimFrameLength and TrimHopLength are the analysis frame and hop used
	// by Trim when the caller passes zero.
	TrimFrameLength = 2048
	TrimHopLength   = 512

	amin = 1e-10
)

// Trim removes leading and trailing silence from y.
//
// Each frame's mean square energy is computed over centered, zero-padded
// frames of frameLength samples spaced hopLength apart. A frame is
// non-silent when its energy is within topDB decibels of the loudest frame.
// The kept region runs from the first non-silent frame's start to the end of
// the last non-silent frame, capped at len(y). start and end index into y;
// the returned slice aliases y.
//
// Energies are relative to the loudest frame, so an all-zero clip has every
// frame at 0 dB and is kept whole. Nothing is kept only when topDB <= 0.
func Trim(y []float32, topDB float64, frameLength, hopLength int) (trimmed []float32, start, end int) {
	if frameLength <= 0 {
		frameLength = TrimFrameLength
	}
	if hopLength <= 0 {
		hopLength = TrimHopLength
	}
	if len(y) == 0 {
		return y, 0, 0
	}

	mse := frameEnergy(y, frameLength, hopLength)

	ref := 0.0
	for _, e := range mse {
		ref = math.Max(ref, e)
	}
	refDB := 10 * math.Log10(math.Max(amin, ref))

	first, last := -1, -1
	for t, e := range mse {
		db := 10*math.Log10(math.Max(amin, e)) - refDB
		if db > -topDB {
			if first < 0 {
				first = t
			}
			last = t
		}
	}

	if first < 0 {
		return y[:0], 0, 0
	}

	start = first * hopLength
	end = min(len(y), (last+1)*hopLength)

	return y[start:end], start, end
}

// frameEnergy returns the mean square of every centered frame of y.
func frameEnergy(y []float32, frameLength, hopLength int) []float64 {
	pad := frameLength / 2
	n := len(y)

	// prefix sums of squares over the zero-padded signal
	cum := make([]float64, n+1)
	for i, v := range y {
		cum[i+1] = cum[i] + float64(v)*float64(v)
	}
	sumRange := func(lo, hi int) float64 {
		lo = min(max(lo, 0), n)
		hi = min(max(hi, 0), n)
		return cum[hi] - cum[lo]
	}

	frames := 1 + (n+2*pad-frameLength)/hopLength
	if frames < 1 {
		frames = 1
	}

	out := make([]float64, frames)
	for t := range out {
		lo := t*hopLength - pad
		out[t] = sumRange(lo, lo+frameLength) / float64(frameLength)
	}

	return out
}
