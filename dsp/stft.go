// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"github.com/r9y9/gossp/stft"
)

// NumFrames is the number of centered STFT frames for n samples: the
// signal is reflect-padded by nFFT/2 on each side, so this is 1 + n/hop for
// even nFFT and 1 + (n-1)/hop for odd nFFT.
func NumFrames(n, nFFT, hopLength int) int {
	padded := n + 2*(nFFT/2)
	return 1 + (padded-nFFT)/hopLength
}

// STFTPower returns the power spectrogram |STFT(y)|^2 of y as
// [frames][nFFT/2+1], with centered, periodic-Hann windowed frames.
func STFTPower(y []float64, nFFT, hopLength int) [][]float64 {
	s := stft.New(hopLength, nFFT)
	s.Window = HannPeriodic(nFFT)

	spectrum := s.STFT(PadReflect(y, nFFT/2))

	bins := nFFT/2 + 1
	power := make([][]float64, len(spectrum))
	for t, frame := range spectrum {
		row := make([]float64, bins)
		for k := range bins {
			v := frame[k]
			row[k] = real(v)*real(v) + imag(v)*imag(v)
		}
		power[t] = row
	}

	return power
}
