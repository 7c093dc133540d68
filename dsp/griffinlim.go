// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DefaultGriffinLimIterations is used when GriffinLim is given 0 iterations.
const DefaultGriffinLimIterations = 32

// GriffinLim estimates a waveform whose centered STFT magnitude matches mag,
// given as [frames][nFFT/2+1]. Phases start at zero, so the result is
// deterministic. length <= 0 yields hop*(frames-1) samples.
func GriffinLim(mag [][]float64, nFFT, hopLength, iterations, length int) ([]float32, error) {
	if len(mag) == 0 {
		return nil, ErrEmptySpectrogram
	}
	if nFFT < 2 || hopLength <= 0 || len(mag[0]) != nFFT/2+1 {
		return nil, ErrInvalidAnalysis
	}
	if iterations <= 0 {
		iterations = DefaultGriffinLimIterations
	}
	if length <= 0 {
		length = hopLength * (len(mag) - 1)
	}

	window := HannPeriodic(nFFT)
	angles := make([][]complex128, len(mag))
	for t := range angles {
		angles[t] = make([]complex128, len(mag[t]))
		for k := range angles[t] {
			angles[t][k] = 1
		}
	}

	var y []float64
	for range iterations {
		y = istft(mag, angles, window, hopLength, length)

		rebuilt := stftComplex(y, window, hopLength)
		for t := range angles {
			if t >= len(rebuilt) {
				break
			}
			for k := range angles[t] {
				v := rebuilt[t][k]
				if a := cmplx.Abs(v); a > 1e-16 {
					angles[t][k] = v / complex(a, 0)
				} else {
					angles[t][k] = 1
				}
			}
		}
	}
	y = istft(mag, angles, window, hopLength, length)

	out := make([]float32, len(y))
	for i, v := range y {
		out[i] = float32(v)
	}

	return out, nil
}

// istft overlap-adds the inverse transforms of mag*angles and removes the
// centering pad.
func istft(mag [][]float64, angles [][]complex128, window []float64, hop, length int) []float64 {
	nFFT := len(window)
	full := nFFT + hop*(len(mag)-1)
	acc := make([]float64, full)
	norm := make([]float64, full)

	spectrum := make([]complex128, nFFT)
	for t, row := range mag {
		for k, m := range row {
			spectrum[k] = complex(m, 0) * angles[t][k]
		}
		for k := len(row); k < nFFT; k++ {
			spectrum[k] = cmplx.Conj(spectrum[nFFT-k])
		}

		frame := fft.IFFT(spectrum)
		base := t * hop
		for i, w := range window {
			acc[base+i] += real(frame[i]) * w
			norm[base+i] += w * w
		}
	}

	for i := range acc {
		if norm[i] > 1e-8 {
			acc[i] /= norm[i]
		}
	}

	pad := nFFT / 2
	out := make([]float64, length)
	copy(out, acc[min(pad, len(acc)):])

	return out
}

// stftComplex returns the centered, windowed STFT of y as [frames][nFFT/2+1].
func stftComplex(y []float64, window []float64, hop int) [][]complex128 {
	nFFT := len(window)
	padded := PadReflect(y, nFFT/2)
	frames := 1 + (len(padded)-nFFT)/hop
	if frames < 1 {
		return nil
	}

	out := make([][]complex128, frames)
	buf := make([]float64, nFFT)
	for t := range out {
		seg := padded[t*hop : t*hop+nFFT]
		for i, w := range window {
			buf[i] = seg[i] * w
		}
		spec := fft.FFTReal(buf)
		out[t] = spec[:nFFT/2+1]
	}

	return out
}

// Invert approximates a waveform from a power mel spectrogram laid out as
// [nMels][frames], the shape returned by Power.
//
// The linear power of each STFT bin is recovered by spreading every mel
// band back over the bins it covers, weighted so that a flat spectrum
// survives the round trip exactly. Phase comes from GriffinLim.
func (e *MelExtractor) Invert(melPower [][]float64, iterations int) ([]float32, error) {
	if len(melPower) != e.cfg.NMels || len(melPower[0]) == 0 {
		return nil, ErrEmptySpectrogram
	}

	frames := len(melPower[0])
	bins := e.cfg.NFFT/2 + 1

	rowSum := make([]float64, len(e.bands))
	for m, b := range e.bands {
		for _, w := range b.weights {
			rowSum[m] += w
		}
	}

	denom := make([]float64, bins)
	for m, b := range e.bands {
		for i, w := range b.weights {
			denom[b.lo+i] += w * rowSum[m]
		}
	}

	mag := make([][]float64, frames)
	for t := range mag {
		row := make([]float64, bins)
		for m, b := range e.bands {
			v := melPower[m][t]
			for i, w := range b.weights {
				row[b.lo+i] += w * v
			}
		}
		for k := range row {
			if denom[k] > 0 {
				row[k] = math.Sqrt(math.Max(0, row[k]/denom[k]))
			} else {
				row[k] = 0
			}
		}
		mag[t] = row
	}

	return GriffinLim(mag, e.cfg.NFFT, e.cfg.HopLength, iterations, 0)
}
