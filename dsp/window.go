// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// HannPeriodic returns an n-point periodic Hann window (the DFT-even form
// used for spectral analysis, w[0] = 0 and w[n/2] = 1).
func HannPeriodic(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

// PadReflect mirrors y around its first and last sample by pad values on each
// side, excluding the edge sample itself. Signals shorter than pad are
// reflected repeatedly.
func PadReflect(y []float64, pad int) []float64 {
	n := len(y)
	out := make([]float64, n+2*pad)
	if n == 0 {
		return out
	}

	for i := range out {
		out[i] = y[reflectIndex(i-pad, n)]
	}

	return out
}

func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}

	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}

	return i
}

func toFloat64(y []float32) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = float64(v)
	}
	return out
}
