// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	ErrInvalidAnalysis  = errors.New("invalid spectral analysis parameters")
	ErrEmptySpectrogram = errors.New("empty spectrogram")
)
