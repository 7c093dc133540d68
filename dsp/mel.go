// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"
)

// Slaney mel scale: linear up to 1 kHz, logarithmic above.
const (
	melFSp       = 200.0 / 3
	melMinLogHz  = 1000.0
	melMinLogMel = melMinLogHz / melFSp
)

var melLogStep = math.Log(6.4) / 27.0

// HzToMel converts a frequency in Hz to the Slaney mel scale.
func HzToMel(hz float64) float64 {
	if hz >= melMinLogHz {
		return melMinLogMel + math.Log(hz/melMinLogHz)/melLogStep
	}
	return hz / melFSp
}

// MelToHz is the inverse of HzToMel.
func MelToHz(mel float64) float64 {
	if mel >= melMinLogMel {
		return melMinLogHz * math.Exp(melLogStep*(mel-melMinLogMel))
	}
	return melFSp * mel
}

// MelFilterBank builds nMels area-normalized triangular filters over the
// nFFT/2+1 bins of an nFFT-point spectrum. fmax <= 0 means sampleRate/2.
// The result is [nMels][nFFT/2+1].
func MelFilterBank(sampleRate, nFFT, nMels int, fmin, fmax float64) [][]float64 {
	if fmax <= 0 {
		fmax = float64(sampleRate) / 2
	}

	bins := nFFT/2 + 1
	fftFreqs := make([]float64, bins)
	for k := range fftFreqs {
		fftFreqs[k] = float64(k) * float64(sampleRate) / float64(nFFT)
	}

	// nMels+2 points equally spaced in mel
	lo, hi := HzToMel(fmin), HzToMel(fmax)
	melF := make([]float64, nMels+2)
	for i := range melF {
		melF[i] = MelToHz(lo + (hi-lo)*float64(i)/float64(nMels+1))
	}

	bank := make([][]float64, nMels)
	for m := range nMels {
		left, center, right := melF[m], melF[m+1], melF[m+2]
		enorm := 2.0 / (right - left)

		filter := make([]float64, bins)
		for k, f := range fftFreqs {
			lower := (f - left) / (center - left)
			upper := (right - f) / (right - center)
			w := math.Max(0, math.Min(lower, upper))
			filter[k] = w * enorm
		}
		bank[m] = filter
	}

	return bank
}

// MelConfig describes a mel spectrogram analysis.
type MelConfig struct {
	SampleRate int
	NFFT       int
	HopLength  int
	NMels      int
	FMin       float64
	FMax       float64 // <= 0 means SampleRate/2
}

// Validate checks that the analysis is well formed.
func (c MelConfig) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidAnalysis, c.SampleRate)
	case c.NFFT < 2:
		return fmt.Errorf("%w: n_fft must be at least 2, got %d", ErrInvalidAnalysis, c.NFFT)
	case c.HopLength <= 0:
		return fmt.Errorf("%w: hop length must be positive, got %d", ErrInvalidAnalysis, c.HopLength)
	case c.NMels <= 0:
		return fmt.Errorf("%w: n_mels must be positive, got %d", ErrInvalidAnalysis, c.NMels)
	case c.FMin < 0:
		return fmt.Errorf("%w: fmin must not be negative, got %g", ErrInvalidAnalysis, c.FMin)
	}

	fmax := c.fmax()
	if fmax > float64(c.SampleRate)/2 {
		return fmt.Errorf("%w: fmax %g above Nyquist %g", ErrInvalidAnalysis, fmax, float64(c.SampleRate)/2)
	}
	if c.FMin >= fmax {
		return fmt.Errorf("%w: fmin %g must be below fmax %g", ErrInvalidAnalysis, c.FMin, fmax)
	}

	return nil
}

func (c MelConfig) fmax() float64 {
	if c.FMax <= 0 {
		return float64(c.SampleRate) / 2
	}
	return c.FMax
}

// band is the non-zero span [lo, hi) of one mel filter.
type band struct {
	lo, hi  int
	weights []float64
}

// MelExtractor computes power mel spectrograms for a fixed analysis. The
// filterbank is built once; an extractor is safe for concurrent use.
type MelExtractor struct {
	cfg   MelConfig
	bank  [][]float64
	bands []band
}

// NewMelExtractor validates cfg and precomputes the filterbank.
func NewMelExtractor(cfg MelConfig) (*MelExtractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bank := MelFilterBank(cfg.SampleRate, cfg.NFFT, cfg.NMels, cfg.FMin, cfg.fmax())

	bands := make([]band, len(bank))
	for m, filter := range bank {
		lo, hi := 0, 0
		found := false
		for k, w := range filter {
			if w > 0 {
				if !found {
					lo, found = k, true
				}
				hi = k + 1
			}
		}
		bands[m] = band{lo: lo, hi: hi, weights: filter[lo:hi]}
	}

	return &MelExtractor{cfg: cfg, bank: bank, bands: bands}, nil
}

// Config returns the analysis parameters.
func (e *MelExtractor) Config() MelConfig { return e.cfg }

// FilterBank returns the [nMels][nFFT/2+1] filter matrix. It must not be modified.
func (e *MelExtractor) FilterBank() [][]float64 { return e.bank }

// Power returns the power mel spectrogram of y as [nMels][frames].
func (e *MelExtractor) Power(y []float32) [][]float64 {
	spec := STFTPower(toFloat64(y), e.cfg.NFFT, e.cfg.HopLength)

	mel := make([][]float64, e.cfg.NMels)
	for m, b := range e.bands {
		row := make([]float64, len(spec))
		for t, frame := range spec {
			var sum float64
			for i, w := range b.weights {
				sum += w * frame[b.lo+i]
			}
			row[t] = sum
		}
		mel[m] = row
	}

	return mel
}

// MelSpectrogram is a one-shot Power over a fresh extractor.
func MelSpectrogram(y []float32, cfg MelConfig) ([][]float64, error) {
	e, err := NewMelExtractor(cfg)
	if err != nil {
		return nil, err
	}
	return e.Power(y), nil
}
