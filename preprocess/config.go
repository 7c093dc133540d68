// SPDX-License-Identifier: EPL-2.0

package preprocess

import (
	"fmt"

	"github.com/ik5/speechprep/audio"
	"github.com/ik5/speechprep/dsp"
)

// OutputDim is the channel count of every produced waveform.
const OutputDim = 1

// Config holds the fixed parameters of a Preprocessor.
type Config struct {
	SampleRate int     `yaml:"sample_rate"`
	NFFT       int     `yaml:"n_fft"`
	HopLength  int     `yaml:"hop_length"`
	NMels      int     `yaml:"n_mels"`
	FMin       float64 `yaml:"fmin"`
	// FMax of 0 means SampleRate/2.
	FMax float64 `yaml:"fmax"`
	// TopDB is the silence threshold in dB below the loudest frame.
	TopDB float64 `yaml:"top_db"`
	// Length is the target waveform length in samples; 0 keeps the natural length.
	Length int `yaml:"length"`
	// Resampler is "soxr" (default) or "cubic".
	Resampler string `yaml:"resampler"`
}

// DefaultConfig returns the LJSpeech-style setup used by most mel vocoders.
func DefaultConfig() Config {
	return Config{
		SampleRate: 22050,
		NFFT:       1024,
		HopLength:  256,
		NMels:      80,
		FMin:       0,
		FMax:       8000,
		TopDB:      60,
		Length:     0,
		Resampler:  audio.QualitySoxr.String(),
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.melConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.TopDB <= 0 {
		return fmt.Errorf("%w: top_db must be positive, got %g", ErrInvalidConfig, c.TopDB)
	}

	if c.Length < 0 {
		return fmt.Errorf("%w: length must not be negative, got %d", ErrInvalidConfig, c.Length)
	}

	if _, err := audio.ParseQuality(c.Resampler); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Frames is the spectrogram width produced when Length is set:
// Length / HopLength, which is 0 when Length < HopLength. It is also 0
// when Length is unset, so callers check Length to tell the two apart.
func (c Config) Frames() int {
	if c.Length <= 0 || c.HopLength <= 0 {
		return 0
	}
	return c.Length / c.HopLength
}

func (c Config) melConfig() dsp.MelConfig {
	return dsp.MelConfig{
		SampleRate: c.SampleRate,
		NFFT:       c.NFFT,
		HopLength:  c.HopLength,
		NMels:      c.NMels,
		FMin:       c.FMin,
		FMax:       c.FMax,
	}
}
