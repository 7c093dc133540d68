// SPDX-License-Identifier: EPL-2.0

package speechprep

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/speechprep/audio"
	"github.com/ik5/speechprep/formats/aiff"
	"github.com/ik5/speechprep/formats/flac"
	"github.com/ik5/speechprep/formats/mp3"
	"github.com/ik5/speechprep/formats/vorbis"
	"github.com/ik5/speechprep/formats/wav"
)

// DefaultRegistry returns a registry with every decoder shipped in formats/,
// keyed by the file extensions they are usually found under.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// Loader decodes audio files to mono float32 samples at a fixed rate.
type Loader struct {
	// Registry resolves the decoder from the file extension.
	Registry *audio.Registry
	// Quality selects the resampler.
	Quality audio.Quality
	// BufferSize is the read size passed to audio.Collect (0 = decoder default).
	BufferSize int
}

// NewLoader returns a Loader over DefaultRegistry.
func NewLoader(q audio.Quality) *Loader {
	return &Loader{
		Registry: DefaultRegistry(),
		Quality:  q,
	}
}

// Load decodes path, mixes it down to mono and resamples it to sampleRate.
//
// Errors from opening the file are returned as is (errors.Is(err,
// fs.ErrNotExist) holds for a missing file). Decoder and resampler failures
// are wrapped with ErrDecode.
func (l *Loader) Load(path string, sampleRate int) ([]float32, error) {
	if sampleRate <= 0 {
		return nil, audio.ErrInvalidRate
	}

	dec, ok := l.Registry.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	defer src.Close()

	mono, err := audio.Collect(audio.NewMonoMixer(src), l.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	out, err := audio.Resample(mono, src.SampleRate(), sampleRate, l.Quality)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return out, nil
}

// Load is a convenience wrapper around NewLoader(q).Load.
func Load(path string, sampleRate int, q audio.Quality) ([]float32, error) {
	return NewLoader(q).Load(path, sampleRate)
}
