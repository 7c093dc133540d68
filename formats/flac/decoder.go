// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams via github.com/mewkiz/flac.
package flac

import (
	"fmt"
	"io"

	mflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/speechprep/audio"
	"github.com/ik5/speechprep/utils"
)

// frameReader is an interface for mflac.Stream to allow testing
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	dec        frameReader
	sampleRate int
	channels   int
	bitDepth   int

	// interleaved samples of the current frame not yet handed out
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }

func (s *source) Close() error {
	if err := s.dec.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	written := 0

	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.nextFrame(); err != nil {
				return written, err
			}
			continue
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if written == 0 || (s.eof && len(s.pending) == 0) {
		return written, io.EOF
	}

	return written, nil
}

func (s *source) nextFrame() error {
	f, err := s.dec.ParseNext()
	if err == io.EOF {
		s.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d channels, stream %d",
			ErrUnsupportedLayout, len(f.Subframes), s.channels)
	}

	blockSize := len(f.Subframes[0].Samples)
	if cap(s.pending) < blockSize*s.channels {
		s.pending = make([]float32, blockSize*s.channels)
	}
	s.pending = s.pending[:blockSize*s.channels]

	for c, sub := range f.Subframes {
		for i, v := range sub.Samples {
			s.pending[i*s.channels+c] = utils.PCMToFloat32(int(v), s.bitDepth)
		}
	}

	return nil
}

// Decoder decodes FLAC streams of any bit depth supported by mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := mflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		stream.Close()
		return nil, ErrUnsupportedLayout
	}

	return &source{
		dec:        stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
