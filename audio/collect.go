// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const (
	defaultBufferSize = 4096

	// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
	maxEmptyReads = 100
)

// Collect drains src and returns every interleaved sample it produced.
//
// bufferSize controls how many samples are requested per ReadSamples call;
// values <= 0 fall back to src.BufSize() and then to 4096. The size is
// rounded down to a multiple of the channel count so multi-channel sources
// never see a partial frame request.
//
// io.EOF is the normal end of stream and is not returned. The source is not
// closed.
func Collect(src Source, bufferSize int) ([]float32, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	bufferSize -= bufferSize % channels
	if bufferSize == 0 {
		bufferSize = channels
	}

	out := make([]float32, 0, bufferSize*4)
	buf := make([]float32, bufferSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("collect samples: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return nil, io.ErrNoProgress
		}
	}

	return out, nil
}
