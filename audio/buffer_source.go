// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource serves interleaved samples that are already in memory.
type BufferSource struct {
	samples    []float32
	sampleRate int
	channels   int
	pos        int
}

// NewBufferSource wraps samples without copying them.
func NewBufferSource(samples []float32, sampleRate, channels int) *BufferSource {
	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return defaultBufferSize }
func (b *BufferSource) Close() error    { return nil }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}
