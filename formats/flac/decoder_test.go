// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"
)

type mockFrameReader struct {
	frames [][][]int32 // frame, channel, samples
	next   int
	closed bool
}

func (m *mockFrameReader) ParseNext() (*frame.Frame, error) {
	if m.next >= len(m.frames) {
		return nil, io.EOF
	}
	f := &frame.Frame{}
	for _, ch := range m.frames[m.next] {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: ch})
	}
	m.next++
	return f, nil
}

func (m *mockFrameReader) Close() error {
	m.closed = true
	return nil
}

func TestSource_InterleavesFrames(t *testing.T) {
	t.Parallel()

	dec := &mockFrameReader{frames: [][][]int32{
		{{0, 16384}, {-16384, -32768}},
		{{8192}, {0}},
	}}
	src := &source{dec: dec, sampleRate: 44100, channels: 2, bitDepth: 16}

	var out []float32
	buf := make([]float32, 3)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	want := []float32{0, -0.5, 0.5, -1, 0.25, 0}
	if len(out) != len(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, out[i], want[i])
		}
	}

	if err := src.Close(); err != nil || !dec.closed {
		t.Errorf("Close() = %v, closed = %v", err, dec.closed)
	}
}

func TestSource_ChannelMismatch(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:      &mockFrameReader{frames: [][][]int32{{{1, 2}}}},
		channels: 2,
		bitDepth: 16,
	}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, ErrUnsupportedLayout) {
		t.Errorf("ReadSamples() error = %v, want ErrUnsupportedLayout", err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not a flac stream"))); err == nil {
		t.Error("Decode() error = nil, want error for non-FLAC input")
	}
}
