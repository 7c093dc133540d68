// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"reflect"
	"testing"
)

type stubDecoder struct{ name string }

func (stubDecoder) Decode(io.Reader) (Source, error) { return nil, nil }

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubDecoder{"wav"})
	reg.Register(".FLAC", stubDecoder{"flac"})

	tests := []struct {
		name   string
		lookup func() (Decoder, bool)
		want   string
		wantOK bool
	}{
		{"exact key", func() (Decoder, bool) { return reg.Get("wav") }, "wav", true},
		{"upper case key", func() (Decoder, bool) { return reg.Get("WAV") }, "wav", true},
		{"dotted key", func() (Decoder, bool) { return reg.Get(".flac") }, "flac", true},
		{"path", func() (Decoder, bool) { return reg.ForPath("/data/wavs/LJ001-0001.wav") }, "wav", true},
		{"path upper ext", func() (Decoder, bool) { return reg.ForPath("p225_001.FLAC") }, "flac", true},
		{"unknown", func() (Decoder, bool) { return reg.Get("mp3") }, "", false},
		{"no ext", func() (Decoder, bool) { return reg.ForPath("README") }, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, ok := tt.lookup()
			if ok != tt.wantOK {
				t.Fatalf("lookup ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := d.(stubDecoder).name; got != tt.want {
				t.Errorf("lookup decoder = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, f := range []string{"ogg", "wav", ".aiff"} {
		reg.Register(f, stubDecoder{f})
	}

	want := []string{"aiff", "ogg", "wav"}
	if got := reg.Formats(); !reflect.DeepEqual(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}
