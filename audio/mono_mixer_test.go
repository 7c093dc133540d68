// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"

	"github.com/ik5/speechprep/internal/audiotest"
)

func TestMonoMixer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		wave     audiotest.Waveform
		want     float32
	}{
		{"mono passthrough", 1, func(int, int) float32 { return 0.3 }, 0.3},
		{"stereo average", 2, func(_, ch int) float32 { return float32(ch) }, 0.5},
		{"stereo cancel", 2, func(_, ch int) float32 { return float32(1 - 2*ch) }, 0},
		{"four channels", 4, func(_, ch int) float32 { return float32(ch) / 4 }, 0.375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mixer := NewMonoMixer(audiotest.NewSource(16000, tt.channels, 5000, tt.wave))
			if mixer.Channels() != 1 {
				t.Fatalf("Channels() = %d, want 1", mixer.Channels())
			}
			if mixer.SampleRate() != 16000 {
				t.Fatalf("SampleRate() = %d, want 16000", mixer.SampleRate())
			}

			got, err := Collect(mixer, 0)
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}
			if len(got) != 5000 {
				t.Fatalf("got %d frames, want 5000", len(got))
			}
			for i, v := range got {
				if math.Abs(float64(v-tt.want)) > 1e-6 {
					t.Fatalf("frame %d = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_LargeRead(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewConstantSource(8000, 2, 20000, 0.5))
	dst := make([]float32, 20000)

	n, err := mixer.ReadSamples(dst)
	if err != nil && n != 20000 {
		t.Fatalf("ReadSamples() = (%d, %v)", n, err)
	}
	if n != 20000 {
		t.Errorf("ReadSamples() = %d frames, want 20000", n)
	}
}
