// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/speechprep/internal/audiotest"
)

func TestParseQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Quality
		wantErr bool
	}{
		{"", QualitySoxr, false},
		{"soxr", QualitySoxr, false},
		{"SOXR_HQ", QualitySoxr, false},
		{" cubic ", QualityCubic, false},
		{"kaiser_best", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseQuality(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownQuality) {
				t.Errorf("ParseQuality(%q) error = %v, want ErrUnknownQuality", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseQuality(%q) = (%v, %v), want %v", tt.in, got, err, tt.want)
		}
	}

	if QualityCubic.String() != "cubic" || QualitySoxr.String() != "soxr" {
		t.Errorf("String() = %q, %q", QualitySoxr, QualityCubic)
	}
}

func rms(y []float32) float64 {
	var sum float64
	for _, v := range y {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(y)))
}

func TestResample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inRate  int
		outRate int
		quality Quality
	}{
		{"soxr down", 44100, 22050, QualitySoxr},
		{"soxr up", 16000, 22050, QualitySoxr},
		{"cubic down", 48000, 16000, QualityCubic},
		{"cubic up", 8000, 22050, QualityCubic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := audiotest.Sine(tt.inRate, tt.inRate/2, 220, 0.5)
			out, err := Resample(in, tt.inRate, tt.outRate, tt.quality)
			if err != nil {
				t.Fatalf("Resample() error = %v", err)
			}

			want := int(math.Ceil(float64(len(in)) * float64(tt.outRate) / float64(tt.inRate)))
			if len(out) != want {
				t.Errorf("Resample() length = %d, want %d", len(out), want)
			}

			// a 220 Hz tone survives any of these rates with its energy
			// intact; skip the edges where filters ramp up
			edge := len(out) / 10
			got := rms(out[edge : len(out)-edge])
			if math.Abs(got-0.5/math.Sqrt2) > 0.05 {
				t.Errorf("Resample() rms = %.4f, want ≈%.4f", got, 0.5/math.Sqrt2)
			}
		})
	}
}

func TestResample_SameRateCopies(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, 0.2, 0.3}
	out, err := Resample(in, 16000, 16000, QualitySoxr)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	out[0] = 1
	if in[0] != 0.1 {
		t.Error("Resample() at equal rates aliases its input")
	}
}

func TestResample_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Resample([]float32{0}, 0, 16000, QualitySoxr); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Resample() error = %v, want ErrInvalidRate", err)
	}
	if _, err := Resample([]float32{0, 0}, 8000, 16000, Quality(9)); !errors.Is(err, ErrUnknownQuality) {
		t.Errorf("Resample() error = %v, want ErrUnknownQuality", err)
	}
}
