// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"strings"

	resampling "github.com/tphakala/go-audio-resampling"
)

// Quality selects the resampling algorithm used by Resample.
type Quality int

const (
	// QualitySoxr is the polyphase FIR resampler ported from libsoxr (HQ preset).
	QualitySoxr Quality = iota
	// QualityCubic is the streaming Catmull-Rom Resampler of this package.
	QualityCubic
)

func (q Quality) String() string {
	switch q {
	case QualitySoxr:
		return "soxr"
	case QualityCubic:
		return "cubic"
	default:
		return fmt.Sprintf("quality(%d)", int(q))
	}
}

// ParseQuality maps "soxr" (or "") and "cubic" to a Quality.
func ParseQuality(s string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "soxr", "soxr_hq":
		return QualitySoxr, nil
	case "cubic":
		return QualityCubic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownQuality, s)
	}
}

// Resample converts mono samples from inRate to outRate.
//
// The output holds exactly ceil(len(samples) * outRate / inRate) samples.
// When the rates match, a copy of samples is returned.
func Resample(samples []float32, inRate, outRate int, q Quality) ([]float32, error) {
	if inRate <= 0 || outRate <= 0 {
		return nil, ErrInvalidRate
	}

	if inRate == outRate || len(samples) == 0 {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out, nil
	}

	var (
		out []float32
		err error
	)

	switch q {
	case QualitySoxr:
		out, err = soxrResample(samples, inRate, outRate)
	case QualityCubic:
		out, err = Collect(NewResampler(NewBufferSource(samples, inRate, 1), outRate), 0)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuality, q)
	}
	if err != nil {
		return nil, err
	}

	return fixLength(out, expectedLength(len(samples), inRate, outRate)), nil
}

func soxrResample(samples []float32, inRate, outRate int) ([]float32, error) {
	r, err := resampling.New(&resampling.Config{
		InputRate:  float64(inRate),
		OutputRate: float64(outRate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	in := make([]float64, len(samples))
	for i, s := range samples {
		in[i] = float64(s)
	}

	body, err := r.Process(in)
	if err != nil {
		return nil, fmt.Errorf("resample error: %w", err)
	}

	tail, err := r.Flush()
	if err != nil {
		return nil, fmt.Errorf("resample flush: %w", err)
	}

	out := make([]float32, 0, len(body)+len(tail))
	for _, s := range body {
		out = append(out, float32(s))
	}
	for _, s := range tail {
		out = append(out, float32(s))
	}

	return out, nil
}

func expectedLength(n, inRate, outRate int) int {
	return int(math.Ceil(float64(n) * float64(outRate) / float64(inRate)))
}

// fixLength truncates or zero-pads samples to exactly n values.
func fixLength(samples []float32, n int) []float32 {
	if len(samples) >= n {
		return samples[:n]
	}

	out := make([]float32, n)
	copy(out, samples)

	return out
}
