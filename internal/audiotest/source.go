// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds signal generators and fixtures shared by tests.
// It does not import the audio package so that package can use it from
// its internal tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame i.
type Waveform func(i, ch int) float32

// Source is a generated stream that satisfies audio.Source.
type Source struct {
	rate     int
	channels int
	frames   int
	pos      int
	wave     Waveform

	// EmptyReads makes the next N reads return (0, nil).
	EmptyReads int
}

// NewSource streams frames frames of wave.
func NewSource(rate, channels, frames int, wave Waveform) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, wave: wave}
}

// NewSilentSource streams zeros.
func NewSilentSource(rate, channels, frames int) *Source {
	return NewSource(rate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSineSource streams the same sine tone on every channel.
func NewSineSource(rate, channels, frames int, freq float64) *Source {
	tone := Sine(rate, frames, freq, 1)
	return NewSource(rate, channels, frames, func(i, _ int) float32 { return tone[i] })
}

// NewConstantSource streams v on every channel.
func NewConstantSource(rate, channels, frames int, v float32) *Source {
	return NewSource(rate, channels, frames, func(int, int) float32 { return v })
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }
func (s *Source) Close() error    { return nil }

// ReadSamples fills dst with whole frames. The final chunk is returned
// together with io.EOF.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.EmptyReads > 0 {
		s.EmptyReads--
		return 0, nil
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range n {
		for ch := range s.channels {
			dst[f*s.channels+ch] = s.wave(s.pos+f, ch)
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}
	return n * s.channels, nil
}

// Sine returns n samples of a tone at freq Hz with peak amp.
func Sine(rate, n int, freq float64, amp float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = amp * float32(math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return out
}

// Silence returns n zero samples.
func Silence(n int) []float32 { return make([]float32, n) }

// Concat joins the given parts into a new slice.
func Concat(parts ...[]float32) []float32 {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]float32, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Speech returns a tone burst surrounded by silence, the usual shape of a
// corpus clip: lead seconds of silence, voiced seconds of tone and trail
// seconds of silence.
func Speech(rate int, lead, voiced, trail float64) []float32 {
	return Concat(
		Silence(int(lead*float64(rate))),
		Sine(rate, int(voiced*float64(rate)), 220, 0.5),
		Silence(int(trail*float64(rate))),
	)
}
