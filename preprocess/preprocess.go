// SPDX-License-Identifier: EPL-2.0

package preprocess

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ik5/speechprep"
	"github.com/ik5/speechprep/audio"
	"github.com/ik5/speechprep/dsp"
)

const (
	// ditherScale maps [0, 2] onto [0, 2^16-1].
	ditherScale = float64(1<<16-1) / 2

	// dbRange maps [-dbRange, 0] dB onto [0, 1].
	dbRange = dsp.DefaultTopDB
)

// Sample is the output of one Process call.
type Sample struct {
	// Raw is the waveform with a leading channel axis: [OutputDim][samples].
	Raw [][]float32
	// Spectrogram is the normalized log-mel spectrogram: [NMels][frames].
	Spectrogram [][]float32

	// TrimStart and TrimEnd delimit the kept region of the loaded clip.
	TrimStart, TrimEnd int
	// Offset is the crop start within the trimmed clip, -1 when not cropped.
	Offset int
}

// Waveform returns the single channel of Raw.
func (s *Sample) Waveform() []float32 { return s.Raw[0] }

// Frames returns the spectrogram width.
func (s *Sample) Frames() int {
	if len(s.Spectrogram) == 0 {
		return 0
	}
	return len(s.Spectrogram[0])
}

// Option customizes a Preprocessor.
type Option func(*Preprocessor)

// WithRand sets the random source used for dithering and cropping.
func WithRand(r *rand.Rand) Option {
	return func(p *Preprocessor) { p.rng = r }
}

// WithSeed is WithRand over a PCG generator seeded with seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Preprocessor) { p.logger = l }
}

// WithLoader replaces the file loader, e.g. to register extra decoders.
func WithLoader(l *speechprep.Loader) Option {
	return func(p *Preprocessor) { p.loader = l }
}

// Preprocessor turns audio files into (waveform, mel spectrogram) pairs.
//
// The configuration is fixed at construction. The random source is shared
// by all calls and guarded by a mutex, so a Preprocessor may be used from
// several goroutines; results are reproducible only when calls are made in
// a fixed order on a seeded source.
type Preprocessor struct {
	cfg    Config
	loader *speechprep.Loader
	mel    *dsp.MelExtractor
	logger *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// New validates cfg and builds a Preprocessor.
func New(cfg Config, opts ...Option) (*Preprocessor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mel, err := dsp.NewMelExtractor(cfg.melConfig())
	if err != nil {
		return nil, err
	}

	p := &Preprocessor{
		cfg: cfg,
		mel: mel,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.loader == nil {
		q, _ := audio.ParseQuality(cfg.Resampler)
		p.loader = speechprep.NewLoader(q)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	if p.rng == nil {
		seed := uint64(time.Now().UnixNano())
		p.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	return p, nil
}

// Config returns the configuration the Preprocessor was built with.
func (p *Preprocessor) Config() Config { return p.cfg }

// MelExtractor exposes the analysis used for spectrograms.
func (p *Preprocessor) MelExtractor() *dsp.MelExtractor { return p.mel }

// Process loads the audio file at path and runs the full transform.
// Open and decode failures are returned unchanged from the loader.
func (p *Preprocessor) Process(path string) (*Sample, error) {
	samples, err := p.loader.Load(path, p.cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	s, err := p.ProcessSamples(samples)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("processed clip",
		slog.String("path", path),
		slog.Int("loaded", len(samples)),
		slog.Int("trim_start", s.TrimStart),
		slog.Int("trim_end", s.TrimEnd),
		slog.Int("offset", s.Offset),
		slog.Int("samples", len(s.Waveform())),
		slog.Int("frames", s.Frames()),
	)

	return s, nil
}

// ProcessSamples runs the transform on mono samples already at SampleRate:
// silence trim, dither, length alignment, mel spectrogram and dB
// normalization. samples is not modified.
func (p *Preprocessor) ProcessSamples(samples []float32) (*Sample, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyAudio
	}

	// TopDB > 0 always keeps at least the loudest frame
	trimmed, start, end := dsp.Trim(samples, p.cfg.TopDB, dsp.TrimFrameLength, dsp.TrimHopLength)

	raw := make([]float32, len(trimmed))
	offset := -1

	p.mu.Lock()
	Dither(raw, trimmed, p.rng)
	if p.cfg.Length > 0 {
		raw, offset = fitLength(raw, p.cfg.Length, p.rng)
	}
	p.mu.Unlock()

	spec := Normalize(dsp.PowerToDB(p.mel.Power(raw), dbRange))
	if p.cfg.Length > 0 {
		// truncate only; short spectrograms are not padded
		frames := p.cfg.Frames()
		for m, row := range spec {
			spec[m] = row[:min(frames, len(row))]
		}
	}

	return &Sample{
		Raw:         [][]float32{raw},
		Spectrogram: spec,
		TrimStart:   start,
		TrimEnd:     end,
		Offset:      offset,
	}, nil
}

// Dither writes src to dst after quantization dithering: each sample is
// shifted to [0, 2], scaled to [0, 65535], offset by uniform noise in
// [0, 1) and mapped back. dst and src must have the same length and may
// be the same slice.
func Dither(dst, src []float32, rng *rand.Rand) {
	for i, x := range src {
		v := (float64(x)+1)*ditherScale + rng.Float64()
		dst[i] = float32(v/ditherScale - 1)
	}
}

// fitLength right-pads raw with zeros up to length, or crops a window of
// length samples starting at a uniform offset in [0, len(raw)-length-1].
// The last possible start, len(raw)-length, is never drawn.
func fitLength(raw []float32, length int, rng *rand.Rand) ([]float32, int) {
	if len(raw) <= length {
		out := make([]float32, length)
		copy(out, raw)
		return out, -1
	}

	start := rng.IntN(len(raw) - length)
	out := make([]float32, length)
	copy(out, raw[start:start+length])

	return out, start
}

// Normalize maps dB values from [-80, 0] onto [0, 1] as float32.
func Normalize(db [][]float64) [][]float32 {
	out := make([][]float32, len(db))
	for i, row := range db {
		r := make([]float32, len(row))
		for j, v := range row {
			r[j] = float32((v + dbRange) / dbRange)
		}
		out[i] = r
	}
	return out
}

// Denormalize is the inverse of Normalize, returning dB values.
func Denormalize(spec [][]float32) [][]float64 {
	out := make([][]float64, len(spec))
	for i, row := range spec {
		r := make([]float64, len(row))
		for j, v := range row {
			r[j] = float64(v)*dbRange - dbRange
		}
		out[i] = r
	}
	return out
}

// Invert reconstructs an approximate waveform from a normalized spectrogram
// produced by this Preprocessor.
func (p *Preprocessor) Invert(spec [][]float32, iterations int) ([]float32, error) {
	return p.mel.Invert(dsp.DBToPower(Denormalize(spec)), iterations)
}
