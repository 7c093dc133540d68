// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/ik5/speechprep/preprocess"
)

type preprocessOpts struct {
	seed       uint64
	length     int
	iterations int
	wavOut     string
	invertOut  string
}

// preprocessReport is the --json output of the preprocess command.
type preprocessReport struct {
	Path       string  `json:"path"`
	SampleRate int     `json:"sample_rate"`
	Samples    int     `json:"samples"`
	NMels      int     `json:"n_mels"`
	Frames     int     `json:"frames"`
	TrimStart  int     `json:"trim_start"`
	TrimEnd    int     `json:"trim_end"`
	Offset     int     `json:"offset"`
	Peak       float32 `json:"peak"`
	SpecMin    float32 `json:"spec_min"`
	SpecMax    float32 `json:"spec_max"`
	SpecMean   float64 `json:"spec_mean"`
}

func newPreprocessCmd(a *app) *cobra.Command {
	o := &preprocessOpts{}

	cmd := &cobra.Command{
		Use:   "preprocess <file>",
		Short: "Run the waveform and mel spectrogram transform on one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPreprocess(cmd, o, args[0])
		},
	}

	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "seed for dither and crop (default: time based)")
	cmd.Flags().IntVar(&o.length, "length", 0, "target length in samples, overrides the config")
	cmd.Flags().IntVar(&o.iterations, "iterations", 0, "Griffin-Lim iterations for --invert-out, overrides the config")
	cmd.Flags().StringVar(&o.wavOut, "wav-out", "", "write the processed waveform as 16-bit WAV")
	cmd.Flags().StringVar(&o.invertOut, "invert-out", "", "write a Griffin-Lim reconstruction of the spectrogram as WAV")

	return cmd
}

func (a *app) runPreprocess(cmd *cobra.Command, o *preprocessOpts, path string) error {
	cfg := a.cfg.Preprocess
	if cmd.Flags().Changed("length") {
		cfg.Length = o.length
	}

	opts := []preprocess.Option{preprocess.WithLogger(a.logger)}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, preprocess.WithSeed(o.seed))
	}

	p, err := preprocess.New(cfg, opts...)
	if err != nil {
		return err
	}

	s, err := p.Process(path)
	if err != nil {
		return err
	}

	if o.wavOut != "" {
		if err := writeWAV(o.wavOut, cfg.SampleRate, s.Waveform()); err != nil {
			return err
		}
		a.logger.Info("waveform written", slog.String("path", o.wavOut))
	}

	if o.invertOut != "" {
		iterations := a.cfg.Invert.Iterations
		if cmd.Flags().Changed("iterations") {
			iterations = o.iterations
		}

		y, err := p.Invert(s.Spectrogram, iterations)
		if err != nil {
			return fmt.Errorf("invert spectrogram: %w", err)
		}
		if err := writeWAV(o.invertOut, cfg.SampleRate, y); err != nil {
			return err
		}
		a.logger.Info("reconstruction written",
			slog.String("path", o.invertOut),
			slog.Int("iterations", iterations))
	}

	r := report(path, cfg, s)
	if a.jsonOut {
		return printJSON(cmd.OutOrStdout(), r)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s\n", r.Path)
	fmt.Fprintf(w, "  waveform:    (%d, %d) @ %d Hz, peak %.4f\n", preprocess.OutputDim, r.Samples, r.SampleRate, r.Peak)
	fmt.Fprintf(w, "  trim:        [%d, %d)\n", r.TrimStart, r.TrimEnd)
	if r.Offset >= 0 {
		fmt.Fprintf(w, "  crop offset: %d\n", r.Offset)
	}
	fmt.Fprintf(w, "  spectrogram: (%d, %d), min %.4f max %.4f mean %.4f\n", r.NMels, r.Frames, r.SpecMin, r.SpecMax, r.SpecMean)

	return nil
}

func report(path string, cfg preprocess.Config, s *preprocess.Sample) preprocessReport {
	r := preprocessReport{
		Path:       path,
		SampleRate: cfg.SampleRate,
		Samples:    len(s.Waveform()),
		NMels:      len(s.Spectrogram),
		Frames:     s.Frames(),
		TrimStart:  s.TrimStart,
		TrimEnd:    s.TrimEnd,
		Offset:     s.Offset,
	}

	for _, v := range s.Waveform() {
		r.Peak = max(r.Peak, float32(math.Abs(float64(v))))
	}

	var (
		sum   float64
		count int
	)
	r.SpecMin = float32(math.Inf(1))
	r.SpecMax = float32(math.Inf(-1))
	for _, row := range s.Spectrogram {
		for _, v := range row {
			r.SpecMin = min(r.SpecMin, v)
			r.SpecMax = max(r.SpecMax, v)
			sum += float64(v)
			count++
		}
	}
	if count > 0 {
		r.SpecMean = sum / float64(count)
	} else {
		r.SpecMin, r.SpecMax = 0, 0
	}

	return r
}
