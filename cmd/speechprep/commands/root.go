// SPDX-License-Identifier: EPL-2.0

// Package commands implements the speechprep command tree.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/speechprep/internal/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfgFile string
	verbose bool
	jsonOut bool

	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "speechprep",
		Short: "Speech corpus preprocessing for mel vocoders",
		Long: `speechprep loads speech clips, trims silence, dithers and aligns them to a
fixed length, and computes normalized log-mel spectrograms.

Examples:
  # Inspect one clip with the default LJSpeech setup
  speechprep preprocess LJ001-0001.wav

  # Fixed 1s crops at 16 kHz, reproducible, with a listening check
  speechprep preprocess clip.flac --length 16000 --seed 7 --invert-out check.wav

  # List corpus files
  speechprep ljspeech /data/LJSpeech-1.1
  speechprep vctk /data/VCTK-Corpus --json | jq '.wavs | length'
`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file (default: built-in LJSpeech settings)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "output as JSON (for piping)")

	root.AddCommand(newPreprocessCmd(a))
	root.AddCommand(newLJSpeechCmd(a))
	root.AddCommand(newVCTKCmd(a))

	return root
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		var err error
		if cfg, err = config.Load(a.cfgFile); err != nil {
			return err
		}
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	logger, closer, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}

	a.cfg, a.logger, a.closer = cfg, logger, closer
	a.logger.Debug("config loaded", slog.String("file", a.cfgFile))

	return nil
}
