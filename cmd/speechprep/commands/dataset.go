// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/speechprep/dataset"
)

func newLJSpeechCmd(a *app) *cobra.Command {
	var withText bool

	cmd := &cobra.Command{
		Use:   "ljspeech <root>",
		Short: "List the clips and metadata file of an LJSpeech corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wavs, metadata, err := dataset.LJSpeech(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("ljspeech listed", slog.String("root", args[0]), slog.Int("wavs", len(wavs)))

			var utts []dataset.Utterance
			if withText {
				if utts, err = dataset.ReadLJSpeechMetadata(metadata); err != nil {
					return err
				}
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), struct {
					Wavs       []string            `json:"wavs"`
					Metadata   string              `json:"metadata"`
					Utterances []dataset.Utterance `json:"utterances,omitempty"`
				}{wavs, metadata, utts})
			}

			w := cmd.OutOrStdout()
			for _, p := range wavs {
				fmt.Fprintln(w, p)
			}
			fmt.Fprintln(w, metadata)
			for _, u := range utts {
				fmt.Fprintf(w, "%s\t%s\n", u.ID, u.NormalizedText)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withText, "text", false, "also parse metadata.csv and print each transcript")

	return cmd
}

func newVCTKCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vctk <root>",
		Short: "List the clips and transcripts of a VCTK corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wavs, txts, err := dataset.VCTK(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("vctk listed",
				slog.String("root", args[0]),
				slog.Int("wavs", len(wavs)),
				slog.Int("transcripts", len(txts)))

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), struct {
					Wavs        []string `json:"wavs"`
					Transcripts []string `json:"transcripts"`
				}{wavs, txts})
			}

			w := cmd.OutOrStdout()
			for _, p := range wavs {
				fmt.Fprintln(w, p)
			}
			for _, p := range txts {
				fmt.Fprintln(w, p)
			}
			return nil
		},
	}
}
