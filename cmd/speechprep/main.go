// SPDX-License-Identifier: EPL-2.0

// Command speechprep turns speech corpora into waveform and mel
// spectrogram pairs for vocoder training.
//
// Usage:
//
//	speechprep [flags] <command> [args]
//
// Commands:
//
//	preprocess - run the transform on one audio file
//	ljspeech   - list the clips of an LJSpeech root
//	vctk       - list the clips and transcripts of a VCTK root
package main

import (
	"fmt"
	"os"

	"github.com/ik5/speechprep/cmd/speechprep/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
