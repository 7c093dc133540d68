// SPDX-License-Identifier: EPL-2.0

package dataset_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/speechprep/dataset"
)

func ExampleLJSpeech() {
	root, err := os.MkdirTemp("", "ljspeech")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(root)

	os.MkdirAll(filepath.Join(root, "wavs"), 0o755)
	for _, name := range []string{"wavs/LJ001-0002.wav", "wavs/LJ001-0001.wav", "metadata.csv"} {
		os.WriteFile(filepath.Join(root, name), nil, 0o644)
	}

	wavs, metadata, err := dataset.LJSpeech(root)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, w := range wavs {
		rel, _ := filepath.Rel(root, w)
		fmt.Println(filepath.ToSlash(rel))
	}
	fmt.Println(filepath.Base(metadata))
	// Output:
	// wavs/LJ001-0001.wav
	// wavs/LJ001-0002.wav
	// metadata.csv
}
