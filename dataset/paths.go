// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	ljSpeechWavDir   = "wavs"
	ljSpeechMetadata = "metadata.csv"

	vctkWavDir = "wav48"
	vctkTxtDir = "txt"
)

// LJSpeech lists <root>/wavs/*.wav and returns the path of
// <root>/metadata.csv. The metadata file is not checked for existence.
func LJSpeech(root string) (wavs []string, metadata string, err error) {
	wavs, err = listFiles(filepath.Join(root, ljSpeechWavDir), ".wav")
	if err != nil {
		return nil, "", err
	}
	slices.Sort(wavs)

	return wavs, filepath.Join(root, ljSpeechMetadata), nil
}

// VCTK lists <root>/wav48/*/*.wav and <root>/txt/*/*.txt, one
// subdirectory per speaker.
func VCTK(root string) (wavs, transcripts []string, err error) {
	wavs, err = listSpeakerFiles(filepath.Join(root, vctkWavDir), ".wav")
	if err != nil {
		return nil, nil, err
	}

	transcripts, err = listSpeakerFiles(filepath.Join(root, vctkTxtDir), ".txt")
	if err != nil {
		return nil, nil, err
	}

	return wavs, transcripts, nil
}

func listSpeakerFiles(dir, ext string) ([]string, error) {
	speakers, err := readDir(dir)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, sp := range speakers {
		if !isDir(dir, sp) {
			continue
		}
		files, err := listFiles(filepath.Join(dir, sp.Name()), ext)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	slices.Sort(out)

	return out, nil
}

// listFiles returns the entries of dir whose name ends in ext, matching
// the case-sensitive behaviour of a "*.ext" glob. Dotfiles such as macOS
// "._" resource forks match like any other name.
func listFiles(dir, ext string) ([]string, error) {
	entries, err := readDir(dir)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ext) {
			continue
		}
		if isDir(dir, e) {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}

	return out, nil
}

// readDir treats a missing or non-directory path as empty.
func readDir(dir string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	switch {
	case err == nil:
		return entries, nil
	case errors.Is(err, fs.ErrNotExist), isNotDir(dir):
		return nil, nil
	default:
		return nil, err
	}
}

func isNotDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// isDir follows symlinks, as glob does.
func isDir(dir string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.IsDir()
}
