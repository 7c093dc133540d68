// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Utterance is one row of an LJSpeech metadata.csv file.
type Utterance struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	NormalizedText string `json:"normalized_text"`
}

// WavPath returns where the clip of u lives under an LJSpeech root.
func (u Utterance) WavPath(root string) string {
	return filepath.Join(root, ljSpeechWavDir, u.ID+".wav")
}

// ReadLJSpeechMetadata parses the pipe separated id|text|normalized rows
// of an LJSpeech metadata file. A row without the normalized column uses
// the raw text for both. Blank lines are skipped.
//
// Fields are split on the first two pipes only; quotes are not special.
func ReadLJSpeechMetadata(path string) ([]Utterance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []Utterance
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		row := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(row) == "" {
			continue
		}

		fields := strings.SplitN(row, "|", 3)
		if len(fields) < 2 || fields[0] == "" {
			return nil, fmt.Errorf("%w: %s:%d", ErrMalformedMetadata, path, line)
		}

		u := Utterance{ID: fields[0], Text: fields[1], NormalizedText: fields[1]}
		if len(fields) == 3 {
			u.NormalizedText = fields[2]
		}
		out = append(out, u)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return out, nil
}
