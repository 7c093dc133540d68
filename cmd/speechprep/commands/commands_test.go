// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/speechprep"
	"github.com/ik5/speechprep/audio"
	"github.com/ik5/speechprep/internal/audiotest"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "speechprep.yaml")
	body := `
preprocess:
  sample_rate: 16000
  n_fft: 512
  hop_length: 128
  n_mels: 40
  fmax: 8000
invert:
  iterations: 2
logging:
  level: error
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestPreprocessJSON(t *testing.T) {
	dir := t.TempDir()
	clip := audiotest.WriteWAV(t, dir, "clip.wav", 16000, 1, audiotest.Sine(16000, 16000, 440, 0.5))
	wavOut := filepath.Join(dir, "out.wav")
	invOut := filepath.Join(dir, "inv.wav")

	out, err := run(t, "--config", writeConfig(t, dir), "--json",
		"preprocess", clip, "--length", "8000", "--seed", "3",
		"--wav-out", wavOut, "--invert-out", invOut)
	require.NoError(t, err)

	var r preprocessReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 8000, r.Samples)
	assert.Equal(t, 40, r.NMels)
	assert.Equal(t, 8000/128, r.Frames)
	assert.GreaterOrEqual(t, r.Offset, 0)
	assert.GreaterOrEqual(t, r.SpecMin, float32(0))
	assert.LessOrEqual(t, r.SpecMax, float32(1))

	written, err := speechprep.Load(wavOut, 16000, audio.QualitySoxr)
	require.NoError(t, err)
	assert.Len(t, written, 8000)

	_, err = os.Stat(invOut)
	assert.NoError(t, err)
}

func TestPreprocessText(t *testing.T) {
	dir := t.TempDir()
	clip := audiotest.WriteWAV(t, dir, "clip.wav", 16000, 1, audiotest.Sine(16000, 8000, 440, 0.5))

	out, err := run(t, "--config", writeConfig(t, dir), "preprocess", clip)
	require.NoError(t, err)

	assert.Contains(t, out, "waveform:    (1, 8000) @ 16000 Hz")
	assert.Contains(t, out, "spectrogram: (40, 63)")
	assert.NotContains(t, out, "crop offset")
}

func TestPreprocessErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "preprocess", filepath.Join(dir, "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "preprocess")
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("preprocess:\n  hop_length: 0\n"), 0o644))
	_, err = run(t, "--config", bad, "preprocess", "x.wav")
	assert.Error(t, err)
}

func TestLJSpeechCmd(t *testing.T) {
	root := t.TempDir()
	audiotest.Touch(t, root, "wavs/b.wav")
	audiotest.Touch(t, root, "wavs/a.wav")
	require.NoError(t, os.WriteFile(filepath.Join(root, "metadata.csv"),
		[]byte("a|Hello 1|Hello one\nb|Bye|Bye\n"), 0o644))

	out, err := run(t, "ljspeech", root)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		filepath.Join(root, "wavs", "a.wav"),
		filepath.Join(root, "wavs", "b.wav"),
		filepath.Join(root, "metadata.csv"),
	}, lines)

	out, err = run(t, "--json", "ljspeech", "--text", root)
	require.NoError(t, err)

	var listing struct {
		Wavs       []string `json:"wavs"`
		Utterances []struct {
			ID             string `json:"id"`
			NormalizedText string `json:"normalized_text"`
		} `json:"utterances"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	assert.Len(t, listing.Wavs, 2)
	require.Len(t, listing.Utterances, 2)
	assert.Equal(t, "Hello one", listing.Utterances[0].NormalizedText)
}

func TestVCTKCmd(t *testing.T) {
	root := t.TempDir()
	audiotest.Touch(t, root, "wav48/p225/p225_001.wav")
	audiotest.Touch(t, root, "txt/p225/p225_001.txt")

	out, err := run(t, "--json", "vctk", root)
	require.NoError(t, err)

	var listing struct {
		Wavs        []string `json:"wavs"`
		Transcripts []string `json:"transcripts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	assert.Equal(t, []string{filepath.Join(root, "wav48", "p225", "p225_001.wav")}, listing.Wavs)
	assert.Equal(t, []string{filepath.Join(root, "txt", "p225", "p225_001.txt")}, listing.Transcripts)
}
