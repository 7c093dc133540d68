// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/speechprep/internal/audiotest"
)

func TestLJSpeech(t *testing.T) {
	root := t.TempDir()
	audiotest.Touch(t, root, "wavs/b.wav")
	audiotest.Touch(t, root, "wavs/a.wav")
	audiotest.Touch(t, root, "metadata.csv")

	wavs, metadata, err := LJSpeech(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "wavs", "a.wav"),
		filepath.Join(root, "wavs", "b.wav"),
	}, wavs)
	assert.Equal(t, filepath.Join(root, "metadata.csv"), metadata)
}

func TestLJSpeech_Filtering(t *testing.T) {
	root := t.TempDir()
	audiotest.Touch(t, root, "wavs/LJ001-0002.wav")
	audiotest.Touch(t, root, "wavs/LJ001-0001.wav")
	audiotest.Touch(t, root, "wavs/notes.txt")
	audiotest.Touch(t, root, "wavs/upper.WAV")
	audiotest.Touch(t, root, "wavs/._LJ001-0001.wav")
	audiotest.Touch(t, root, "wavs/nested/LJ999-0001.wav")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "wavs", "dir.wav"), 0o755))

	wavs, _, err := LJSpeech(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "wavs", "._LJ001-0001.wav"),
		filepath.Join(root, "wavs", "LJ001-0001.wav"),
		filepath.Join(root, "wavs", "LJ001-0002.wav"),
	}, wavs)
}

func TestLJSpeech_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nowhere")

	wavs, metadata, err := LJSpeech(root)
	require.NoError(t, err)
	assert.Empty(t, wavs)
	assert.Equal(t, filepath.Join(root, "metadata.csv"), metadata)
}

func TestLJSpeech_GlobCharactersInRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "LJ[1]*")
	audiotest.Touch(t, root, "wavs/a.wav")

	wavs, _, err := LJSpeech(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "wavs", "a.wav")}, wavs)
}

func TestVCTK(t *testing.T) {
	root := t.TempDir()
	audiotest.Touch(t, root, "wav48/p226/p226_001.wav")
	audiotest.Touch(t, root, "wav48/p225/p225_002.wav")
	audiotest.Touch(t, root, "wav48/p225/p225_001.wav")
	audiotest.Touch(t, root, "wav48/stray.wav")
	audiotest.Touch(t, root, "txt/p225/p225_001.txt")
	audiotest.Touch(t, root, "txt/p226/p226_001.txt")
	audiotest.Touch(t, root, "txt/p226/p226_001.wav")

	wavs, txts, err := VCTK(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "wav48", "p225", "p225_001.wav"),
		filepath.Join(root, "wav48", "p225", "p225_002.wav"),
		filepath.Join(root, "wav48", "p226", "p226_001.wav"),
	}, wavs)
	assert.Equal(t, []string{
		filepath.Join(root, "txt", "p225", "p225_001.txt"),
		filepath.Join(root, "txt", "p226", "p226_001.txt"),
	}, txts)
}

func TestVCTK_Missing(t *testing.T) {
	root := t.TempDir()
	audiotest.Touch(t, root, "wav48/p225/p225_001.wav")

	wavs, txts, err := VCTK(root)
	require.NoError(t, err)
	assert.Len(t, wavs, 1)
	assert.Empty(t, txts)
}

func TestReadLJSpeechMetadata(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "metadata.csv")
	body := "LJ001-0001|Printing, in the only sense|Printing, in the only sense\n" +
		"\n" +
		"LJ001-0002|in being comparatively modern.|in being comparatively modern.\r\n" +
		"LJ001-0003|For \"1\" book|For \"one\" book\n" +
		"LJ001-0004|no normalized column\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	utts, err := ReadLJSpeechMetadata(path)
	require.NoError(t, err)
	require.Len(t, utts, 4)

	assert.Equal(t, Utterance{
		ID:             "LJ001-0002",
		Text:           "in being comparatively modern.",
		NormalizedText: "in being comparatively modern.",
	}, utts[1])
	assert.Equal(t, `For "one" book`, utts[2].NormalizedText)
	assert.Equal(t, "no normalized column", utts[3].NormalizedText)
	assert.Equal(t, filepath.Join(root, "wavs", "LJ001-0001.wav"), utts[0].WavPath(root))
}

func TestReadLJSpeechMetadata_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadLJSpeechMetadata(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("LJ001-0001|ok|ok\njust text\n"), 0o644))
	_, err = ReadLJSpeechMetadata(path)
	assert.ErrorIs(t, err, ErrMalformedMetadata)
	assert.Contains(t, err.Error(), "bad.csv:2")
}
