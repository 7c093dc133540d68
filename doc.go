// SPDX-License-Identifier: EPL-2.0

// Package speechprep prepares audio clips for speech-synthesis training.
//
// The root package loads audio: it picks a decoder by file extension, mixes
// the stream down to mono and resamples it to the requested rate. The
// feature pipeline built on top of it lives in the subpackages.
//
// # Supported Formats
//
//   - WAV (integer PCM, 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//   - FLAC via formats/flac
//
// # Quick Start
//
//	samples, err := speechprep.Load("LJ001-0001.wav", 22050, audio.QualitySoxr)
//	if err != nil {
//	    // errors.Is(err, fs.ErrNotExist) or errors.Is(err, speechprep.ErrDecode)
//	}
//
// # Subpackages
//
//   - audio: sample streams, mono mixing, resampling
//   - dsp: silence trimming, STFT, mel filterbank, dB conversion, Griffin-Lim
//   - preprocess: the configured (waveform, mel spectrogram) transform
//   - dataset: LJSpeech and VCTK file enumeration
//   - cmd/speechprep: command line front end
package speechprep
