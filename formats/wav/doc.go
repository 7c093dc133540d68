// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE files through github.com/go-audio/wav.
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits with any channel count,
// including WAVE_FORMAT_EXTENSIBLE files whose sub-format is PCM. IEEE float
// WAV files are not supported.
// Encode writes mono 16-bit PCM, which is what the speechprep CLI uses to
// dump processed clips for listening.
package wav
