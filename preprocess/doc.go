// SPDX-License-Identifier: EPL-2.0

// Package preprocess turns speech clips into training pairs for mel
// vocoders: a dithered waveform of optional fixed length and its
// normalized log-mel spectrogram.
//
// A Preprocessor runs, in order: load and resample, silence trim, dither,
// pad or random crop to Config.Length, power mel spectrogram, conversion to
// dB relative to the loudest cell, mapping of [-80, 0] dB onto [0, 1], and
// truncation to Length/HopLength frames. Spectrograms are never padded, and
// a waveform padded to Length always spans at least Length/HopLength
// centered frames, so the truncated width is exact whenever Length is set.
package preprocess
