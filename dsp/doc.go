// SPDX-License-Identifier: EPL-2.0

// Package dsp holds the signal-processing steps of the feature pipeline.
//
// The conventions follow what speech-synthesis corpora are usually prepared
// with, so features computed here line up with published recipes:
//
//   - Trim drops leading and trailing frames whose RMS energy is more than
//     topDB below the loudest frame (frame 2048, hop 512, centered frames).
//   - STFT frames are centered: the signal is reflect-padded by nFFT/2 on
//     both sides and windowed with a periodic Hann window, giving
//     1 + len(y)/hop frames.
//   - The mel filterbank uses the Slaney mel scale (linear below 1 kHz,
//     logarithmic above) with area-normalized triangular filters.
//   - PowerToDB is relative to the largest value of the input, with a
//     1e-10 amplitude floor and an optional dynamic-range floor.
//
// GriffinLim and MelExtractor.Invert go the other way and rebuild an
// approximate waveform from a mel spectrogram, which is handy for listening
// to what a model will be trained on.
package dsp
