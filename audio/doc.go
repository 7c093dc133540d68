// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-stream primitives used to load training
// audio.
//
// The building blocks are:
//   - Source, a stream of interleaved float32 samples in [-1.0, 1.0]
//   - Decoder and Registry, which map a file extension to a format decoder
//   - MonoMixer, which averages channels down to one
//   - Resampler, a streaming cubic-interpolation rate converter
//   - Resample, a whole-buffer rate converter with a selectable Quality
//   - Collect, which drains a Source into a slice
//
// # Loading a clip
//
// A typical load chains a decoder, the mixer and a rate conversion:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono, _ := audio.Collect(audio.NewMonoMixer(src), 0)
//	samples, _ := audio.Resample(mono, src.SampleRate(), 22050, audio.QualitySoxr)
//
// QualitySoxr uses a pure Go port of libsoxr and matches the default
// resampler used when speech corpora are prepared in other ecosystems.
// QualityCubic streams through Resampler and is cheaper but aliases more.
//
// # End of stream
//
// ReadSamples returns io.EOF when no more data is available, possibly
// together with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
