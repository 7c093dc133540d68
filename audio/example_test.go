// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/speechprep/audio"
	"github.com/ik5/speechprep/internal/audiotest"
)

// Example_collect drains a stereo source through a MonoMixer into one slice.
func Example_collect() {
	// 1 second of a 440 Hz tone, two channels
	source := audiotest.NewSineSource(16000, 2, 16000, 440.0)

	mono := audio.NewMonoMixer(source)

	samples, err := audio.Collect(mono, 0)
	if err != nil {
		fmt.Printf("Collect error: %v\n", err)
		return
	}

	fmt.Printf("Channels: %d\n", mono.Channels())
	fmt.Printf("Samples: %d\n", len(samples))
	// Output:
	// Channels: 1
	// Samples: 16000
}

// Example_bufferSource wraps decoded samples so they can feed the Source chain.
func Example_bufferSource() {
	src := audio.NewBufferSource([]float32{0.1, -0.1, 0.2, -0.2}, 8000, 2)

	samples, err := audio.Collect(src, 3)
	if err != nil {
		fmt.Printf("Collect error: %v\n", err)
		return
	}

	fmt.Println(samples)
	// Output:
	// [0.1 -0.1 0.2 -0.2]
}
