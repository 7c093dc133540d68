// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// PCMToFloat32 scales a signed integer sample of the given bit depth to [-1, 1).
// Depths outside 1..32 are treated as 16-bit.
func PCMToFloat32(v int, bitDepth int) float32 {
	return float32(v) / PCMScale(bitDepth)
}

// PCMScale is the magnitude of the most negative sample at bitDepth.
func PCMScale(bitDepth int) float32 {
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}

	return float32(int64(1) << (bitDepth - 1))
}
