// SPDX-License-Identifier: EPL-2.0

// Package utils holds sample conversion helpers.
package utils

import "github.com/chewxy/math32"

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM.
// Out of range values are clamped and NaN maps to silence.
func Float32ToInt16(x float32) int16 {
	return int16(scale(x, 32767.0))
}

// Float32ToPCM converts a sample to a signed integer of the given bit depth,
// as stored in go-audio IntBuffers. Supported depths are 16, 24 and 32;
// anything else is treated as 16.
func Float32ToPCM(x float32, bitDepth int) int {
	switch bitDepth {
	case 24:
		return int(scale(x, 8388607.0))
	case 32:
		return int(float64(clamp(x)) * 2147483647.0)
	default:
		return int(Float32ToInt16(x))
	}
}

// PCMToFloat32 is the inverse of Float32ToPCM.
func PCMToFloat32(v int, bitDepth int) float32 {
	switch bitDepth {
	case 24:
		return float32(v) / 8388608.0
	case 32:
		return float32(float64(v) / 2147483648.0)
	default:
		return float32(v) / 32768.0
	}
}

func scale(x, full float32) float32 {
	return clamp(x) * full
}

func clamp(x float32) float32 {
	switch {
	case math32.IsNaN(x):
		return 0
	case x > 1:
		return 1
	case x < -1:
		return -1
	}

	return x
}
