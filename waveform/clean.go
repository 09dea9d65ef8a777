// SPDX-License-Identifier: EPL-2.0

package waveform

import "github.com/chewxy/math32"

// CleanForDisplay returns a copy of values with NaN replaced by 0 and
// everything else clamped to [-1, 1].
func CleanForDisplay(values []float32) []float32 {
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = cleanValue(v)
	}

	return out
}

// CleanInPlace is CleanForDisplay overwriting values.
func CleanInPlace(values []float32) {
	for i, v := range values {
		values[i] = cleanValue(v)
	}
}

// MaxAbs returns the largest magnitude in values, or 0 for an empty slice.
// NaN values are skipped.
func MaxAbs(values []float32) float32 {
	var peak float32
	for _, v := range values {
		if a := math32.Abs(v); a > peak {
			peak = a
		}
	}

	return peak
}

func cleanValue(v float32) float32 {
	switch {
	case math32.IsNaN(v):
		return 0
	case v > 1: // +Inf included
		return 1
	case v < -1:
		return -1
	}

	return v
}
