// SPDX-License-Identifier: EPL-2.0

package node

import (
	"math"

	"github.com/ik5/audwave/tensor"
)

// stereoAudio returns a [1, 2, frames] sine with the right channel
// inverted and at half level.
func stereoAudio(frames, rate int) tensor.Audio {
	data := make([]float32, 2*frames)
	for i := range frames {
		v := float32(math.Sin(2 * math.Pi * float64(i) / 64))
		data[i] = v
		data[frames+i] = -v / 2
	}

	return tensor.Audio{
		Waveform:   tensor.Tensor{Shape: []int{1, 2, frames}, Data: data},
		SampleRate: rate,
	}
}
