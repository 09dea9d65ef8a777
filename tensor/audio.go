// SPDX-License-Identifier: EPL-2.0

package tensor

import (
	"fmt"

	"github.com/ik5/audwave/audio"
)

// Audio is the host's audio value: a waveform tensor and its sample rate.
type Audio struct {
	Waveform   Tensor `json:"waveform"`
	SampleRate int    `json:"sample_rate"`
}

// NewAudio lays buf out as a [1, channels, samples] waveform.
func NewAudio(buf *audio.Buffer) Audio {
	frames := buf.Frames()
	data := make([]float32, 0, buf.Channels()*frames)
	for _, ch := range buf.Data {
		data = append(data, ch...)
	}

	return Audio{
		Waveform:   Tensor{Shape: []int{1, buf.Channels(), frames}, Data: data},
		SampleRate: buf.Rate,
	}
}

// WithDefaultRate fills in rate when the sample rate is missing.
func (a Audio) WithDefaultRate(rate int) Audio {
	if a.SampleRate <= 0 {
		a.SampleRate = rate
	}

	return a
}

// Buffer normalizes the waveform into an audio.Buffer.
//
// Accepted shapes are [batch, channels, samples] (only the first batch
// entry is used), [channels, samples] and [samples]. Channel slices share
// memory with the tensor.
func (a Audio) Buffer() (*audio.Buffer, error) {
	w := a.Waveform
	if err := w.Validate(); err != nil {
		return nil, err
	}

	var channels, frames int
	switch w.Dims() {
	case 3:
		if w.Shape[0] == 0 {
			return nil, fmt.Errorf("%w: empty batch in %v", ErrUnsupportedShape, w.Shape)
		}
		channels, frames = w.Shape[1], w.Shape[2]
	case 2:
		channels, frames = w.Shape[0], w.Shape[1]
	case 1:
		channels, frames = 1, w.Shape[0]
	default:
		return nil, fmt.Errorf("%w: %d-D waveform %v", ErrUnsupportedShape, w.Dims(), w.Shape)
	}

	data := make([][]float32, channels)
	for c := range data {
		data[c] = w.Data[c*frames : (c+1)*frames : (c+1)*frames]
	}

	buf, err := audio.NewBuffer(a.SampleRate, data...)
	if err != nil {
		return nil, fmt.Errorf("normalizing waveform %v: %w", w.Shape, err)
	}

	return buf, nil
}

// Passthrough returns the audio for a node's pass-through output. A 2-D
// waveform gains a batch axis; anything else is returned as is.
func (a Audio) Passthrough() Audio {
	if a.Waveform.Dims() == 2 {
		a.Waveform = a.Waveform.Unsqueeze()
	}

	return a
}
