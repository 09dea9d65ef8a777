// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Buffer is fully decoded audio held in memory, one slice per channel.
//
// It is the canonical form every accepted input is converted to before
// any waveform work happens.
type Buffer struct {
	Rate int
	Data [][]float32
}

// NewBuffer validates the channel layout and wraps it without copying.
func NewBuffer(rate int, channels ...[]float32) (*Buffer, error) {
	b := &Buffer{Rate: rate, Data: channels}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate checks that the buffer has a positive rate and at least one
// channel, all of the same length.
func (b *Buffer) Validate() error {
	if b.Rate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, b.Rate)
	}
	if len(b.Data) == 0 {
		return ErrNoChannels
	}

	frames := len(b.Data[0])
	for i, ch := range b.Data[1:] {
		if len(ch) != frames {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrChannelLength, i+1, len(ch), frames)
		}
	}

	return nil
}

func (b *Buffer) Channels() int { return len(b.Data) }

// Frames is the number of samples per channel.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}

	return len(b.Data[0])
}

func (b *Buffer) Duration() time.Duration {
	if b.Rate <= 0 {
		return 0
	}

	return time.Duration(b.Frames()) * time.Second / time.Duration(b.Rate)
}

// Interleaved returns the samples frame by frame.
func (b *Buffer) Interleaved() []float32 {
	channels := b.Channels()
	out := make([]float32, b.Frames()*channels)
	for c, ch := range b.Data {
		for f, v := range ch {
			out[f*channels+c] = v
		}
	}

	return out
}

// Source streams the buffer back out through the Source interface.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

// Mono averages all channels into one. A mono buffer is copied.
func (b *Buffer) Mono() ([]float32, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if b.Channels() == 1 {
		out := make([]float32, b.Frames())
		copy(out, b.Data[0])
		return out, nil
	}

	mixed, err := ReadAll(NewMonoMixer(b.Source()))
	if err != nil {
		return nil, err
	}

	return mixed.Data[0], nil
}

// ReadAll drains src and deinterleaves it into a Buffer.
// The source is not closed.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels
	buf := make([]float32, size)

	data := make([][]float32, channels)
	ch := 0 // sources may split a frame across reads
	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			data[ch] = append(data[ch], v)
			ch = (ch + 1) % channels
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	// Drop a trailing partial frame.
	frames := len(data[channels-1])
	for c := range data {
		if data[c] == nil {
			data[c] = []float32{}
		}
		data[c] = data[c][:frames]
	}

	return NewBuffer(src.SampleRate(), data...)
}

type bufferSource struct {
	buf *Buffer
	pos int // frames already emitted
}

func (s *bufferSource) SampleRate() int { return s.buf.Rate }
func (s *bufferSource) Channels() int   { return s.buf.Channels() }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.Channels()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := min(len(dst)/channels, s.buf.Frames()-s.pos)
	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = s.buf.Data[c][s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= s.buf.Frames() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}
