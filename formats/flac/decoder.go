// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/faiface/beep"
	beepflac "github.com/faiface/beep/flac"

	"github.com/ik5/audwave/audio"
)

// streamer is the part of beep.StreamSeekCloser used by source.
type streamer interface {
	Stream(samples [][2]float64) (n int, ok bool)
	Err() error
	Close() error
}

type source struct {
	s          streamer
	sampleRate int
	channels   int
	frames     [][2]float64
	done       bool
}

func newSource(s streamer, format beep.Format) *source {
	return &source{
		s:          s,
		sampleRate: int(format.SampleRate),
		channels:   min(max(format.NumChannels, 1), 2),
		frames:     make([][2]float64, 2048),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return len(s.frames) * s.channels }

func (s *source) Close() error {
	if err := s.s.Close(); err != nil {
		return fmt.Errorf("closing flac stream: %w", err)
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	want := len(dst) / s.channels
	if cap(s.frames) < want {
		s.frames = make([][2]float64, want)
	}

	n, ok := s.s.Stream(s.frames[:want])
	for f := range n {
		for c := range s.channels {
			dst[f*s.channels+c] = float32(s.frames[f][c])
		}
	}

	if !ok || n == 0 {
		s.done = true
		if err := s.s.Err(); err != nil {
			return n * s.channels, fmt.Errorf("decoding flac: %w", err)
		}
		return n * s.channels, io.EOF
	}

	return n * s.channels, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	s, format, err := beepflac.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("opening flac stream: %w", err)
	}

	return newSource(s, format), nil
}
