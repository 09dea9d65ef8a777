// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/formats/aiff"
	"github.com/ik5/audwave/formats/flac"
	"github.com/ik5/audwave/formats/mp3"
	"github.com/ik5/audwave/formats/vorbis"
	"github.com/ik5/audwave/formats/wav"
)

// DefaultRegistry returns a registry holding every bundled decoder, keyed
// by the file extensions they handle.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// MonoSamples drains src, averaging its channels, and returns the samples
// with their sample rate. src is not closed.
func MonoSamples(src audio.Source) ([]float32, int, error) {
	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, 0, fmt.Errorf("reading audio: %w", err)
	}

	mono, err := buf.Mono()
	if err != nil {
		return nil, 0, fmt.Errorf("mixing to mono: %w", err)
	}

	return mono, buf.Rate, nil
}

// DecodeFile decodes the whole file at path with the decoder registered
// for its extension.
func DecodeFile(reg *audio.Registry, path string) (*audio.Buffer, error) {
	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	glog.V(1).Infof("audwave: decoded %s: %d channels, %d Hz, %v",
		filepath.Base(path), buf.Channels(), buf.Rate, buf.Duration())

	return buf, nil
}
