// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory audio types every renderer works on.
//
// This package contains:
//   - Source interface for streamed, interleaved audio input
//   - Decoder interface and a format Registry
//   - Buffer, fully decoded planar audio
//   - MonoMixer for channel mixing
//
// # Source Interface
//
// Decoders in the formats packages return a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Buffers
//
// Waveform rendering needs the whole signal, so sources are drained into a
// Buffer with ReadAll:
//
//	buf, err := audio.ReadAll(src)
//	mono, err := buf.Mono()
//
// A Buffer can be streamed again with Buffer.Source, which is how Mono
// feeds the MonoMixer.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Format Registry
//
// The registry maps format keys to decoders. Keys are normalized with
// FormatKey, so file extensions work as keys:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(filepath.Ext(path))
//
// # Sample Format
//
// Audio samples are float32 values, nominally in [-1.0, 1.0]. Buffers do not
// enforce the range; values from misbehaving sources are kept as they are and
// cleaned only where a consumer requires it.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. ReadAll treats it as
// the normal end of the stream and wraps any other error.
package audio
