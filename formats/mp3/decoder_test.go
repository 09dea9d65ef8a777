// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audwave/audio"
)

// fakeMP3 serves canned PCM bytes in chunks of at most chunk bytes.
type fakeMP3 struct {
	data  []byte
	chunk int
	err   error
}

func (f *fakeMP3) SampleRate() int { return 44100 }

func (f *fakeMP3) Read(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if len(f.data) == 0 {
		return 0, io.EOF
	}
	n := min(len(p), len(f.data))
	if f.chunk > 0 {
		n = min(n, f.chunk)
	}
	copy(p, f.data[:n])
	f.data = f.data[n:]
	return n, nil
}

func pcmBytes(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeMP3{}, buf: make([]byte, 8192)}
	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
}

func TestSource_ReadAll(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeMP3{data: pcmBytes(16384, -16384, 0, -32768)}}

	buf, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Frames() != 2 {
		t.Fatalf("Frames() = %d, want 2", buf.Frames())
	}

	if buf.Data[0][0] != 0.5 || buf.Data[1][0] != -0.5 || buf.Data[0][1] != 0 || buf.Data[1][1] != -1 {
		t.Errorf("Data = %v", buf.Data)
	}
}

func TestSource_SplitSamples(t *testing.T) {
	t.Parallel()

	// Three-byte chunks split every other sample across reads.
	want := []int16{100, -200, 300, -400, 500, -600}
	src := &source{dec: &fakeMP3{data: pcmBytes(want...), chunk: 3}}

	var got []float32
	dst := make([]float32, 2)
	for {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i] != float32(w)/32768.0 {
			t.Errorf("sample %d = %v, want %v", i, got[i], float32(w)/32768.0)
		}
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt frame")
	src := &source{dec: &fakeMP3{err: boom}}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want corrupt frame", err)
	}
}

func TestDecoder_InvalidStream(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode(empty) error = nil, want error")
	}
}
