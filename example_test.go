// SPDX-License-Identifier: EPL-2.0

package audwave_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audwave"
	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/formats/wav"
	"github.com/ik5/audwave/waveform"
)

// Example_decodeFile decodes a WAV file and reduces it to display peaks.
func Example_decodeFile() {
	dir, err := os.MkdirTemp("", "audwave-example-")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	// One second of a 100 Hz square wave at 8 kHz.
	samples := make([]float32, 8000)
	for i := range samples {
		samples[i] = 0.5
		if (i/40)%2 == 1 {
			samples[i] = -0.5
		}
	}
	in, _ := audio.NewBuffer(8000, samples)

	path := filepath.Join(dir, "square.wav")
	f, _ := os.Create(path)
	if err := wav.Write(f, in, 16); err != nil {
		fmt.Println(err)
		return
	}
	f.Close()

	buf, err := audwave.DecodeFile(audwave.DefaultRegistry(), path)
	if err != nil {
		fmt.Println(err)
		return
	}
	mono, _ := buf.Mono()
	peaks, _ := waveform.Decimate(mono, 1000)

	fmt.Println(buf.Rate, buf.Channels(), buf.Duration())
	fmt.Println(len(peaks))
	// Output:
	// 8000 1 1s
	// 1000
}
