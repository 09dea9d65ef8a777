// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/utils"
)

// Write encodes buf as a PCM WAV file with the given bit depth
// (16, 24 or 32).
func Write(w io.WriteSeeker, buf *audio.Buffer, bitDepth int) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}

	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	interleaved := buf.Interleaved()
	data := make([]int, len(interleaved))
	for i, v := range interleaved {
		data[i] = utils.Float32ToPCM(v, bitDepth)
	}

	enc := gowav.NewEncoder(w, buf.Rate, bitDepth, buf.Channels(), formatPCM)
	err := enc.Write(&goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels(),
			SampleRate:  buf.Rate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
