// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM WAV files.
//
// Both directions use github.com/go-audio/wav.
//
// # Decoding
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(source)
//
// PCM data with 16, 24 or 32 bits per sample is supported, with any number
// of channels and any sample rate. Samples come out as float32 in [-1, 1].
//
// The go-audio decoder needs to seek. Readers that cannot seek are buffered
// in memory first.
//
// # Encoding
//
// Write stores an audio.Buffer as PCM, interleaving all channels:
//
//	file, _ := os.Create("out.wav")
//	defer file.Close()
//	err := wav.Write(file, buf, 16)
//
// Samples outside [-1, 1] are clipped and NaN is written as silence. The
// FFmpeg renderer uses Write to hand audio to ffmpeg.
package wav
