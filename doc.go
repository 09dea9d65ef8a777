// SPDX-License-Identifier: EPL-2.0

// Package audwave turns audio into pictures of its waveform.
//
// The work is split across subpackages:
//
//   - waveform reduces a mono buffer to a displayable number of points
//     (Decimate) and sanitizes them for a front end (CleanForDisplay).
//   - audio holds decoded audio in memory and mixes it down to mono.
//   - formats/... decode WAV, AIFF, MP3, Ogg Vorbis and FLAC.
//   - render/plotimg draws a line plot, render/ffmpeg asks ffmpeg for a
//     peak and RMS picture.
//   - tensor and node expose all of it as nodes of a node-graph host.
//
// This package wires the decoders together:
//
//	buf, err := audwave.DecodeFile(audwave.DefaultRegistry(), "song.mp3")
//	if err != nil {
//		return err
//	}
//	mono, err := buf.Mono()
//	if err != nil {
//		return err
//	}
//	peaks, err := waveform.Decimate(mono, 4000)
//
// The cmd/audwave command does the same from the shell.
package audwave
