// SPDX-License-Identifier: EPL-2.0

// Package ffmpeg renders a peak and RMS waveform picture with the ffmpeg
// showwavespic filter.
//
// The audio is written to a temporary 16-bit WAV file, ffmpeg draws the
// peak and RMS envelopes on top of a solid background and the resulting
// PNG is decoded back into an image. Nothing is kept on disk afterwards.
//
//	r := &ffmpeg.Renderer{}
//	img, err := r.Render(ctx, buf, ffmpeg.DefaultOptions())
//
// The ffmpeg binary is not bundled; Renderer.Binary names the executable to
// run and defaults to "ffmpeg" on the PATH.
package ffmpeg
