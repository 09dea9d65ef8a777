// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3. The decoder always
// produces 16-bit stereo PCM, so every Source returned here reports two
// channels, even for mono files; mono content appears on both channels.
//
//	source, err := mp3.Decoder{}.Decode(file)
package mp3
