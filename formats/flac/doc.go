// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC decoding through github.com/faiface/beep/flac.
//
//	source, err := flac.Decoder{}.Decode(file)
//
// beep streams at most two channels. Mono files yield one channel; files
// with more than two channels are reduced to their first two.
package flac
