// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding through
// github.com/jfreymuth/oggvorbis.
//
//	source, err := vorbis.Decoder{}.Decode(file)
//
// Vorbis decodes to float32 natively, so samples are passed through without
// conversion. Encoders may produce values slightly outside [-1, 1].
package vorbis
