// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files with 16,
// 24 or 32 bits per sample:
//
//	source, err := aiff.Decoder{}.Decode(file)
//
// The go-audio decoder needs an io.ReadSeeker; other readers are buffered in
// memory before decoding.
package aiff
