// SPDX-License-Identifier: EPL-2.0

// Package tensor converts between host tensors and the types used by the
// renderers.
//
// A host hands audio over as a float32 tensor of shape [batch, channels,
// samples] (sometimes without the batch axis) plus a sample rate, and
// expects images back as [batch, height, width, channels] tensors with
// values in [0, 1]. Audio.Buffer, FromImage and ToImage are the only places
// where those layouts are known; everything past them works on
// audio.Buffer and image.Image.
package tensor
