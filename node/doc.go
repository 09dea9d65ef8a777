// SPDX-License-Identifier: EPL-2.0

// Package node implements the three waveform nodes exposed to a node-graph
// host:
//
//   - AudioToWaveformImage draws the waveform as a line on a transparent
//     RGBA image.
//   - AudioWaveformVisualizer passes its audio through and emits decimated
//     peaks for the host's front end to draw.
//   - AudioWaveformFFMPEG renders a peak and RMS picture with ffmpeg.
//
// Definitions describes their inputs and outputs in the host's terms so a
// host adapter can register them, and the node types do the work on
// tensor values.
package node
