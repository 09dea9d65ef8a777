// SPDX-License-Identifier: EPL-2.0

// Package waveform reduces mono sample buffers to a bounded number of
// points for display.
//
// # Decimation
//
// Decimate keeps every step-th sample, starting at index 0, where
// step = len(samples) / target (integer division):
//
//	peaks, err := waveform.Decimate(samples, 4000)
//
// No filtering or averaging takes place. Transients that fall between two
// kept indices are lost, and the result may be slightly longer than the
// target because of the integer division. A buffer that already fits the
// target is returned as is.
//
// # Cleaning
//
// Lightweight front-end renderers cannot cope with NaN, infinities or
// values outside [-1, 1]. CleanForDisplay maps NaN to 0 and clamps
// everything else, so +Inf becomes 1 and -Inf becomes -1:
//
//	peaks = waveform.CleanForDisplay(peaks)
//
// # Summary
//
// Summarize reports peak, RMS and DC level of a buffer so a consumer can
// scale the decimated points without scanning them again.
//
// All functions are pure and safe for concurrent use on distinct buffers.
package waveform
