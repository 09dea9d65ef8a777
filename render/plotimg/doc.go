// SPDX-License-Identifier: EPL-2.0

// Package plotimg draws a waveform as a thin line on a transparent image.
//
// The samples are decimated to a few points per output pixel and handed to
// gonum/plot with the axes hidden, so the line fills the whole canvas:
//
//	img, err := plotimg.Render(mono, plotimg.DefaultOptions())
//
// Values are plotted as given. NaN and infinite samples leave a gap in the
// line instead of being clamped.
package plotimg
