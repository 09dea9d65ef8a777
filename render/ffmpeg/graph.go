// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import "fmt"

// FilterGraph returns the -filter_complex graph: a peak envelope and an RMS
// envelope of input 0, stacked, then laid over the color source on input 1.
func FilterGraph(o Options) string {
	size := o.size()
	split := 0
	if o.SplitChannels {
		split = 1
	}

	return fmt.Sprintf("[0:a] showwavespic=s=%s:split_channels=%d:colors=%s:filter=peak [pk]; ", size, split, o.PeakColor) +
		fmt.Sprintf("[0:a] showwavespic=s=%s:split_channels=%d:colors=%s [rms]; ", size, split, o.RMSColor) +
		"[pk][rms] overlay=format=auto [nobg]; " +
		"[1:v][nobg] overlay=format=auto"
}

// Args returns the ffmpeg arguments that render audio file in into the
// single-frame image out.
func Args(o Options, in, out string) []string {
	return []string{
		"-y", "-v", "error",
		"-i", in,
		"-f", "lavfi", "-i", fmt.Sprintf("color=c=%s:s=%s", o.Background, o.size()),
		"-filter_complex", FilterGraph(o),
		"-frames:v", "1",
		out,
	}
}

func (o Options) size() string {
	return fmt.Sprintf("%dx%d", o.Width, o.Height)
}
