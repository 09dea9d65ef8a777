// SPDX-License-Identifier: EPL-2.0

package node

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/ik5/audwave/tensor"
	"github.com/ik5/audwave/waveform"
)

// UI is the message the visualizer sends to the host front end.
type UI struct {
	// WaveformPeaks are finite values in [-1, 1], in time order.
	WaveformPeaks []float32        `json:"waveform_peaks"`
	Summary       waveform.Summary `json:"summary"`
	// DisplayPeak is max |WaveformPeaks|, the value to normalize the drawing
	// by. Summary describes the full-rate mix and may exceed it.
	DisplayPeak   float32          `json:"display_peak"`
}

// Visualizer is AudioWaveformVisualizer.
type Visualizer struct {
	cfg Config
}

func NewVisualizer(cfg Config) *Visualizer {
	return &Visualizer{cfg: cfg}
}

func (Visualizer) Definition() Definition { return visualizerDefinition() }

// Process returns the audio unchanged (a 2-D waveform gains a batch axis)
// along with about PeakTarget display points of its mono mix.
func (v *Visualizer) Process(a tensor.Audio) (tensor.Audio, UI, error) {
	a = a.WithDefaultRate(v.cfg.DefaultSampleRate)

	buf, err := a.Buffer()
	if err != nil {
		return tensor.Audio{}, UI{}, fmt.Errorf("%s: %w", NameVisualizer, err)
	}
	mono, err := buf.Mono()
	if err != nil {
		return tensor.Audio{}, UI{}, fmt.Errorf("%s: mixing to mono: %w", NameVisualizer, err)
	}

	points, err := waveform.Decimate(mono, v.cfg.PeakTarget)
	if err != nil {
		return tensor.Audio{}, UI{}, fmt.Errorf("%s: %w", NameVisualizer, err)
	}

	peaks := waveform.CleanForDisplay(points)
	ui := UI{
		WaveformPeaks: peaks,
		Summary:       waveform.Summarize(mono),
		DisplayPeak:   waveform.MaxAbs(peaks),
	}

	glog.V(1).Infof("%s: %d frames -> %d peaks", NameVisualizer, len(mono), len(ui.WaveformPeaks))

	return a.Passthrough(), ui, nil
}
