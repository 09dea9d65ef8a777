// SPDX-License-Identifier: EPL-2.0

package node

import (
	"encoding/json"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/audwave/tensor"
)

func TestVisualizer_Process(t *testing.T) {
	t.Parallel()

	v := NewVisualizer(DefaultConfig())
	in := stereoAudio(10000, 22050)

	out, ui, err := v.Process(in)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !out.Waveform.Equal(in.Waveform) || out.SampleRate != 22050 {
		t.Error("Process() changed the audio")
	}

	// step = 10000 / 4000 = 2
	if len(ui.WaveformPeaks) != 5000 {
		t.Errorf("len(peaks) = %d, want 5000", len(ui.WaveformPeaks))
	}
	// Mono mix of v and -v/2 is v/4.
	if got, want := ui.WaveformPeaks[8], in.Waveform.Data[16]/4; math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("peaks[8] = %v, want %v", got, want)
	}
	if ui.Summary.Samples != 10000 {
		t.Errorf("Summary.Samples = %d, want 10000", ui.Summary.Samples)
	}
	if math.Abs(ui.Summary.Peak-0.25) > 1e-3 {
		t.Errorf("Summary.Peak = %v, want 0.25", ui.Summary.Peak)
	}

	var want float32
	for _, p := range ui.WaveformPeaks {
		want = max(want, float32(math.Abs(float64(p))))
	}
	if ui.DisplayPeak != want {
		t.Errorf("DisplayPeak = %v, want max |peak| %v", ui.DisplayPeak, want)
	}
}

func TestVisualizer_ShortAudio(t *testing.T) {
	t.Parallel()

	v := NewVisualizer(DefaultConfig())
	in := tensor.Audio{Waveform: tensor.Tensor{Shape: []int{1, 3}, Data: []float32{0.1, -0.2, 0.3}}}

	out, ui, err := v.Process(in)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !slices.Equal(ui.WaveformPeaks, []float32{0.1, -0.2, 0.3}) {
		t.Errorf("peaks = %v, want the input", ui.WaveformPeaks)
	}
	if !slices.Equal(out.Waveform.Shape, []int{1, 1, 3}) {
		t.Errorf("passthrough shape = %v, want [1 1 3]", out.Waveform.Shape)
	}
	if out.SampleRate != 44100 {
		t.Errorf("passthrough rate = %d, want 44100", out.SampleRate)
	}
}

func TestVisualizer_CleansPeaks(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())
	in := tensor.Audio{
		Waveform:   tensor.Tensor{Shape: []int{4}, Data: []float32{2, -3, nan, 0.5}},
		SampleRate: 8000,
	}

	_, ui, err := NewVisualizer(DefaultConfig()).Process(in)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !slices.Equal(ui.WaveformPeaks, []float32{1, -1, 0, 0.5}) {
		t.Errorf("peaks = %v, want [1 -1 0 0.5]", ui.WaveformPeaks)
	}
	if ui.DisplayPeak != 1 {
		t.Errorf("DisplayPeak = %v, want 1", ui.DisplayPeak)
	}
	if ui.Summary.Peak != 3 {
		t.Errorf("Summary.Peak = %v, want 3", ui.Summary.Peak)
	}

	data, err := json.Marshal(ui)
	if err != nil {
		t.Fatalf("json.Marshal(ui) error = %v", err)
	}
	if !strings.HasPrefix(string(data), `{"waveform_peaks":[1,-1,0,0.5],"summary":{`) {
		t.Errorf("ui JSON = %s", data)
	}
	if !strings.HasSuffix(string(data), `,"display_peak":1}`) {
		t.Errorf("ui JSON = %s, want display_peak 1", data)
	}
}

func TestVisualizer_Empty(t *testing.T) {
	t.Parallel()

	in := tensor.Audio{Waveform: tensor.Tensor{Shape: []int{1, 2, 0}, Data: []float32{}}}
	_, ui, err := NewVisualizer(DefaultConfig()).Process(in)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(ui.WaveformPeaks) != 0 {
		t.Errorf("peaks = %v, want none", ui.WaveformPeaks)
	}
}
