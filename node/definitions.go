// SPDX-License-Identifier: EPL-2.0

package node

import (
	"fmt"
	"slices"
)

const Category = "AudioTools"

const (
	NameVisualizer = "AudioWaveformVisualizer"
	NameImage      = "AudioToWaveformImage"
	NameFFmpeg     = "AudioWaveformFFMPEG"
)

// Host value types.
const (
	TypeAudio   = "AUDIO"
	TypeImage   = "IMAGE"
	TypeInt     = "INT"
	TypeString  = "STRING"
	TypeBoolean = "BOOLEAN"
	TypeCombo   = "COMBO"
)

// Input describes one node input. Min and Max are set for ranged INT
// inputs, Choices for COMBO inputs.
type Input struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Default any      `json:"default,omitempty"`
	Min     *int     `json:"min,omitempty"`
	Max     *int     `json:"max,omitempty"`
	Choices []string `json:"choices,omitempty"`
}

// Definition is what a host needs to register a node.
type Definition struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Function    string   `json:"function"`
	Inputs      []Input  `json:"inputs"`
	ReturnTypes []string `json:"return_types"`
	OutputNode  bool     `json:"output_node,omitempty"`
}

// Input returns the input called name.
func (d Definition) Input(name string) (Input, bool) {
	i := slices.IndexFunc(d.Inputs, func(in Input) bool { return in.Name == name })
	if i < 0 {
		return Input{}, false
	}
	return d.Inputs[i], true
}

func intp(v int) *int { return &v }

// ImageColors are the colors offered by the image node.
var ImageColors = []string{"green", "#3232c8", "red", "white"}

func visualizerDefinition() Definition {
	return Definition{
		Name:        NameVisualizer,
		DisplayName: "Audio Waveform Visualizer",
		Category:    Category,
		Function:    "process_audio",
		Inputs: []Input{
			{Name: "audio", Type: TypeAudio},
		},
		ReturnTypes: []string{TypeAudio},
		OutputNode:  true,
	}
}

func imageDefinition() Definition {
	return Definition{
		Name:        NameImage,
		DisplayName: "Audio to Waveform Image",
		Description: "Generates a waveform image from audio data.",
		Category:    Category,
		Function:    "generate_waveform",
		Inputs: []Input{
			{Name: "audio", Type: TypeAudio},
			{Name: "width", Type: TypeInt, Default: 512, Min: intp(128), Max: intp(2048)},
			{Name: "height", Type: TypeInt, Default: 256, Min: intp(64), Max: intp(1024)},
			{Name: "color", Type: TypeCombo, Default: "#3232c8", Choices: slices.Clone(ImageColors)},
		},
		ReturnTypes: []string{TypeImage},
	}
}

func ffmpegDefinition() Definition {
	return Definition{
		Name:        NameFFmpeg,
		DisplayName: "Audio Waveform (FFMPEG)",
		Category:    Category,
		Function:    "generate",
		Inputs: []Input{
			{Name: "audio", Type: TypeAudio},
			{Name: "width", Type: TypeInt, Default: 640, Min: intp(128), Max: intp(2048)},
			{Name: "height", Type: TypeInt, Default: 240, Min: intp(64), Max: intp(1024)},
			{Name: "bg_color", Type: TypeString, Default: "#c0c0c0"},
			{Name: "peak_color", Type: TypeString, Default: "#3232c8"},
			{Name: "rms_color", Type: TypeString, Default: "#6464dc"},
			{Name: "split_channels", Type: TypeBoolean, Default: true},
		},
		ReturnTypes: []string{TypeImage},
	}
}

// Definitions lists every node in registration order.
func Definitions() []Definition {
	return []Definition{
		visualizerDefinition(),
		imageDefinition(),
		ffmpegDefinition(),
	}
}

func Lookup(name string) (Definition, error) {
	for _, d := range Definitions() {
		if d.Name == name {
			return d, nil
		}
	}

	return Definition{}, fmt.Errorf("%w: %q", ErrUnknownNode, name)
}

// checkInt reports whether v lies within the bounds of input name.
func (d Definition) checkInt(name string, v int) error {
	in, ok := d.Input(name)
	if !ok {
		return fmt.Errorf("%w: %s has no input %q", ErrUnknownNode, d.Name, name)
	}
	if (in.Min != nil && v < *in.Min) || (in.Max != nil && v > *in.Max) {
		return fmt.Errorf("%w: %s %s = %d, allowed %s", ErrOutOfRange, d.Name, name, v, in.bounds())
	}

	return nil
}

func (d Definition) checkChoice(name, v string) error {
	in, ok := d.Input(name)
	if !ok {
		return fmt.Errorf("%w: %s has no input %q", ErrUnknownNode, d.Name, name)
	}
	if !slices.Contains(in.Choices, v) {
		return fmt.Errorf("%w: %s %s = %q, allowed %q", ErrInvalidChoice, d.Name, name, v, in.Choices)
	}

	return nil
}

func (in Input) bounds() string {
	lo, hi := "-inf", "+inf"
	if in.Min != nil {
		lo = fmt.Sprint(*in.Min)
	}
	if in.Max != nil {
		hi = fmt.Sprint(*in.Max)
	}
	return lo + ".." + hi
}
