// SPDX-License-Identifier: EPL-2.0

package node

import "github.com/ik5/audwave/render/ffmpeg"

// Nodes bundles one instance of every node sharing a Config.
type Nodes struct {
	Image      *ImageNode
	Visualizer *Visualizer
	FFmpeg     *FFmpegNode
}

// New validates cfg and builds the nodes. runner may be nil.
func New(cfg Config, runner ffmpeg.Runner) (*Nodes, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Nodes{
		Image:      NewImageNode(cfg),
		Visualizer: NewVisualizer(cfg),
		FFmpeg:     NewFFmpegNode(cfg, runner),
	}, nil
}
