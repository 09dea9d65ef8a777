// SPDX-License-Identifier: EPL-2.0

package node

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/ik5/audwave/render/ffmpeg"
	"github.com/ik5/audwave/tensor"
)

type FFmpegParams struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	BgColor       string `json:"bg_color"`
	PeakColor     string `json:"peak_color"`
	RMSColor      string `json:"rms_color"`
	SplitChannels bool   `json:"split_channels"`
}

func DefaultFFmpegParams() FFmpegParams {
	return FFmpegParams{
		Width:         ffmpeg.DefaultWidth,
		Height:        ffmpeg.DefaultHeight,
		BgColor:       ffmpeg.DefaultBackground,
		PeakColor:     ffmpeg.DefaultPeakColor,
		RMSColor:      ffmpeg.DefaultRMSColor,
		SplitChannels: true,
	}
}

func (p FFmpegParams) validate() error {
	def := ffmpegDefinition()
	if err := def.checkInt("width", p.Width); err != nil {
		return err
	}
	return def.checkInt("height", p.Height)
}

func (p FFmpegParams) options() ffmpeg.Options {
	return ffmpeg.Options{
		Width:         p.Width,
		Height:        p.Height,
		Background:    p.BgColor,
		PeakColor:     p.PeakColor,
		RMSColor:      p.RMSColor,
		SplitChannels: p.SplitChannels,
	}
}

// FFmpegNode is AudioWaveformFFMPEG.
type FFmpegNode struct {
	renderer *ffmpeg.Renderer
}

// NewFFmpegNode builds the node. A nil runner executes cfg.FFmpegPath.
func NewFFmpegNode(cfg Config, runner ffmpeg.Runner) *FFmpegNode {
	return &FFmpegNode{
		renderer: &ffmpeg.Renderer{
			Binary:  cfg.FFmpegPath,
			TempDir: cfg.TempDir,
			Runner:  runner,
		},
	}
}

func (FFmpegNode) Definition() Definition { return ffmpegDefinition() }

// Generate renders every channel of the first batch entry and returns a
// [1, height, width, 3] RGB image tensor. The audio must carry its sample
// rate.
func (n *FFmpegNode) Generate(ctx context.Context, a tensor.Audio, p FFmpegParams) (tensor.Tensor, error) {
	if err := p.validate(); err != nil {
		return tensor.Tensor{}, err
	}

	buf, err := a.Buffer()
	if err != nil {
		return tensor.Tensor{}, fmt.Errorf("%s: %w", NameFFmpeg, err)
	}

	img, err := n.renderer.Render(ctx, buf, p.options())
	if err != nil {
		return tensor.Tensor{}, fmt.Errorf("%s: %w", NameFFmpeg, err)
	}

	glog.V(1).Infof("%s: %d channels, %d frames -> %dx%d", NameFFmpeg,
		buf.Channels(), buf.Frames(), p.Width, p.Height)

	return tensor.FromImage(img, 3)
}
