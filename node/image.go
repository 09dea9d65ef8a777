// SPDX-License-Identifier: EPL-2.0

package node

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/ik5/audwave/render/plotimg"
	"github.com/ik5/audwave/tensor"
)

type ImageParams struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Color  string `json:"color"`
}

func DefaultImageParams() ImageParams {
	return ImageParams{Width: 512, Height: 256, Color: "#3232c8"}
}

// ImageNode is AudioToWaveformImage.
type ImageNode struct {
	cfg Config
}

func NewImageNode(cfg Config) *ImageNode {
	return &ImageNode{cfg: cfg}
}

func (ImageNode) Definition() Definition { return imageDefinition() }

func (p ImageParams) validate() error {
	def := imageDefinition()
	if err := def.checkInt("width", p.Width); err != nil {
		return err
	}
	if err := def.checkInt("height", p.Height); err != nil {
		return err
	}
	return def.checkChoice("color", p.Color)
}

// Generate mixes the audio down to mono and draws it, returning a
// [1, height, width, 4] RGBA image tensor.
func (n *ImageNode) Generate(a tensor.Audio, p ImageParams) (tensor.Tensor, error) {
	if err := p.validate(); err != nil {
		return tensor.Tensor{}, err
	}

	buf, err := a.WithDefaultRate(n.cfg.DefaultSampleRate).Buffer()
	if err != nil {
		return tensor.Tensor{}, fmt.Errorf("%s: %w", NameImage, err)
	}
	mono, err := buf.Mono()
	if err != nil {
		return tensor.Tensor{}, fmt.Errorf("%s: mixing to mono: %w", NameImage, err)
	}

	opts := plotimg.DefaultOptions()
	opts.Width, opts.Height = p.Width, p.Height
	opts.Color = p.Color
	opts.PointsPerPixel = n.cfg.PointsPerPixel

	img, err := plotimg.Render(mono, opts)
	if err != nil {
		return tensor.Tensor{}, fmt.Errorf("%s: %w", NameImage, err)
	}

	glog.V(1).Infof("%s: %d channels, %d frames -> %dx%d", NameImage,
		buf.Channels(), buf.Frames(), p.Width, p.Height)

	return tensor.FromImage(img, 4)
}
