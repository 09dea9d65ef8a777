// SPDX-License-Identifier: EPL-2.0

package tensor

import (
	"fmt"
	"image"
	"image/color"
)

// FromImage converts img into a [1, height, width, channels] tensor with
// values in [0, 1]. channels is 3 (RGB) or 4 (RGBA, straight alpha).
func FromImage(img image.Image, channels int) (Tensor, error) {
	if channels != 3 && channels != 4 {
		return Tensor{}, fmt.Errorf("%w: got %d", ErrUnsupportedChannels, channels)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]float32, 0, w*h*channels)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			data = append(data,
				float32(c.R)/255,
				float32(c.G)/255,
				float32(c.B)/255,
			)
			if channels == 4 {
				data = append(data, float32(c.A)/255)
			}
		}
	}

	return Tensor{Shape: []int{1, h, w, channels}, Data: data}, nil
}

// ToImage converts the first image of a [batch, height, width, channels]
// tensor back into an image. Values are clamped to [0, 1].
func ToImage(t Tensor) (*image.NRGBA, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if t.Dims() != 4 || t.Shape[0] == 0 {
		return nil, fmt.Errorf("%w: image tensor %v", ErrUnsupportedShape, t.Shape)
	}

	h, w, channels := t.Shape[1], t.Shape[2], t.Shape[3]
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedChannels, channels)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			off := (y*w + x) * channels
			px := color.NRGBA{
				R: toByte(t.Data[off]),
				G: toByte(t.Data[off+1]),
				B: toByte(t.Data[off+2]),
				A: 255,
			}
			if channels == 4 {
				px.A = toByte(t.Data[off+3])
			}
			img.SetNRGBA(x, y, px)
		}
	}

	return img, nil
}

func toByte(v float32) uint8 {
	switch {
	case !(v > 0): // NaN too
		return 0
	case v >= 1:
		return 255
	}

	return uint8(v*255 + 0.5)
}
