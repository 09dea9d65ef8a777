// SPDX-License-Identifier: EPL-2.0

package tensor

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 102, B: 0, A: 0})
	return img
}

func TestFromImage_RGBA(t *testing.T) {
	t.Parallel()

	tn, err := FromImage(testImage(), 4)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}

	if !slices.Equal(tn.Shape, []int{1, 1, 2, 4}) {
		t.Fatalf("Shape = %v, want [1 1 2 4]", tn.Shape)
	}
	want := []float32{1, 0, 0.2, 1, 0, 0.4, 0, 0}
	if !slices.Equal(tn.Data, want) {
		t.Errorf("Data = %v, want %v", tn.Data, want)
	}
}

func TestFromImage_RGB(t *testing.T) {
	t.Parallel()

	tn, err := FromImage(testImage(), 3)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if !slices.Equal(tn.Shape, []int{1, 1, 2, 3}) {
		t.Fatalf("Shape = %v, want [1 1 2 3]", tn.Shape)
	}
	if tn.At(0, 0, 0, 0) != 1 || tn.At(0, 0, 0, 2) != 0.2 {
		t.Errorf("first pixel = %v", tn.Data[:3])
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	img.Set(12, 21, color.White)

	tn, err := FromImage(img, 4)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if !slices.Equal(tn.Shape, []int{1, 2, 3, 4}) {
		t.Fatalf("Shape = %v, want [1 2 3 4]", tn.Shape)
	}
	if tn.At(0, 1, 2, 3) != 1 || tn.At(0, 0, 0, 3) != 0 {
		t.Error("pixels not mapped relative to bounds origin")
	}
}

func TestFromImage_BadChannels(t *testing.T) {
	t.Parallel()

	if _, err := FromImage(testImage(), 2); !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("FromImage(_, 2) error = %v, want ErrUnsupportedChannels", err)
	}
}

func TestToImage_RoundTrip(t *testing.T) {
	t.Parallel()

	src := testImage()
	for _, channels := range []int{3, 4} {
		tn, err := FromImage(src, channels)
		if err != nil {
			t.Fatalf("FromImage() error = %v", err)
		}
		img, err := ToImage(tn)
		if err != nil {
			t.Fatalf("ToImage() error = %v", err)
		}

		got := img.NRGBAAt(0, 0)
		if got != (color.NRGBA{R: 255, G: 0, B: 51, A: 255}) {
			t.Errorf("%d channels: pixel = %v", channels, got)
		}
		if channels == 3 && img.NRGBAAt(1, 0).A != 255 {
			t.Error("RGB tensor should decode to opaque pixels")
		}
	}
}

func TestToImage_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		t       Tensor
		wantErr error
	}{
		{"3-D", Tensor{[]int{1, 1, 3}, make([]float32, 3)}, ErrUnsupportedShape},
		{"two channels", Tensor{[]int{1, 1, 1, 2}, make([]float32, 2)}, ErrUnsupportedChannels},
		{"mismatch", Tensor{[]int{1, 1, 1, 3}, make([]float32, 2)}, ErrShapeMismatch},
	}

	for _, tt := range tests {
		if _, err := ToImage(tt.t); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: ToImage() error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestToByte(t *testing.T) {
	t.Parallel()

	tests := map[float32]uint8{-1: 0, 0: 0, 0.5: 128, 1: 255, 2: 255}
	for in, want := range tests {
		if got := toByte(in); got != want {
			t.Errorf("toByte(%v) = %d, want %d", in, got, want)
		}
	}
}
