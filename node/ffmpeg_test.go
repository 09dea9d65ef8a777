// SPDX-License-Identifier: EPL-2.0

package node

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"slices"
	"testing"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/render/ffmpeg"
)

// pngRunner writes a w x h image to the output path ffmpeg would use.
type pngRunner struct {
	w, h int
	args []string
}

func (r *pngRunner) Run(_ context.Context, _ string, args ...string) error {
	r.args = args

	img := image.NewNRGBA(image.Rect(0, 0, r.w, r.h))
	for y := range r.h {
		for x := range r.w {
			img.SetNRGBA(x, y, color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 255})
		}
	}

	f, err := os.Create(args[len(args)-1])
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func TestFFmpegNode_Generate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.TempDir = t.TempDir()
	runner := &pngRunner{w: 640, h: 240}
	n := NewFFmpegNode(cfg, runner)

	out, err := n.Generate(context.Background(), stereoAudio(4000, 16000), DefaultFFmpegParams())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !slices.Equal(out.Shape, []int{1, 240, 640, 3}) {
		t.Fatalf("Shape = %v, want [1 240 640 3]", out.Shape)
	}
	if got := out.At(0, 10, 10, 0); got != float32(0xc0)/255 {
		t.Errorf("red channel = %v, want %v", got, float32(0xc0)/255)
	}
	if !slices.Contains(runner.args, "color=c=#c0c0c0:s=640x240") {
		t.Errorf("args %q missing background source", runner.args)
	}
}

func TestFFmpegNode_Errors(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.TempDir = t.TempDir()
	n := NewFFmpegNode(cfg, &pngRunner{w: 1, h: 1})

	badColor := DefaultFFmpegParams()
	badColor.PeakColor = "red[x]"
	tooWide := DefaultFFmpegParams()
	tooWide.Width = 4096

	tests := []struct {
		name    string
		rate    int
		params  FFmpegParams
		wantErr error
	}{
		{"no sample rate", 0, DefaultFFmpegParams(), audio.ErrInvalidSampleRate},
		{"too wide", 16000, tooWide, ErrOutOfRange},
		{"bad color", 16000, badColor, ffmpeg.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := n.Generate(context.Background(), stereoAudio(100, tt.rate), tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
