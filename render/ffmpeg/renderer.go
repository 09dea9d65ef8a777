// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/formats/wav"
)

const (
	DefaultBinary = "ffmpeg"
	inputBitDepth = 16
)

// Runner runs an external program to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs programs with os/exec. A non-zero exit is reported as
// ErrFFmpeg carrying whatever the program wrote to stderr.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("%w: %w", ErrFFmpeg, err)
		}
		return fmt.Errorf("%w: %w: %s", ErrFFmpeg, err, msg)
	}

	return nil
}

// Renderer draws waveform pictures with ffmpeg. The zero value runs
// "ffmpeg" from the PATH and uses the system temp directory.
type Renderer struct {
	Binary  string
	TempDir string
	Runner  Runner
}

// Render draws buf with opts. Every channel of buf is passed to ffmpeg.
func (r *Renderer) Render(ctx context.Context, buf *audio.Buffer, opts Options) (image.Image, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if buf == nil || buf.Frames() == 0 {
		return nil, ErrEmptyAudio
	}
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("rendering with ffmpeg: %w", err)
	}

	dir, err := os.MkdirTemp(r.TempDir, "audwave-ffmpeg-")
	if err != nil {
		return nil, fmt.Errorf("creating work directory: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "input.wav")
	out := filepath.Join(dir, "output.png")

	if err := writeInput(in, buf); err != nil {
		return nil, err
	}

	args := Args(opts, in, out)
	glog.V(2).Infof("ffmpeg: %s %s", r.binary(), strings.Join(args, " "))

	if err := r.runner().Run(ctx, r.binary(), args...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("running ffmpeg: %w", ctxErr)
		}
		return nil, err
	}

	img, err := readOutput(out)
	if err != nil {
		return nil, err
	}

	glog.V(1).Infof("ffmpeg: rendered %d channels, %v of audio as %dx%d",
		buf.Channels(), buf.Duration(), opts.Width, opts.Height)

	return img, nil
}

func (r *Renderer) binary() string {
	if r.Binary == "" {
		return DefaultBinary
	}
	return r.Binary
}

func (r *Renderer) runner() Runner {
	if r.Runner == nil {
		return ExecRunner{}
	}
	return r.Runner
}

func writeInput(path string, buf *audio.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ffmpeg input: %w", err)
	}

	if err := wav.Write(f, buf, inputBitDepth); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing ffmpeg input: %w", err)
	}

	return nil
}

func readOutput(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: no output image: %w", ErrFFmpeg, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding output image: %w", ErrFFmpeg, err)
	}

	return img, nil
}
