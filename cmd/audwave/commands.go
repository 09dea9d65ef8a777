// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/ik5/audwave"
	"github.com/ik5/audwave/node"
	"github.com/ik5/audwave/tensor"
)

var errUsage = errors.New("usage")

// run executes the command named by args[0].
func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command", errUsage)
	}

	switch args[0] {
	case "image":
		return runImage(args[1:], stdout)
	case "peaks":
		return runPeaks(args[1:], stdout)
	case "ffmpeg":
		return runFFmpeg(ctx, args[1:], stdout)
	case "nodes":
		return runNodes(args[1:], stdout)
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	out := fs.String("out", "", "output file (default stdout)")
	return fs, out
}

// parseInput parses args and returns the single input file they name.
func parseInput(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%w: %s needs exactly one input file", errUsage, fs.Name())
	}

	return fs.Arg(0), nil
}

func loadAudio(path string) (tensor.Audio, error) {
	buf, err := audwave.DecodeFile(audwave.DefaultRegistry(), path)
	if err != nil {
		return tensor.Audio{}, err
	}

	return tensor.NewAudio(buf), nil
}

func runImage(args []string, stdout io.Writer) error {
	fs, out := newFlagSet("image")
	p := node.DefaultImageParams()
	cfg := node.DefaultConfig()
	fs.IntVar(&p.Width, "width", p.Width, "image width in pixels (128-2048)")
	fs.IntVar(&p.Height, "height", p.Height, "image height in pixels (64-1024)")
	fs.StringVar(&p.Color, "color", p.Color, "line color: green, #3232c8, red or white")
	fs.IntVar(&cfg.PointsPerPixel, "points-per-pixel", cfg.PointsPerPixel, "decimated points plotted per pixel")

	in, err := parseInput(fs, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a, err := loadAudio(in)
	if err != nil {
		return err
	}
	t, err := node.NewImageNode(cfg).Generate(a, p)
	if err != nil {
		return err
	}

	return writeImage(*out, stdout, t)
}

func runPeaks(args []string, stdout io.Writer) error {
	fs, out := newFlagSet("peaks")
	cfg := node.DefaultConfig()
	fs.IntVar(&cfg.PeakTarget, "target", cfg.PeakTarget, "approximate number of peaks")

	in, err := parseInput(fs, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a, err := loadAudio(in)
	if err != nil {
		return err
	}
	_, ui, err := node.NewVisualizer(cfg).Process(a)
	if err != nil {
		return err
	}

	return writeJSON(*out, stdout, ui)
}

func runFFmpeg(ctx context.Context, args []string, stdout io.Writer) error {
	fs, out := newFlagSet("ffmpeg")
	p := node.DefaultFFmpegParams()
	cfg := node.DefaultConfig()
	fs.IntVar(&p.Width, "width", p.Width, "image width in pixels (128-2048)")
	fs.IntVar(&p.Height, "height", p.Height, "image height in pixels (64-1024)")
	fs.StringVar(&p.BgColor, "bg", p.BgColor, "background color")
	fs.StringVar(&p.PeakColor, "peak", p.PeakColor, "peak envelope color")
	fs.StringVar(&p.RMSColor, "rms", p.RMSColor, "RMS envelope color")
	fs.BoolVar(&p.SplitChannels, "split", p.SplitChannels, "draw each channel separately")
	fs.StringVar(&cfg.FFmpegPath, "ffmpeg", cfg.FFmpegPath, "ffmpeg executable")
	fs.StringVar(&cfg.TempDir, "tmp", cfg.TempDir, "directory for intermediate files")

	in, err := parseInput(fs, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a, err := loadAudio(in)
	if err != nil {
		return err
	}
	t, err := node.NewFFmpegNode(cfg, nil).Generate(ctx, a, p)
	if err != nil {
		return err
	}

	return writeImage(*out, stdout, t)
}

func runNodes(args []string, stdout io.Writer) error {
	fs, out := newFlagSet("nodes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return writeJSON(*out, stdout, node.Definitions())
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	return f, nil
}

func writeImage(path string, stdout io.Writer, t tensor.Tensor) error {
	img, err := tensor.ToImage(t)
	if err != nil {
		return err
	}

	w, err := openOutput(path, stdout)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		w.Close()
		return fmt.Errorf("encoding png: %w", err)
	}

	return w.Close()
}

func writeJSON(path string, stdout io.Writer, v any) error {
	w, err := openOutput(path, stdout)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		w.Close()
		return fmt.Errorf("encoding json: %w", err)
	}

	return w.Close()
}
