// SPDX-License-Identifier: EPL-2.0

package node

import "fmt"

// Config holds the settings shared by all nodes.
type Config struct {
	// PointsPerPixel sets how many decimated points the image node plots
	// per pixel of width.
	PointsPerPixel int

	// PeakTarget is the number of points the visualizer aims to send.
	PeakTarget int

	// DefaultSampleRate is assumed when an audio value carries no rate.
	// The ffmpeg node never assumes one.
	DefaultSampleRate int

	FFmpegPath string

	// TempDir is where the ffmpeg node stages its files. Empty means the
	// system temp directory.
	TempDir string
}

func DefaultConfig() Config {
	return Config{
		PointsPerPixel:    4,
		PeakTarget:        4000,
		DefaultSampleRate: 44100,
		FFmpegPath:        "ffmpeg",
	}
}

func (c Config) Validate() error {
	switch {
	case c.PointsPerPixel <= 0:
		return fmt.Errorf("%w: points per pixel %d", ErrInvalidConfig, c.PointsPerPixel)
	case c.PeakTarget <= 0:
		return fmt.Errorf("%w: peak target %d", ErrInvalidConfig, c.PeakTarget)
	case c.DefaultSampleRate <= 0:
		return fmt.Errorf("%w: default sample rate %d", ErrInvalidConfig, c.DefaultSampleRate)
	case c.FFmpegPath == "":
		return fmt.Errorf("%w: empty ffmpeg path", ErrInvalidConfig)
	}

	return nil
}
