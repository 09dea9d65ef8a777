// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import "errors"

var (
	ErrInvalidColor = errors.New("invalid ffmpeg color")
	ErrInvalidSize  = errors.New("image size must be positive")
	ErrEmptyAudio   = errors.New("no audio samples to render")
	ErrFFmpeg       = errors.New("ffmpeg failed")
)
