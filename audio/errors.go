// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrNoChannels        = errors.New("audio buffer has no channels")
	ErrChannelLength     = errors.New("audio channels differ in length")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
