// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	// ErrInvalidArgument is returned when the point budget is not positive.
	ErrInvalidArgument = errors.New("target point count must be positive")
)
