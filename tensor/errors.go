// SPDX-License-Identifier: EPL-2.0

package tensor

import "errors"

var (
	ErrShapeMismatch       = errors.New("tensor shape does not match data length")
	ErrUnsupportedShape    = errors.New("unsupported tensor shape")
	ErrUnsupportedChannels = errors.New("image tensors must have 3 or 4 channels")
)
