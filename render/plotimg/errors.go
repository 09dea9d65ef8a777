// SPDX-License-Identifier: EPL-2.0

package plotimg

import "errors"

var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidSize  = errors.New("image size must be positive")
)
