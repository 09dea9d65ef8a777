// SPDX-License-Identifier: EPL-2.0

package node

import "errors"

var (
	ErrOutOfRange    = errors.New("input out of range")
	ErrInvalidChoice = errors.New("input is not one of the allowed choices")
	ErrUnknownNode   = errors.New("unknown node")
	ErrInvalidConfig = errors.New("invalid node configuration")
)
