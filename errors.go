// SPDX-License-Identifier: EPL-2.0

package audwave

import "errors"

var ErrUnknownFormat = errors.New("no decoder registered for format")
