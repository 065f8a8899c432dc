// SPDX-License-Identifier: EPL-2.0

package hrirpack

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown dataset format")
)
