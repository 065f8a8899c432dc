// SPDX-License-Identifier: EPL-2.0

package irdir

import "errors"

var (
	ErrNoFiles            = errors.New("no impulse response files found")
	ErrSampleRateMismatch = errors.New("impulse responses have different sample rates")
	ErrUnrecognisedName   = errors.New("file name does not encode a direction")
)
