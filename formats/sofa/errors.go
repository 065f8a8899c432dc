// SPDX-License-Identifier: EPL-2.0

package sofa

import "errors"

var (
	ErrMissingVariable = errors.New("missing SOFA variable")
	ErrBadSampleRate   = errors.New("invalid Data.SamplingRate")
)
