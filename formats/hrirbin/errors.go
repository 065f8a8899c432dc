// SPDX-License-Identifier: EPL-2.0

package hrirbin

import "errors"

var (
	// ErrBadMagic indicates the input does not start with "HRIRBIN1"
	ErrBadMagic = errors.New("not an HRIR binary file")

	// ErrUnsupportedVersion indicates a version other than 1
	ErrUnsupportedVersion = errors.New("unsupported HRIR binary version")

	// ErrTapMismatch indicates an entry whose channels do not hold exactly taps samples
	ErrTapMismatch = errors.New("entry length does not match tap count")

	// ErrHeaderRange indicates a header value that is negative or does not fit int32
	ErrHeaderRange = errors.New("header value out of range")

	// ErrTruncated indicates the input ended inside an entry
	ErrTruncated = errors.New("truncated HRIR binary file")
)
