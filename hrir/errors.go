// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is matched by every *ShapeError.
	ErrInvalidShape = errors.New("invalid array shape")

	// ErrInvalidParams indicates a non-positive tap count, bin step or
	// sample rate.
	ErrInvalidParams = errors.New("invalid conversion parameters")

	// ErrInvalidPosition indicates a NaN or infinite azimuth or elevation.
	ErrInvalidPosition = errors.New("invalid source position")
)

// ShapeError reports an input array whose dimensions cannot be converted.
type ShapeError struct {
	Array  string
	Shape  []int
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected %s shape %v: %s", e.Array, e.Shape, e.Reason)
}

func (e *ShapeError) Unwrap() error { return ErrInvalidShape }

func paramError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}
