// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArrayName indicates the array name sanitized to an empty
	// string.
	ErrInvalidArrayName = errors.New("array name contains no usable identifier characters")
)

// SampleCountError indicates the decoded frame count exceeds the configured
// maximum. It carries both counts for diagnostics.
type SampleCountError struct {
	Actual int
	Max    int
}

func (e *SampleCountError) Error() string {
	return fmt.Sprintf("too many samples (%d), maximum is %d", e.Actual, e.Max)
}
