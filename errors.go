// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bufobj

import (
	"errors"
	"fmt"
)

// Buffer errors.
var (
	// ErrNilDevice is returned when constructing a buffer without a device.
	ErrNilDevice = errors.New("bufobj: device is nil")

	// ErrReleased is returned when operating on a released buffer.
	ErrReleased = errors.New("bufobj: buffer has been released")

	// ErrInvalidTarget is matched (via errors.Is) by InvalidTargetError.
	ErrInvalidTarget = errors.New("bufobj: target does not support sub-data updates")

	// ErrOutOfRange is returned by the strict constructor when the
	// requested window lies outside the host slice.
	ErrOutOfRange = errors.New("bufobj: range outside host data")
)

// InvalidTargetError reports a sub-range update attempted on a buffer whose
// target is outside the sub-data capable set. It is raised before any
// device call is made.
type InvalidTargetError struct {
	// Target is the offending binding class.
	Target Target
}

// Error implements the error interface.
func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("bufobj: target %s does not support sub-data updates", e.Target)
}

// Is reports whether err matches ErrInvalidTarget.
func (e *InvalidTargetError) Is(err error) bool {
	return err == ErrInvalidTarget
}
