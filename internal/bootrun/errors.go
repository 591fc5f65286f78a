// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMode is returned if a mode name is not known.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrUnknownLogLevel is returned if a log level name is not known.
	ErrUnknownLogLevel = errors.New("unknown log level")

	// ErrNoBuilder is returned if a build is requested without builder.
	ErrNoBuilder = errors.New("no image builder")

	// ErrNoRunner is returned if a run is requested without runner.
	ErrNoRunner = errors.New("no process runner")
)

// MountError is a mount file that is skipped because no file name can be
// derived from its path.
type MountError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *MountError) Error() string {
	return fmt.Sprintf("skip mount file %q: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*MountError) Is(other error) bool {
	_, ok := other.(*MountError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *MountError) Unwrap() error {
	return e.Err
}
