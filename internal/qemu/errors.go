// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
	"fmt"
)

// ErrEmptyExecutable is returned if no QEMU executable is given.
var ErrEmptyExecutable = errors.New("no executable given")

// Op is the stage of a command execution an error occurred in.
type Op string

// Stages of a command execution.
const (
	OpSpawn Op = "spawn"
	OpWait  Op = "wait"
)

// CommandError wraps any error occurred during command execution on the host.
//
// A non-zero exit code of the emulator is not a [CommandError].
type CommandError struct {
	Op         Op
	Executable string
	Err        error
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Executable, e.Err)
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
