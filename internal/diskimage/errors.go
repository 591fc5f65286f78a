// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskimage

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownFirmware is returned for a [Firmware] value that is neither
	// BIOS nor UEFI.
	ErrUnknownFirmware = errors.New("unknown firmware type")

	// ErrUnknownLogLevel is returned if a log level name is not known.
	ErrUnknownLogLevel = errors.New("unknown log level")

	// ErrReservedName is returned if an additional file would replace one of
	// the files the boot partition requires.
	ErrReservedName = errors.New("file name is reserved")

	// ErrLoaderTooLarge is returned if a BIOS loader does not fit into the
	// space in front of the boot partition.
	ErrLoaderTooLarge = errors.New("loader does not fit in front of the boot partition")

	// ErrOutputIsDir is returned if the output path is an existing directory.
	ErrOutputIsDir = errors.New("output path is a directory")

	// ErrNotRegularFile is returned if an input is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")
)

// BuildError wraps any error occurred while creating a disk image.
type BuildError struct {
	Firmware Firmware
	Output   string
	Err      error
}

// Error implements the [error] interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("create %s disk image %s: %v", e.Firmware, e.Output, e.Err)
}

// Is implements the [errors.Is] interface.
func (*BuildError) Is(other error) bool {
	_, ok := other.(*BuildError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *BuildError) Unwrap() error {
	return e.Err
}
