// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"slices"
	"strings"
)

// DefaultExecutable is the QEMU binary used if none is given.
const DefaultExecutable = "qemu-system-x86_64"

// CommandSpec defines the parameters of a QEMU run of a disk image.
type CommandSpec struct {
	// Path to or name of the qemu-system binary.
	Executable string

	// Path to the firmware image to boot with. If empty, QEMU's default
	// firmware (SeaBIOS) is used.
	Firmware string

	// Path to the raw disk image to boot.
	Drive string

	// Arguments passed to QEMU verbatim after the drive.
	Args []string

	// Arguments passed to QEMU verbatim after Args.
	ExtraArgs []string
}

// Arguments returns the essential [Argument]s of the command.
func (s *CommandSpec) Arguments() []Argument {
	args := make([]Argument, 0, 2)

	if s.Firmware != "" {
		args = append(args, FirmwareArg(s.Firmware))
	}

	return append(args, RawDriveArg(s.Drive))
}

// ArgStrings compiles the complete argument list of the command.
//
// The order is: firmware selection, drive, [CommandSpec.Args],
// [CommandSpec.ExtraArgs].
func (s *CommandSpec) ArgStrings() []string {
	args := BuildArgumentStrings(s.Arguments())
	args = append(args, s.Args...)
	args = append(args, s.ExtraArgs...)

	return slices.Clip(args)
}

// String returns the command line in a shell-like form for log output.
func (s *CommandSpec) String() string {
	return strings.Join(append([]string{s.Executable}, s.ArgStrings()...), " ")
}
