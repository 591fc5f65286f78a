// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"strings"
)

// Argument is a QEMU argument with or without value.
type Argument struct {
	name  string
	value string
}

// String implements [fmt.Stringer].
func (a Argument) String() string {
	s := "-" + a.name
	if a.value != "" {
		s += " " + a.value
	}

	return s
}

// Strings returns the argument as it is passed to [exec.Command]: the
// dash-prefixed name followed by the value, if present.
func (a Argument) Strings() []string {
	if a.value == "" {
		return []string{"-" + a.name}
	}

	return []string{"-" + a.name, a.value}
}

// NewArgument returns a new [Argument] with the given name. Multiple values are
// joined with ",", as QEMU expects for option lists.
func NewArgument(name string, value ...string) Argument {
	return Argument{
		name:  name,
		value: strings.Join(value, ","),
	}
}

// FirmwareArg returns the argument selecting the firmware image to boot with.
func FirmwareArg(path string) Argument {
	return NewArgument("bios", path)
}

// RawDriveArg returns the argument attaching the given file as raw drive.
func RawDriveArg(path string) Argument {
	return NewArgument("drive", "format=raw", "file="+path)
}

// BuildArgumentStrings compiles the [Argument]s into a slice of strings which
// can be used with [exec.Command].
func BuildArgumentStrings(args []Argument) []string {
	argStrings := make([]string, 0, 2*len(args))

	for _, arg := range args {
		argStrings = append(argStrings, arg.Strings()...)
	}

	return argStrings
}
