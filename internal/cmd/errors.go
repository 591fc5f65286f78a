// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInputFile is returned if no input file is given.
	ErrNoInputFile = errors.New("no input file given")

	// ErrNoCommand is returned if no command is given.
	ErrNoCommand = errors.New("no command given")

	// ErrValueOutOfRange is returned if a flag value is out of range.
	ErrValueOutOfRange = errors.New("value is outside of range")

	// ErrUnsupportedConfigFormat is returned for config files with unknown
	// extension.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")

	// ErrUnknownConfigKey is returned for config files with unknown keys.
	ErrUnknownConfigKey = errors.New("unknown config key")

	// ErrUnknownLogLevel is returned for unknown log level names.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
