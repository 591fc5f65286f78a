// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"strconv"
)

// optionalUintValue is a [github.com/spf13/pflag.Value] for an optional
// unsigned integer. The target stays nil unless the flag is set.
type optionalUintValue struct {
	value **uint64
	min   uint64
}

func newOptionalUintValue(value **uint64, minimum uint64) *optionalUintValue {
	return &optionalUintValue{value: value, min: minimum}
}

func (u *optionalUintValue) String() string {
	if u.value == nil || *u.value == nil {
		return ""
	}

	return strconv.FormatUint(**u.value, 10)
}

func (u *optionalUintValue) Set(s string) error {
	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if u.min > 0 && value < u.min {
		return fmt.Errorf("%d < %d: %w", value, u.min, ErrValueOutOfRange)
	}

	*u.value = &value

	return nil
}

func (*optionalUintValue) Type() string {
	return "uint"
}
