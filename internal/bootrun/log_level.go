// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"fmt"
	"strings"

	"github.com/aibor/bootrun/internal/diskimage"
)

// LogLevel is the log level of the boot loader running in the image.
//
// It implements [github.com/spf13/pflag.Value] so it can be used as flag
// directly.
type LogLevel int

// Available log levels. The zero value is the most verbose level.
const (
	LogLevelTrace LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelOff
)

var logLevels = []struct {
	level LogLevel
	name  string
	boot  diskimage.LogLevel
}{
	{LogLevelOff, "off", diskimage.LogLevelOff},
	{LogLevelTrace, "trace", diskimage.LogLevelTrace},
	{LogLevelDebug, "debug", diskimage.LogLevelDebug},
	{LogLevelInfo, "info", diskimage.LogLevelInfo},
	{LogLevelWarn, "warn", diskimage.LogLevelWarn},
	{LogLevelError, "error", diskimage.LogLevelError},
}

// LogLevelNames returns the names of all log levels.
func LogLevelNames() []string {
	names := make([]string, 0, len(logLevels))
	for _, l := range logLevels {
		names = append(names, l.name)
	}

	return names
}

// ParseLogLevel returns the log level for the given case-insensitive name.
func ParseLogLevel(s string) (LogLevel, error) {
	for _, l := range logLevels {
		if strings.EqualFold(s, l.name) {
			return l.level, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownLogLevel, s)
}

// String implements [fmt.Stringer] and [github.com/spf13/pflag.Value].
func (l LogLevel) String() string {
	for _, entry := range logLevels {
		if entry.level == l {
			return entry.name
		}
	}

	return "unknown"
}

// Set implements [github.com/spf13/pflag.Value].
func (l *LogLevel) Set(s string) error {
	level, err := ParseLogLevel(s)
	if err != nil {
		return err
	}

	*l = level

	return nil
}

// Type implements [github.com/spf13/pflag.Value].
func (*LogLevel) Type() string {
	return "level"
}

// MarshalText implements [encoding.TextMarshaler].
func (l LogLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *LogLevel) UnmarshalText(text []byte) error {
	return l.Set(string(text))
}

// BootLogLevel returns the boot loader's log level matching l.
func (l LogLevel) BootLogLevel() diskimage.LogLevel {
	for _, entry := range logLevels {
		if entry.level == l {
			return entry.boot
		}
	}

	return diskimage.LogLevelTrace
}

// LogLevelFromBoot returns the log level matching the boot loader's level.
func LogLevelFromBoot(level diskimage.LogLevel) (LogLevel, bool) {
	for _, entry := range logLevels {
		if entry.boot == level {
			return entry.level, true
		}
	}

	return 0, false
}
