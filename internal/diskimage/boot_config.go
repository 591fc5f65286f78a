// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskimage

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// LogLevel is the log level filter the boot loader applies to its own output.
type LogLevel int

// Log levels in increasing verbosity.
const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

var logLevelNames = map[LogLevel]string{
	LogLevelOff:   "Off",
	LogLevelError: "Error",
	LogLevelWarn:  "Warn",
	LogLevelInfo:  "Info",
	LogLevelDebug: "Debug",
	LogLevelTrace: "Trace",
}

// String implements [fmt.Stringer].
func (l LogLevel) String() string {
	name, ok := logLevelNames[l]
	if !ok {
		return "unknown"
	}

	return name
}

// MarshalText implements [encoding.TextMarshaler].
func (l LogLevel) MarshalText() ([]byte, error) {
	name, ok := logLevelNames[l]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownLogLevel, "%d", int(l))
	}

	return []byte(name), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *LogLevel) UnmarshalText(text []byte) error {
	for level, name := range logLevelNames {
		if name == string(text) {
			*l = level
			return nil
		}
	}

	return errors.Wrapf(ErrUnknownLogLevel, "%q", text)
}

// FrameBuffer holds the frame buffer requirements.
//
// The firmware may fall back to a smaller mode if no matching one is
// available.
type FrameBuffer struct {
	MinimumHeight *uint64 `json:"minimum_framebuffer_height"`
	MinimumWidth  *uint64 `json:"minimum_framebuffer_width"`
}

// BootConfig is the configuration the boot loader reads from "boot.json" on
// the boot partition.
type BootConfig struct {
	FrameBuffer        FrameBuffer `json:"frame_buffer"`
	LogLevel           LogLevel    `json:"log_level"`
	FrameBufferLogging bool        `json:"frame_buffer_logging"`
	SerialLogging      bool        `json:"serial_logging"`
}

// Encode returns the JSON document written as "boot.json".
func (c BootConfig) Encode() ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encode boot config")
	}

	return data, nil
}
