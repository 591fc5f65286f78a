// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// logLevelEnv is the environment variable that sets the verbosity of
// bootrun's own log output.
const logLevelEnv = "BOOTRUN_LOG"

const (
	levelTrace = slog.LevelDebug - 4
	levelOff   = slog.Level(math.MaxInt32)

	defaultLevel = slog.LevelInfo
)

var envLogLevels = map[string]slog.Level{
	"trace": levelTrace,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
	"off":   levelOff,
}

// parseEnvLogLevel returns the log level for the value of [logLevelEnv]. An
// empty value is the default level. Unknown values return the default level
// along with an error.
func parseEnvLogLevel(value string) (slog.Level, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultLevel, nil
	}

	level, ok := envLogLevels[strings.ToLower(value)]
	if !ok {
		return defaultLevel, fmt.Errorf("%w: %s", ErrUnknownLogLevel, value)
	}

	return level, nil
}
