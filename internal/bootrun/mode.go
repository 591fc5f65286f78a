// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"fmt"
)

// Mode is the requested command.
type Mode int

// Available modes.
const (
	ModeBuild Mode = iota
	ModeRun
	ModeBuildAndRun
)

var modeNames = [...]struct{ name, alias string }{
	ModeBuild:       {"build", "b"},
	ModeRun:         {"run", "r"},
	ModeBuildAndRun: {"build-run", "br"},
}

// ParseMode returns the mode for the given name or alias.
func ParseMode(s string) (Mode, error) {
	for mode, names := range modeNames {
		if s == names.name || s == names.alias {
			return Mode(mode), nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownMode, s)
}

// Gates returns if the mode builds an image and if it runs one.
func (m Mode) Gates() (build, run bool) {
	switch m {
	case ModeBuild:
		return true, false
	case ModeRun:
		return false, true
	case ModeBuildAndRun:
		return true, true
	default:
		return false, false
	}
}

// String implements [fmt.Stringer].
func (m Mode) String() string {
	if !m.valid() {
		return "unknown"
	}

	return modeNames[m].name
}

// Alias returns the short name of the mode.
func (m Mode) Alias() string {
	if !m.valid() {
		return ""
	}

	return modeNames[m].alias
}

func (m Mode) valid() bool {
	return m >= 0 && int(m) < len(modeNames)
}
