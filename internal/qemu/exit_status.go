// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"os"
	"strconv"
)

// ExitStatus is the exit status of a terminated process.
type ExitStatus struct {
	// Exit code of the process. It is -1 if the process was terminated by a
	// signal.
	Code int

	// Name of the signal that terminated the process, if any.
	Signal string
}

// Success reports whether the process exited with code 0.
func (s ExitStatus) Success() bool {
	return s.Code == 0 && s.Signal == ""
}

// String implements [fmt.Stringer].
func (s ExitStatus) String() string {
	if s.Signal != "" {
		return "signal: " + s.Signal
	}

	return "exit code: " + strconv.Itoa(s.Code)
}

func exitStatusOf(state *os.ProcessState) ExitStatus {
	return ExitStatus{
		Code:   state.ExitCode(),
		Signal: signalName(state),
	}
}
