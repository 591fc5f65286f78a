// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
)

// ExecRunner spawns processes on the host and waits for them to exit.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run spawns the executable with the given arguments and blocks until it
// exits.
//
// Failing to start the process or to wait for it returns a [*CommandError].
// A process that ran and exited, with whatever code, is not an error. Its
// [ExitStatus] is returned.
func (r *ExecRunner) Run(
	ctx context.Context,
	executable string,
	args []string,
) (ExitStatus, error) {
	if executable == "" {
		return ExitStatus{}, &CommandError{Op: OpSpawn, Err: ErrEmptyExecutable}
	}

	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	slog.Debug("Spawn process", slog.String("command", cmd.String()))

	err := cmd.Start()
	if err != nil {
		return ExitStatus{}, &CommandError{
			Op:         OpSpawn,
			Executable: executable,
			Err:        err,
		}
	}

	slog.Debug("Wait for process", slog.Int("pid", cmd.Process.Pid))

	err = cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return ExitStatus{}, &CommandError{
				Op:         OpWait,
				Executable: executable,
				Err:        err,
			}
		}
	}

	return exitStatusOf(cmd.ProcessState), nil
}
