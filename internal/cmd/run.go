// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aibor/bootrun/internal/bootrun"
	"github.com/aibor/bootrun/internal/diskimage"
	"github.com/aibor/bootrun/internal/qemu"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Exit codes of [Run].
const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// runner executes a parsed configuration.
type runner interface {
	Run(ctx context.Context, cfg bootrun.Config) error
}

func newOrchestrator(cmdIO IO, fsys afero.Fs) *bootrun.Orchestrator {
	return &bootrun.Orchestrator{
		Builder: &diskimage.Builder{Progress: progressWriter(cmdIO.Stderr)},
		Runner: &qemu.ExecRunner{
			Stdin:  cmdIO.Stdin,
			Stdout: cmdIO.Stdout,
			Stderr: cmdIO.Stderr,
		},
		Fs: fsys,
	}
}

// progressWriter returns w if it is a terminal, nil otherwise.
func progressWriter(w io.Writer) io.Writer {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil
	}

	return file
}

// command is a single invocation of the CLI.
type command struct {
	io     IO
	fsys   afero.Fs
	runner runner

	cfg        bootrun.Config
	configFile string

	// Error returned by the runner. Any other error is a usage error.
	runErr error
}

func (c *command) runMode(cmd *cobra.Command, mode bootrun.Mode, args []string) error {
	input, extraArgs, err := splitArgs(args, cmd.ArgsLenAtDash())
	if err != nil {
		return &ParseArgsError{msg: "parse args", err: err}
	}

	projectCfg, err := loadProjectConfig(c.fsys, c.configFile)
	if err != nil {
		return &ParseArgsError{msg: "config file", err: err}
	}

	if projectCfg != nil {
		err = projectCfg.apply(cmd.Flags())
		if err != nil {
			return &ParseArgsError{msg: "config file", err: err}
		}
	}

	c.cfg.Mode = mode
	c.cfg.InputFile = input
	c.cfg.ExtraArgs = extraArgs

	slog.Debug("Configuration",
		slog.String("mode", mode.String()),
		slog.String("input", input),
		slog.String("firmware", c.cfg.Firmware().String()),
		slog.String("out_dir", c.cfg.OutDir),
		slog.Any("args", c.cfg.PassThroughArgs()),
	)

	c.runErr = c.runner.Run(cmd.Context(), c.cfg)

	return c.runErr
}

func (c *command) execute(ctx context.Context, args []string) int {
	c.cfg = bootrun.DefaultConfig()

	root := newRootCommand(c.runMode)
	root.SetArgs(args)
	root.SetIn(c.io.Stdin)
	root.SetOut(c.io.Stdout)
	root.SetErr(c.io.Stderr)
	addFlags(root.PersistentFlags(), &c.cfg, &c.configFile)

	err := root.ExecuteContext(ctx)

	switch {
	case err == nil:
		return exitOK
	case c.runErr != nil:
		return handleRunError(err)
	default:
		return handleParseArgsError(err, c.io.Stderr)
	}
}

func handleParseArgsError(err error, output io.Writer) int {
	slog.Error(err.Error())

	fmt.Fprintf(output, "Run '%s --help' for usage.\n", programName)

	return exitUsage
}

func handleRunError(err error) int {
	causes := causeChain(err)

	slog.Error(causes[0])

	for _, cause := range causes[1:] {
		slog.Error("Caused by", slog.String("cause", cause))
	}

	if trace := deepestStackTrace(err); trace != nil {
		slog.Debug("Stack trace", slog.String("trace", fmt.Sprintf("%+v", trace)))
	}

	return exitFatal
}

// causeChain returns the messages of err and all errors it wraps. The
// message of the wrapped error is trimmed from the end of each message.
// Wrappers that do not add a message are skipped.
func causeChain(err error) []string {
	var messages []string

	for err != nil {
		msg := err.Error()

		switch e := err.(type) { //nolint:errorlint
		case interface{ Unwrap() []error }:
			for _, joined := range e.Unwrap() {
				messages = append(messages, causeChain(joined)...)
			}

			return messages
		case interface{ Unwrap() error }:
			next := e.Unwrap()
			if next != nil {
				nextMsg := next.Error()
				if msg == nextMsg {
					err = next
					continue
				}

				msg = strings.TrimSuffix(msg, ": "+nextMsg)
			}

			messages = append(messages, msg)
			err = next
		default:
			return append(messages, msg)
		}
	}

	return messages
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func deepestStackTrace(err error) pkgerrors.StackTrace {
	var trace pkgerrors.StackTrace

	for err != nil {
		if tracer, ok := err.(stackTracer); ok { //nolint:errorlint
			trace = tracer.StackTrace()
		}

		err = errors.Unwrap(err)
	}

	return trace
}

// Run is the main entry point for the CLI command. It returns the exit code.
func Run(args []string, cmdIO IO) int {
	level, levelErr := parseEnvLogLevel(os.Getenv(logLevelEnv))
	setupLogging(cmdIO.Stderr, level)

	if levelErr != nil {
		slog.Warn("Ignore invalid log level",
			slog.String("env", logLevelEnv),
			slog.Any("error", levelErr),
		)
	}

	fsys := afero.NewOsFs()

	c := &command{
		io:     cmdIO,
		fsys:   fsys,
		runner: newOrchestrator(cmdIO, fsys),
	}

	return c.execute(context.Background(), args)
}
