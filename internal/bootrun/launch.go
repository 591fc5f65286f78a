// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"context"
	"log/slog"

	"github.com/aibor/bootrun/internal/qemu"
	"github.com/aibor/bootrun/internal/sys"
	"github.com/spf13/afero"
)

// ProcessRunner spawns a process and waits for it to terminate.
type ProcessRunner interface {
	Run(ctx context.Context, executable string, args []string) (qemu.ExitStatus, error)
}

// FirmwarePath returns the firmware image QEMU boots the image with. It is
// empty unless an UEFI image is run without [Config.NoOVMF].
//
// [Config.OVMFPath] is used if set. Otherwise, the first existing candidate
// is used or, if none exists, the bare default name that QEMU looks up in
// its own firmware directories.
func FirmwarePath(fsys afero.Fs, cfg Config, candidates []string) string {
	if !cfg.UEFI || cfg.NoOVMF {
		return ""
	}

	if cfg.OVMFPath != "" {
		return cfg.OVMFPath
	}

	path, found := sys.LocateFirmware(fsys, candidates)
	if !found {
		slog.Debug("No firmware image found, let QEMU look it up",
			slog.String("name", path),
		)
	}

	return path
}

// EmulatorCommand returns the QEMU command booting the drive image.
func EmulatorCommand(cfg Config, drive, firmware string) qemu.CommandSpec {
	return qemu.CommandSpec{
		Executable: cfg.QemuPath,
		Firmware:   firmware,
		Drive:      drive,
		Args:       cfg.Args,
		ExtraArgs:  cfg.ExtraArgs,
	}
}

// LaunchEmulator runs the command and waits for it to terminate.
//
// Only failing to spawn or to wait for the process is an error. The exit
// status of the emulator is logged.
func LaunchEmulator(
	ctx context.Context,
	runner ProcessRunner,
	spec qemu.CommandSpec,
) (qemu.ExitStatus, error) {
	image, err := sys.AbsolutePath(spec.Drive)
	if err != nil {
		image = spec.Drive
	}

	slog.Info("Run emulator",
		slog.String("image", image),
		slog.String("command", spec.String()),
	)

	status, err := runner.Run(ctx, spec.Executable, spec.ArgStrings())
	if err != nil {
		return status, err
	}

	if status.Success() {
		slog.Info("Emulator exited", slog.String("status", status.String()))
	} else {
		slog.Warn("Emulator exited", slog.String("status", status.String()))
	}

	return status, nil
}
