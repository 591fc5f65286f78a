// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aibor/bootrun/internal/diskimage"
	"github.com/aibor/bootrun/internal/ramdisk"
)

//go:generate go run go.uber.org/mock/mockgen -destination mocks/mock_bootrun.go -package mocks . ImageBuilder,ProcessRunner

// ImageBuilder creates disk images.
type ImageBuilder interface {
	Build(ctx context.Context, req diskimage.Request) (diskimage.Artifact, error)
}

// ImageRequest returns the build request for cfg.
func ImageRequest(cfg Config, mounts []MountEntry, output string) diskimage.Request {
	return diskimage.Request{
		Firmware: cfg.Firmware(),
		Kernel:   cfg.InputFile,
		Output:   output,
		Config:   ComposeBootConfig(cfg),
		Files:    imageFiles(mounts),
		Ramdisk:  cfg.Ramdisk,
		Loader:   cfg.Loader(),
	}
}

// BuildImage builds the image for cfg at output with a single call of the
// builder.
//
// A ramdisk directory is packed into a temporary archive first. Any error is
// returned as [*diskimage.BuildError].
func BuildImage(
	ctx context.Context,
	builder ImageBuilder,
	cfg Config,
	mounts []MountEntry,
	output string,
) (diskimage.Artifact, error) {
	req := ImageRequest(cfg, mounts, output)

	ramdiskPath, cleanup, err := prepareRamdisk(cfg.Ramdisk)
	if err != nil {
		return diskimage.Artifact{}, &diskimage.BuildError{
			Firmware: req.Firmware,
			Output:   output,
			Err:      err,
		}
	}
	defer cleanup()

	req.Ramdisk = ramdiskPath

	artifact, err := builder.Build(ctx, req)
	if err != nil {
		var buildErr *diskimage.BuildError
		if !errors.As(err, &buildErr) {
			err = &diskimage.BuildError{
				Firmware: req.Firmware,
				Output:   output,
				Err:      err,
			}
		}

		return diskimage.Artifact{}, err
	}

	return artifact, nil
}

// prepareRamdisk returns the path of the ramdisk file to embed. Directories
// are packed into a temporary archive that is removed by the returned
// cleanup function.
func prepareRamdisk(path string) (string, func(), error) {
	noop := func() {}

	if path == "" {
		return "", noop, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", noop, fmt.Errorf("ramdisk: %w", err)
	}

	if !info.IsDir() {
		return path, noop, nil
	}

	archive, err := ramdisk.PackDirToTempFile(path)
	if err != nil {
		return "", noop, fmt.Errorf("pack ramdisk %s: %w", path, err)
	}

	cleanup := func() {
		err := os.Remove(archive)
		if err != nil {
			slog.Warn("Failed to remove ramdisk archive",
				slog.String("path", archive),
				slog.Any("error", err),
			)
		}
	}

	return archive, cleanup, nil
}
