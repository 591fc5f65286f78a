// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"context"
	"log/slog"

	"github.com/aibor/bootrun/internal/diskimage"
	"github.com/aibor/bootrun/internal/sys"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// Orchestrator runs the build and run steps the [Mode] requests, in this
// order.
type Orchestrator struct {
	Builder ImageBuilder
	Runner  ProcessRunner

	// File system used for resolving the output path and locating the
	// firmware. The OS file system is used if nil.
	Fs afero.Fs

	// Firmware image paths tried in order. [sys.OVMFSearchPaths] is used if
	// nil.
	FirmwareCandidates []string
}

// Run executes the steps for cfg.
//
// If an image is built and run, the fresh image is run. If an image is only
// run, [Config.InputFile] is run as is. An error of any step is returned
// immediately. A built image is kept if running it fails.
func (o *Orchestrator) Run(ctx context.Context, cfg Config) error {
	build, run := cfg.Mode.Gates()

	path := cfg.InputFile

	if build {
		artifact, err := o.build(ctx, cfg)
		if err != nil {
			return err
		}

		path = artifact.Path
	}

	if run {
		return o.run(ctx, cfg, path)
	}

	return nil
}

func (o *Orchestrator) build(ctx context.Context, cfg Config) (diskimage.Artifact, error) {
	if o.Builder == nil {
		return diskimage.Artifact{}, ErrNoBuilder
	}

	output, err := ResolveOutputPath(o.fs(), cfg.OutDir, cfg.Firmware().DefaultImageName())
	if err != nil {
		slog.Warn("Using output directory as file path",
			slog.String("path", output),
			slog.Any("error", err),
		)
	}

	mounts, skipped := ResolveMounts(cfg.MountFiles)
	for _, err := range skipped {
		slog.Warn("Mount file skipped", slog.Any("error", err))
	}

	slog.Debug("Build image",
		slog.String("input", cfg.InputFile),
		slog.String("output", output),
		slog.String("firmware", cfg.Firmware().String()),
		slog.Int("mounts", len(mounts)),
	)

	artifact, err := BuildImage(ctx, o.Builder, cfg, mounts, output)
	if err != nil {
		return artifact, err
	}

	slog.Info("Image created",
		slog.String("path", artifact.Path),
		slog.String("firmware", artifact.Firmware.String()),
		slog.String("size", humanize.IBytes(uint64(max(artifact.Size, 0)))),
	)

	return artifact, nil
}

func (o *Orchestrator) run(ctx context.Context, cfg Config, path string) error {
	if o.Runner == nil {
		return ErrNoRunner
	}

	candidates := o.FirmwareCandidates
	if candidates == nil {
		candidates = sys.OVMFSearchPaths
	}

	firmware := FirmwarePath(o.fs(), cfg, candidates)
	spec := EmulatorCommand(cfg, path, firmware)

	_, err := LaunchEmulator(ctx, o.Runner, spec)

	return err
}

func (o *Orchestrator) fs() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}

	return o.Fs
}
