// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aibor/bootrun/internal/bootrun"
	"github.com/aibor/bootrun/internal/bootrun/mocks"
	"github.com/aibor/bootrun/internal/diskimage"
	"github.com/aibor/bootrun/internal/qemu"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testFirmware = "/usr/share/ovmf/OVMF.fd"

type orchestratorFixture struct {
	builder      *mocks.MockImageBuilder
	runner       *mocks.MockProcessRunner
	fs           afero.Fs
	orchestrator *bootrun.Orchestrator
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/work/out", 0o755))
	require.NoError(t, afero.WriteFile(fsys, testFirmware, []byte("fw"), 0o644))

	f := &orchestratorFixture{
		builder: mocks.NewMockImageBuilder(ctrl),
		runner:  mocks.NewMockProcessRunner(ctrl),
		fs:      fsys,
	}

	f.orchestrator = &bootrun.Orchestrator{
		Builder:            f.builder,
		Runner:             f.runner,
		Fs:                 fsys,
		FirmwareCandidates: []string{"/missing/OVMF.fd", testFirmware},
	}

	return f
}

func artifactOf(_ context.Context, req diskimage.Request) (diskimage.Artifact, error) {
	return diskimage.Artifact{
		Path:     req.Output,
		Firmware: req.Firmware,
		Size:     64 << 20,
	}, nil
}

func TestOrchestratorBuild(t *testing.T) {
	f := newOrchestratorFixture(t)

	cfg := bootrun.DefaultConfig()
	cfg.InputFile = "target/kernel"
	cfg.OutDir = "/work/out"
	cfg.MountFiles = []string{"/data/a.txt", "/", "b.txt"}

	expectedReq := diskimage.Request{
		Firmware: diskimage.FirmwareBIOS,
		Kernel:   "target/kernel",
		Output:   "/work/out/bios.img",
		Config:   diskimage.BootConfig{LogLevel: diskimage.LogLevelTrace},
		Files: []diskimage.File{
			{Name: "a.txt", Source: "/data/a.txt"},
			{Name: "b.txt", Source: "b.txt"},
		},
	}

	f.builder.EXPECT().
		Build(gomock.Any(), expectedReq).
		DoAndReturn(artifactOf).
		Times(1)

	err := f.orchestrator.Run(context.Background(), cfg)
	require.NoError(t, err)
}

func TestOrchestratorBuildAndRunUsesFreshImage(t *testing.T) {
	f := newOrchestratorFixture(t)

	cfg := bootrun.DefaultConfig()
	cfg.Mode = bootrun.ModeBuildAndRun
	cfg.InputFile = "target/kernel"
	cfg.OutDir = "/work/new/"
	cfg.UEFI = true
	cfg.Args = []string{"-m", "512M"}
	cfg.ExtraArgs = []string{"-nographic"}

	gomock.InOrder(
		f.builder.EXPECT().
			Build(gomock.Any(), gomock.Any()).
			DoAndReturn(artifactOf),
		f.runner.EXPECT().
			Run(gomock.Any(), "qemu-system-x86_64", []string{
				"-bios", testFirmware,
				"-drive", "format=raw,file=/work/new/uefi.img",
				"-m", "512M",
				"-nographic",
			}).
			Return(qemu.ExitStatus{}, nil),
	)

	err := f.orchestrator.Run(context.Background(), cfg)
	require.NoError(t, err)

	isDir, err := afero.IsDir(f.fs, "/work/new")
	require.NoError(t, err)
	assert.True(t, isDir, "output directory created")
}

func TestOrchestratorRunUsesInputFile(t *testing.T) {
	f := newOrchestratorFixture(t)

	cfg := bootrun.DefaultConfig()
	cfg.Mode = bootrun.ModeRun
	cfg.InputFile = "prebuilt/bios.img"
	cfg.QemuPath = "/opt/qemu/bin/qemu-system-x86_64"
	cfg.ExtraArgs = []string{"-serial", "stdio"}

	f.runner.EXPECT().
		Run(gomock.Any(), "/opt/qemu/bin/qemu-system-x86_64", []string{
			"-drive", "format=raw,file=prebuilt/bios.img",
			"-serial", "stdio",
		}).
		Return(qemu.ExitStatus{Code: 1}, nil)

	err := f.orchestrator.Run(context.Background(), cfg)
	require.NoError(t, err, "emulator exit code is no failure")
}

func TestOrchestratorRunNoOVMF(t *testing.T) {
	f := newOrchestratorFixture(t)

	cfg := bootrun.DefaultConfig()
	cfg.Mode = bootrun.ModeRun
	cfg.InputFile = "uefi.img"
	cfg.UEFI = true
	cfg.NoOVMF = true

	f.runner.EXPECT().
		Run(gomock.Any(), "qemu-system-x86_64", []string{"-drive", "format=raw,file=uefi.img"}).
		Return(qemu.ExitStatus{}, nil)

	require.NoError(t, f.orchestrator.Run(context.Background(), cfg))
}

func TestOrchestratorBuildFailureSkipsRun(t *testing.T) {
	f := newOrchestratorFixture(t)

	cfg := bootrun.DefaultConfig()
	cfg.Mode = bootrun.ModeBuildAndRun
	cfg.InputFile = "target/kernel"
	cfg.OutDir = "/work/out/"

	cause := errors.New("no space left")

	f.builder.EXPECT().
		Build(gomock.Any(), gomock.Any()).
		Return(diskimage.Artifact{}, cause)

	err := f.orchestrator.Run(context.Background(), cfg)
	require.ErrorIs(t, err, cause)

	var buildErr *diskimage.BuildError

	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "/work/out/bios.img", buildErr.Output)
}

func TestOrchestratorRunFailure(t *testing.T) {
	f := newOrchestratorFixture(t)

	cfg := bootrun.DefaultConfig()
	cfg.Mode = bootrun.ModeBuildAndRun
	cfg.InputFile = "target/kernel"
	cfg.OutDir = "/work/out/image.raw"

	cause := &qemu.CommandError{
		Op:         qemu.OpWait,
		Executable: "qemu-system-x86_64",
		Err:        errors.New("no child processes"),
	}

	gomock.InOrder(
		f.builder.EXPECT().
			Build(gomock.Any(), gomock.Any()).
			DoAndReturn(artifactOf),
		f.runner.EXPECT().
			Run(gomock.Any(), "qemu-system-x86_64", []string{"-drive", "format=raw,file=/work/out/image.raw"}).
			Return(qemu.ExitStatus{}, cause),
	)

	err := f.orchestrator.Run(context.Background(), cfg)
	require.ErrorIs(t, err, cause)
}

func TestOrchestratorOutputDirFallback(t *testing.T) {
	f := newOrchestratorFixture(t)
	f.orchestrator.Fs = afero.NewReadOnlyFs(f.fs)

	cfg := bootrun.DefaultConfig()
	cfg.InputFile = "target/kernel"
	cfg.OutDir = "/readonly/dir/"

	f.builder.EXPECT().
		Build(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req diskimage.Request) (diskimage.Artifact, error) {
			assert.Equal(t, "/readonly/dir/", req.Output)
			return artifactOf(ctx, req)
		})

	require.NoError(t, f.orchestrator.Run(context.Background(), cfg))
}

func TestOrchestratorMissingCollaborators(t *testing.T) {
	cfg := bootrun.DefaultConfig()

	err := (&bootrun.Orchestrator{}).Run(context.Background(), cfg)
	require.ErrorIs(t, err, bootrun.ErrNoBuilder)

	cfg.Mode = bootrun.ModeRun

	err = (&bootrun.Orchestrator{}).Run(context.Background(), cfg)
	require.ErrorIs(t, err, bootrun.ErrNoRunner)
}
