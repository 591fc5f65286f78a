// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskimage

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	diskfs "github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/diskfs/go-diskfs/partition"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// Builder creates bootable raw disk images with a single FAT32 boot
// partition.
//
// The partition contains the kernel as "kernel-x86_64", the boot
// configuration as "boot.json", the optional ramdisk as "ramdisk" and all
// additional files at its root. UEFI images use a GPT with an EFI system
// partition, BIOS images an MBR with a bootable partition.
type Builder struct {
	// Progress receives a progress bar while file content is written. No
	// progress is shown if nil.
	Progress io.Writer
}

// Build creates the disk image described by the request.
//
// Any error is returned as [*BuildError]. No partial image is left behind on
// failure.
func (b *Builder) Build(ctx context.Context, req Request) (Artifact, error) {
	size, err := b.build(ctx, req)
	if err != nil {
		return Artifact{}, &BuildError{
			Firmware: req.Firmware,
			Output:   req.Output,
			Err:      err,
		}
	}

	return Artifact{
		Path:     req.Output,
		Firmware: req.Firmware,
		Size:     size,
	}, nil
}

func (b *Builder) build(ctx context.Context, req Request) (int64, error) {
	if req.Firmware != FirmwareBIOS && req.Firmware != FirmwareUEFI {
		return 0, errors.WithStack(ErrUnknownFirmware)
	}

	config, err := req.Config.Encode()
	if err != nil {
		return 0, err
	}

	payload, err := collectPayload(req, config)
	if err != nil {
		return 0, err
	}

	biosLoader, err := readBIOSLoader(req)
	if err != nil {
		return 0, err
	}

	if req.Loader == "" {
		slog.Warn("No boot loader given, image will not boot on its own",
			slog.String("firmware", req.Firmware.String()),
		)
	}

	err = prepareOutput(req.Output)
	if err != nil {
		return 0, err
	}

	size := imageSize(payloadSize(payload))

	slog.Debug("Create disk image",
		slog.String("path", req.Output),
		slog.String("firmware", req.Firmware.String()),
		slog.Int64("size", size),
	)

	err = b.writeImage(ctx, req, payload, size)
	if err == nil && len(biosLoader) > 0 {
		err = embedBIOSLoader(req.Output, biosLoader)
	}

	if err != nil {
		if rmErr := os.Remove(req.Output); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			slog.Warn("Failed to remove partial image",
				slog.String("path", req.Output),
				slog.Any("error", rmErr),
			)
		}

		return 0, err
	}

	return size, nil
}

func (b *Builder) writeImage(
	ctx context.Context,
	req Request,
	payload []payloadFile,
	size int64,
) error {
	table, err := partitionTable(req.Firmware, size)
	if err != nil {
		return err
	}

	img, err := diskfs.Create(req.Output, size, diskfs.Raw, diskfs.SectorSizeDefault)
	if err != nil {
		return errors.Wrap(err, "create image file")
	}

	err = b.populate(ctx, img, table, payload)
	closeErr := img.File.Close()

	if err != nil {
		return err
	}

	return errors.Wrap(closeErr, "close image file")
}

func (b *Builder) populate(
	ctx context.Context,
	img *disk.Disk,
	table partition.Table,
	payload []payloadFile,
) error {
	err := img.Partition(table)
	if err != nil {
		return errors.Wrap(err, "write partition table")
	}

	fsys, err := img.CreateFilesystem(disk.FilesystemSpec{
		Partition:   1,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: volumeLabel,
	})
	if err != nil {
		return errors.Wrap(err, "create boot file system")
	}

	progress := b.newProgress(img.File.Name(), payloadSize(payload))

	for _, file := range payload {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		err := writeFile(fsys, file, progress)
		if err != nil {
			return err
		}
	}

	if progress != nil {
		_ = progress.Finish()
	}

	return nil
}

func (b *Builder) newProgress(name string, total int64) *progressbar.ProgressBar {
	if b.Progress == nil {
		return nil
	}

	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(b.Progress),
		progressbar.OptionSetDescription("Writing "+filepath.Base(name)),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
}

func writeFile(
	fsys filesystem.FileSystem,
	file payloadFile,
	progress *progressbar.ProgressBar,
) error {
	if dir := path.Dir(file.path); dir != "/" {
		err := fsys.Mkdir(dir)
		if err != nil {
			return errors.Wrapf(err, "create directory %s", dir)
		}
	}

	var src io.Reader = bytes.NewReader(file.data)

	if file.source != "" {
		f, err := os.Open(file.source)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()

		src = f
	}

	dst, err := fsys.OpenFile(file.path, os.O_CREATE|os.O_RDWR)
	if err != nil {
		return errors.Wrapf(err, "create %s", file.path)
	}
	defer dst.Close()

	var w io.Writer = dst
	if progress != nil {
		w = io.MultiWriter(dst, progress)
	}

	// Large chunks keep the number of cluster chain extensions low.
	_, err = io.CopyBuffer(w, struct{ io.Reader }{src}, make([]byte, mib))
	if err != nil {
		return errors.Wrapf(err, "write %s", file.path)
	}

	slog.Debug("File written to boot partition",
		slog.String("path", file.path),
		slog.Int64("size", file.size),
	)

	return nil
}

// prepareOutput makes sure a new image file can be created at the given path.
func prepareOutput(output string) error {
	info, err := os.Stat(output)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return errors.WithStack(err)
	case info.IsDir():
		return errors.WithStack(ErrOutputIsDir)
	}

	return errors.Wrap(os.Remove(output), "remove existing image")
}

func readBIOSLoader(req Request) ([]byte, error) {
	if req.Firmware != FirmwareBIOS || req.Loader == "" {
		return nil, nil
	}

	data, err := os.ReadFile(req.Loader)
	if err != nil {
		return nil, errors.Wrap(err, "loader")
	}

	if len(data) > maxBIOSLoaderSize {
		return nil, errors.Wrapf(ErrLoaderTooLarge, "%d bytes, at most %d bytes",
			len(data), maxBIOSLoaderSize)
	}

	return data, nil
}

// embedBIOSLoader writes the first 440 bytes of the loader into the MBR boot
// code area and the remainder into the sectors following the MBR.
func embedBIOSLoader(output string, loader []byte) error {
	f, err := os.OpenFile(output, os.O_WRONLY, 0)
	if err != nil {
		return errors.WithStack(err)
	}

	bootCode := loader[:min(len(loader), mbrBootCodeSize)]

	_, err = f.WriteAt(bootCode, 0)
	if err == nil && len(loader) > len(bootCode) {
		_, err = f.WriteAt(loader[len(bootCode):], sectorSize)
	}

	closeErr := f.Close()

	if err != nil {
		return errors.Wrap(err, "embed loader")
	}

	return errors.WithStack(closeErr)
}
