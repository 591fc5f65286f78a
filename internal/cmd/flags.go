// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"strings"

	"github.com/aibor/bootrun/internal/bootrun"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Set on build.
var version = "dev"

const programName = "bootrun"

// minFrameBufferSize is the smallest accepted frame buffer dimension.
const minFrameBufferSize = 1

func addFlags(flags *pflag.FlagSet, cfg *bootrun.Config, configFile *string) {
	flags.BoolVarP(
		&cfg.UEFI,
		"uefi",
		"u",
		cfg.UEFI,
		"build and run for UEFI firmware instead of BIOS",
	)

	flags.StringVarP(
		&cfg.OutDir,
		"out-dir",
		"o",
		cfg.OutDir,
		"output directory, or image file path if it does not end with a separator and is not a directory",
	)

	flags.StringVarP(
		&cfg.QemuPath,
		"qemu-path",
		"q",
		cfg.QemuPath,
		"QEMU executable used for running",
	)

	flags.StringVar(
		&cfg.OVMFPath,
		"ovmf-path",
		cfg.OVMFPath,
		"UEFI firmware image (default: located in well-known paths)",
	)

	flags.BoolVar(
		&cfg.NoOVMF,
		"no-ovmf",
		cfg.NoOVMF,
		"do not pass a firmware image to QEMU for UEFI",
	)

	flags.StringVar(
		&cfg.UEFILoader,
		"uefi-loader",
		cfg.UEFILoader,
		"UEFI boot loader executable placed at the fallback boot path",
	)

	flags.StringVar(
		&cfg.BIOSLoader,
		"bios-loader",
		cfg.BIOSLoader,
		"BIOS boot loader binary embedded in front of the boot partition",
	)

	flags.StringArrayVarP(
		&cfg.MountFiles,
		"mount-file",
		"m",
		cfg.MountFiles,
		"file placed on the boot partition (may be repeated)",
	)

	flags.StringVar(
		&cfg.Ramdisk,
		"ramdisk",
		cfg.Ramdisk,
		"ramdisk file, or directory packed as cpio archive",
	)

	flags.VarP(
		newOptionalUintValue(&cfg.MinHeight, minFrameBufferSize),
		"min-height",
		"H",
		"minimum frame buffer height",
	)

	flags.VarP(
		newOptionalUintValue(&cfg.MinWidth, minFrameBufferSize),
		"min-width",
		"W",
		"minimum frame buffer width",
	)

	flags.VarP(
		&cfg.LogLevel,
		"log-level",
		"l",
		"boot loader log level ("+strings.Join(bootrun.LogLevelNames(), "|")+")",
	)

	flags.BoolVarP(
		&cfg.FrameLogging,
		"frame-logging",
		"f",
		cfg.FrameLogging,
		"boot loader logs to the frame buffer",
	)

	flags.BoolVarP(
		&cfg.SerialLogging,
		"serial-logging",
		"s",
		cfg.SerialLogging,
		"boot loader logs to the serial port",
	)

	flags.StringArrayVarP(
		&cfg.Args,
		"args",
		"a",
		cfg.Args,
		"argument passed to QEMU (may be repeated)",
	)

	flags.StringVarP(
		configFile,
		"config",
		"c",
		*configFile,
		"project config file (default: "+strings.Join(projectConfigFiles, " or ")+" if present)",
	)
}

// splitArgs returns the input file and the QEMU arguments from the
// positional arguments. dash is the number of arguments before "--" or -1
// if there is none.
func splitArgs(args []string, dash int) (string, []string, error) {
	if len(args) == 0 || dash == 0 {
		return "", nil, ErrNoInputFile
	}

	return args[0], args[1:], nil
}

func newRootCommand(runMode func(*cobra.Command, bootrun.Mode, []string) error) *cobra.Command {
	root := &cobra.Command{
		Use:   programName,
		Short: "Build bootable disk images from kernel binaries and run them in QEMU",
		Long: programName + ` builds a BIOS or UEFI bootable raw disk image from a kernel
executable and optionally runs it in QEMU.

Arguments after "--" are passed to QEMU verbatim, after the ones given
with --args.`,
		Version:           version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(*cobra.Command, []string) error {
			return ErrNoCommand
		},
	}

	modes := []struct {
		mode  bootrun.Mode
		short string
	}{
		{bootrun.ModeBuild, "Build a disk image"},
		{bootrun.ModeRun, "Run an existing disk image in QEMU"},
		{bootrun.ModeBuildAndRun, "Build a disk image and run it in QEMU"},
	}

	for _, m := range modes {
		root.AddCommand(&cobra.Command{
			Use:     m.mode.String() + " [flags] input_file [-- qemu_args...]",
			Aliases: []string{m.mode.Alias()},
			Short:   m.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				mode, err := bootrun.ParseMode(cmd.Name())
				if err != nil {
					return err
				}

				return runMode(cmd, mode, args)
			},
		})
	}

	return root
}
