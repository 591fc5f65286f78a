// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"slices"

	"github.com/aibor/bootrun/internal/diskimage"
	"github.com/aibor/bootrun/internal/qemu"
)

// Default values of [Config] fields.
const (
	DefaultOutDir   = "./"
	DefaultQemuPath = qemu.DefaultExecutable
)

// Config is the validated input of a single invocation.
type Config struct {
	Mode Mode

	// Path to the kernel executable when building, or to the image to run
	// with [ModeRun].
	InputFile string

	// Build and run for UEFI instead of BIOS firmware.
	UEFI bool

	// Output directory or literal output file path.
	OutDir string

	// QEMU executable used for running.
	QemuPath string

	// Firmware image used for running UEFI images. Located automatically if
	// empty.
	OVMFPath string

	// Do not pass a firmware image to QEMU for UEFI images.
	NoOVMF bool

	// Optional boot loader files embedded into the image.
	UEFILoader string
	BIOSLoader string

	// Files placed at the root of the boot partition.
	MountFiles []string

	// Optional ramdisk file or directory.
	Ramdisk string

	// Frame buffer minimum dimensions. Nil means no requirement.
	MinWidth  *uint64
	MinHeight *uint64

	LogLevel      LogLevel
	FrameLogging  bool
	SerialLogging bool

	// Arguments for QEMU given by flag.
	Args []string

	// Arguments for QEMU given after the end of options.
	ExtraArgs []string
}

// DefaultConfig returns a [Config] with all defaults set.
func DefaultConfig() Config {
	return Config{
		Mode:     ModeBuild,
		OutDir:   DefaultOutDir,
		QemuPath: DefaultQemuPath,
		LogLevel: LogLevelTrace,
	}
}

// Firmware returns the firmware type to build and run for.
func (c *Config) Firmware() diskimage.Firmware {
	if c.UEFI {
		return diskimage.FirmwareUEFI
	}

	return diskimage.FirmwareBIOS
}

// Loader returns the boot loader file for the selected firmware.
func (c *Config) Loader() string {
	if c.UEFI {
		return c.UEFILoader
	}

	return c.BIOSLoader
}

// PassThroughArgs returns all arguments for QEMU. Flag arguments come
// first.
func (c *Config) PassThroughArgs() []string {
	return slices.Concat(c.Args, c.ExtraArgs)
}
