// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskimage

// File is an additional file placed at the root of the boot partition.
type File struct {
	// Name of the file on the boot partition.
	Name string

	// Path of the file on the host.
	Source string
}

// Request describes a single disk image to build.
type Request struct {
	// Firmware type the image is built for.
	Firmware Firmware

	// Path to the kernel executable.
	Kernel string

	// Path the image file is written to. An existing file is replaced.
	Output string

	// Boot configuration written as "boot.json".
	Config BootConfig

	// Additional files. If multiple files have the same name, the last one
	// wins.
	Files []File

	// Optional path to a ramdisk file.
	Ramdisk string

	// Optional path to a boot loader file. For UEFI this is the EFI
	// executable placed at the fallback boot path. For BIOS this is a flat
	// binary whose first 440 bytes become the MBR boot code while the rest is
	// placed directly behind the MBR.
	Loader string
}

// Artifact is a disk image file created by [Builder.Build].
type Artifact struct {
	Path     string
	Firmware Firmware
	Size     int64
}
