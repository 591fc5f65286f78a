// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package diskimage creates raw disk images that boot an x86_64 kernel with
// BIOS or UEFI firmware.
//
// An image carries a single FAT32 boot partition holding the kernel as
// "kernel-x86_64", the boot configuration as "boot.json", an optional
// "ramdisk" and any number of additional files at the partition root. UEFI
// images use a GPT partition table and an EFI system partition, BIOS images an
// MBR partition table with the boot partition marked active.
//
// The boot stages themselves are not part of this package. They are taken
// from loader files given with the [Request], if any.
package diskimage
