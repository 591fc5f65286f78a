// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ramdisk packs a directory tree into a newc cpio archive that is
// embedded into a disk image and handed to the kernel as ramdisk.
package ramdisk
