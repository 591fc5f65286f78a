// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package bootrun sequences building a bootable disk image from a kernel
// binary and running an image in QEMU.
//
// The [Orchestrator] resolves the output path, composes the boot
// configuration, resolves the mount files and hands them to an
// [ImageBuilder]. When requested it then runs the fresh image, or the input
// file as is, with a [ProcessRunner].
package bootrun
