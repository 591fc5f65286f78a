// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu provides utilities for composing and running QEMU system
// emulator commands that boot a raw disk image. It expects the required QEMU
// binary to be present on the system.
//
// The emulator is spawned with the caller's standard streams attached and
// awaited until it exits. Its exit status is reported, but not interpreted.
package qemu
