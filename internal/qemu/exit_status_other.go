// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !unix

package qemu

import "os"

func signalName(_ *os.ProcessState) string {
	return ""
}
