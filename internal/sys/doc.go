// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sys provides host side file system helpers for bootrun: path
// name handling that keeps the user's textual intent intact and the lookup of
// UEFI firmware images installed on the host.
package sys
