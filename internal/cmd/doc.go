// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for bootrun. It handles
// flag parsing, the project config file, logging setup, error reporting and
// exit codes.
package cmd
