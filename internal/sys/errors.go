// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "errors"

var (
	// ErrNoFileName is returned if a path has no final file name component,
	// like "/", "." or "..".
	ErrNoFileName = errors.New("path has no file name")

	// ErrFileNameNotText is returned if the file name of a path is not valid
	// UTF-8 text.
	ErrFileNameNotText = errors.New("file name is not valid UTF-8")

	// ErrEmptyPath is returned if a path is empty.
	ErrEmptyPath = errors.New("path must not be empty")
)
