// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ramdisk

import "errors"

// ErrUnsupportedFileType is returned for files that are neither regular files,
// directories nor symbolic links.
var ErrUnsupportedFileType = errors.New("unsupported file type")
