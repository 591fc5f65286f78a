// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"fmt"

	"github.com/aibor/bootrun/internal/sys"
	"github.com/spf13/afero"
)

const outDirPerm = 0o755

// ResolveOutputPath returns the image file path for the given output hint.
//
// An existing directory or a hint with trailing separator is a directory the
// default file name is joined to. Missing directories are created. Any other
// hint is a literal file path and returned unchanged.
//
// If the directory can not be created, the hint is returned as literal path
// along with the creation error. This is not fatal.
func ResolveOutputPath(fsys afero.Fs, hint, defaultName string) (string, error) {
	isDir, err := afero.IsDir(fsys, hint)
	if err == nil && isDir {
		return sys.JoinPath(hint, defaultName), nil
	}

	if !sys.HasTrailingSeparator(hint) {
		return hint, nil
	}

	err = fsys.MkdirAll(hint, outDirPerm)
	if err != nil {
		return hint, fmt.Errorf("create output directory: %w", err)
	}

	return sys.JoinPath(hint, defaultName), nil
}
