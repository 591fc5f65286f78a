// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"github.com/aibor/bootrun/internal/diskimage"
	"github.com/aibor/bootrun/internal/sys"
)

// MountEntry is a file embedded into the image's boot partition.
type MountEntry struct {
	// File name on the boot partition.
	Name string

	// Path of the file on the host.
	Source string
}

// ResolveMounts returns an entry for each path in input order.
//
// Paths no file name can be derived from are skipped. A [*MountError] is
// returned for each of them.
func ResolveMounts(paths []string) ([]MountEntry, []error) {
	entries := make([]MountEntry, 0, len(paths))

	var skipped []error

	for _, path := range paths {
		name, err := sys.FileName(path)
		if err != nil {
			skipped = append(skipped, &MountError{Path: path, Err: err})
			continue
		}

		entries = append(entries, MountEntry{Name: name, Source: path})
	}

	return entries, skipped
}

func imageFiles(entries []MountEntry) []diskimage.File {
	files := make([]diskimage.File, 0, len(entries))
	for _, entry := range entries {
		files = append(files, diskimage.File{
			Name:   entry.Name,
			Source: entry.Source,
		})
	}

	return files
}
