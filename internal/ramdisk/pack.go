// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package ramdisk

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ReadLinkFS is a file system that can read the target of symbolic links.
type ReadLinkFS interface {
	fs.FS

	// ReadLink returns the target of the symbolic link name.
	ReadLink(name string) (string, error)
}

// dirFS is an [os.DirFS] that can read symbolic links.
type dirFS struct {
	fs.FS
	dir string
}

func newDirFS(dir string) dirFS {
	return dirFS{FS: os.DirFS(dir), dir: dir}
}

func (d dirFS) ReadLink(name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
	}

	return os.Readlink(filepath.Join(d.dir, filepath.FromSlash(name)))
}

// Pack writes all directories, regular files and symbolic links of fsys into
// a cpio archive written to w. Symbolic links are added as they are, so fsys
// must implement [ReadLinkFS] if it contains any. Entries are written in
// lexical order, parents first. The root directory itself is not added.
func Pack(w io.Writer, fsys fs.FS) error {
	writer := NewWriter(w)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == "." {
			return nil
		}

		switch entry.Type() {
		case fs.ModeDir:
			info, err := entry.Info()
			if err != nil {
				return fmt.Errorf("read info %s: %w", path, err)
			}

			return writer.WriteDirectory(path, info.Mode())
		case 0:
			return writeFile(writer, fsys, path)
		case fs.ModeSymlink:
			return writeLink(writer, fsys, path)
		default:
			return fmt.Errorf("%w: %s (%s)", ErrUnsupportedFileType, path, entry.Type())
		}
	})
	if err != nil {
		return fmt.Errorf("walk: %w", err)
	}

	return writer.Close()
}

func writeFile(writer *Writer, fsys fs.FS, path string) error {
	file, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return writer.WriteRegular(path, file)
}

func writeLink(writer *Writer, fsys fs.FS, path string) error {
	linkFS, ok := fsys.(ReadLinkFS)
	if !ok {
		return fmt.Errorf("%w: %s (cannot read link)", ErrUnsupportedFileType, path)
	}

	target, err := linkFS.ReadLink(path)
	if err != nil {
		return fmt.Errorf("read link: %w", err)
	}

	return writer.WriteLink(path, target)
}

// PackDirToTempFile packs the directory into a new temporary file.
//
// It returns the path of the archive file. The caller is responsible for
// removing it.
func PackDirToTempFile(dir string) (string, error) {
	file, err := os.CreateTemp("", "bootrun-ramdisk-*.cpio")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	path := file.Name()

	err = Pack(file, newDirFS(dir))

	err = errors.Join(err, file.Close())
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}

	slog.Debug("Ramdisk archive created",
		slog.String("dir", dir),
		slog.String("path", path))

	return path, nil
}
