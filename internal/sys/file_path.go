// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"
)

// HasTrailingSeparator reports whether the textual form of path ends with a
// path separator. Both "/" and "\" are considered separators independent of
// the host OS, so paths copied between platforms behave the same.
func HasTrailingSeparator(path string) bool {
	if path == "" {
		return false
	}

	switch path[len(path)-1] {
	case '/', '\\':
		return true
	default:
		return false
	}
}

// JoinPath appends name to dir without cleaning dir, so the result keeps the
// form the user typed ("./" and "uefi.img" result in "./uefi.img").
func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}

	if HasTrailingSeparator(dir) {
		return dir + name
	}

	return dir + string(filepath.Separator) + name
}

// FileName returns the final element of path.
//
// Trailing separators are ignored. It returns [ErrNoFileName] if there is no
// final element and [ErrFileNameNotText] if the element is not valid UTF-8.
func FileName(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	name := filepath.Base(filepath.Clean(path))

	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", ErrNoFileName
	}

	if !utf8.ValidString(name) {
		return "", ErrFileNameNotText
	}

	return name, nil
}

// AbsolutePath returns the absolute form of path.
func AbsolutePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return abs, nil
}
