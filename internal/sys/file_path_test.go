// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/bootrun/internal/sys"
)

func TestHasTrailingSeparator(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{path: "", expected: false},
		{path: "out", expected: false},
		{path: "out/", expected: true},
		{path: `out\`, expected: true},
		{path: "./", expected: true},
		{path: "out/image.img", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, sys.HasTrailingSeparator(tt.path))
		})
	}
}

func TestJoinPath(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name     string
		dir      string
		expected string
	}{
		{
			name:     "current dir",
			dir:      "./",
			expected: "./uefi.img",
		},
		{
			name:     "trailing separator",
			dir:      "out/",
			expected: "out/uefi.img",
		},
		{
			name:     "no trailing separator",
			dir:      "out",
			expected: "out" + sep + "uefi.img",
		},
		{
			name:     "empty",
			expected: "uefi.img",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sys.JoinPath(tt.dir, "uefi.img"))
		})
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expected    string
		expectedErr error
	}{
		{
			name:     "plain",
			path:     "file.txt",
			expected: "file.txt",
		},
		{
			name:     "nested",
			path:     "/some/dir/file.txt",
			expected: "file.txt",
		},
		{
			name:     "trailing separator",
			path:     "some/dir/",
			expected: "dir",
		},
		{
			name:     "current dir element",
			path:     "some/file/.",
			expected: "file",
		},
		{
			name:        "empty",
			expectedErr: sys.ErrEmptyPath,
		},
		{
			name:        "dot",
			path:        ".",
			expectedErr: sys.ErrNoFileName,
		},
		{
			name:        "parent",
			path:        "some/..",
			expectedErr: sys.ErrNoFileName,
		},
		{
			name:        "root",
			path:        "/",
			expectedErr: sys.ErrNoFileName,
		},
		{
			name:        "repeated root separators",
			path:        "///",
			expectedErr: sys.ErrNoFileName,
		},
		{
			name:        "invalid utf-8",
			path:        "dir/\xff\xfe.bin",
			expectedErr: sys.ErrFileNameNotText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := sys.FileName(tt.path)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestAbsolutePath(t *testing.T) {
	_, err := sys.AbsolutePath("")
	require.ErrorIs(t, err, sys.ErrEmptyPath)

	abs, err := sys.AbsolutePath("file")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
	assert.Equal(t, "file", filepath.Base(abs))
}
