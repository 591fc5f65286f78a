// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun_test

import (
	"testing"

	"github.com/aibor/bootrun/internal/bootrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input       string
		expected    bootrun.Mode
		expectedErr error
	}{
		{input: "build", expected: bootrun.ModeBuild},
		{input: "b", expected: bootrun.ModeBuild},
		{input: "run", expected: bootrun.ModeRun},
		{input: "r", expected: bootrun.ModeRun},
		{input: "build-run", expected: bootrun.ModeBuildAndRun},
		{input: "br", expected: bootrun.ModeBuildAndRun},
		{input: "Build", expectedErr: bootrun.ErrUnknownMode},
		{input: "rb", expectedErr: bootrun.ErrUnknownMode},
		{input: "", expectedErr: bootrun.ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual, err := bootrun.ParseMode(tt.input)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestModeGates(t *testing.T) {
	tests := []struct {
		mode          bootrun.Mode
		expectedBuild bool
		expectedRun   bool
	}{
		{mode: bootrun.ModeBuild, expectedBuild: true},
		{mode: bootrun.ModeRun, expectedRun: true},
		{mode: bootrun.ModeBuildAndRun, expectedBuild: true, expectedRun: true},
		{mode: bootrun.Mode(9)},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			build, run := tt.mode.Gates()
			assert.Equal(t, tt.expectedBuild, build, "build")
			assert.Equal(t, tt.expectedRun, run, "run")
		})
	}
}

func TestModeNames(t *testing.T) {
	for _, mode := range []bootrun.Mode{
		bootrun.ModeBuild,
		bootrun.ModeRun,
		bootrun.ModeBuildAndRun,
	} {
		t.Run(mode.String(), func(t *testing.T) {
			fromName, err := bootrun.ParseMode(mode.String())
			require.NoError(t, err)
			assert.Equal(t, mode, fromName)

			fromAlias, err := bootrun.ParseMode(mode.Alias())
			require.NoError(t, err)
			assert.Equal(t, mode, fromAlias)
		})
	}

	assert.Equal(t, "unknown", bootrun.Mode(-1).String())
	assert.Empty(t, bootrun.Mode(3).Alias())
}
