// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUintValueSet(t *testing.T) {
	ptr := func(n uint64) *uint64 {
		return &n
	}

	tests := []struct {
		name        string
		minimum     uint64
		input       string
		expected    *uint64
		expectedErr error
	}{
		{
			name:        "empty",
			expectedErr: strconv.ErrSyntax,
		},
		{
			name:        "not a number",
			input:       "wide",
			expectedErr: strconv.ErrSyntax,
		},
		{
			name:        "signed int",
			input:       "-1",
			expectedErr: strconv.ErrSyntax,
		},
		{
			name:        "below min",
			minimum:     1,
			input:       "0",
			expectedErr: ErrValueOutOfRange,
		},
		{
			name:     "zero without min",
			input:    "0",
			expected: ptr(0),
		},
		{
			name:     "valid",
			minimum:  1,
			input:    "1920",
			expected: ptr(1920),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target *uint64

			value := newOptionalUintValue(&target, tt.minimum)

			err := value.Set(tt.input)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, target)
		})
	}
}

func TestOptionalUintValueString(t *testing.T) {
	var target *uint64

	value := newOptionalUintValue(&target, 1)
	assert.Empty(t, value.String())
	assert.Equal(t, "uint", value.Type())

	require.NoError(t, value.Set("42"))
	assert.Equal(t, "42", value.String())
}
