// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aibor/bootrun/internal/qemu"
)

func TestCommandSpec_ArgStrings(t *testing.T) {
	tests := []struct {
		name     string
		spec     qemu.CommandSpec
		expected []string
	}{
		{
			name: "drive only",
			spec: qemu.CommandSpec{
				Drive: "bios.img",
			},
			expected: []string{
				"-drive", "format=raw,file=bios.img",
			},
		},
		{
			name: "firmware first",
			spec: qemu.CommandSpec{
				Firmware: "/fw/OVMF.fd",
				Drive:    "./uefi.img",
			},
			expected: []string{
				"-bios", "/fw/OVMF.fd",
				"-drive", "format=raw,file=./uefi.img",
			},
		},
		{
			name: "pass-through order",
			spec: qemu.CommandSpec{
				Firmware:  "/fw/OVMF.fd",
				Drive:     "./uefi.img",
				Args:      []string{"-m", "512M"},
				ExtraArgs: []string{"-nographic"},
			},
			expected: []string{
				"-bios", "/fw/OVMF.fd",
				"-drive", "format=raw,file=./uefi.img",
				"-m", "512M",
				"-nographic",
			},
		},
		{
			name: "extra args only",
			spec: qemu.CommandSpec{
				Drive:     "bios.img",
				ExtraArgs: []string{"-serial", "stdio"},
			},
			expected: []string{
				"-drive", "format=raw,file=bios.img",
				"-serial", "stdio",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.spec.ArgStrings())
		})
	}
}

func TestCommandSpec_String(t *testing.T) {
	spec := qemu.CommandSpec{
		Executable: "qemu-system-x86_64",
		Drive:      "bios.img",
		Args:       []string{"-nographic"},
	}

	assert.Equal(t,
		"qemu-system-x86_64 -drive format=raw,file=bios.img -nographic",
		spec.String(),
	)
}
