// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"github.com/spf13/afero"
)

// DefaultFirmwareName is the OVMF image name used if no firmware image is
// found on the host. QEMU resolves bare names in its own data directories.
const DefaultFirmwareName = "OVMF.fd"

// OVMFSearchPaths are the locations distributions install the x86_64 OVMF
// firmware image to, in lookup order.
var OVMFSearchPaths = []string{
	"/usr/share/ovmf/OVMF.fd",
	"/usr/share/OVMF/OVMF.fd",
	"/usr/share/edk2-ovmf/x64/OVMF.fd",
	"/usr/share/qemu/OVMF.fd",
}

// LocateFirmware returns the first of the given candidates that is a regular
// file in fsys. If none is found, [DefaultFirmwareName] is returned and found
// is false.
func LocateFirmware(fsys afero.Fs, candidates []string) (path string, found bool) {
	for _, candidate := range candidates {
		info, err := fsys.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		return candidate, true
	}

	return DefaultFirmwareName, false
}
