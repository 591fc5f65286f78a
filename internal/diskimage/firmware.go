// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskimage

// Firmware is the firmware type an image is built for.
type Firmware int

// Supported firmware types.
const (
	FirmwareBIOS Firmware = iota
	FirmwareUEFI
)

// String implements [fmt.Stringer].
func (f Firmware) String() string {
	switch f {
	case FirmwareBIOS:
		return "BIOS"
	case FirmwareUEFI:
		return "UEFI"
	default:
		return "unknown"
	}
}

// DefaultImageName returns the file name used for images of the firmware type
// if the user did not name the output file.
func (f Firmware) DefaultImageName() string {
	if f == FirmwareUEFI {
		return "uefi.img"
	}

	return "bios.img"
}
