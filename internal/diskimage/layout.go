// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskimage

import (
	"github.com/diskfs/go-diskfs/partition"
	"github.com/diskfs/go-diskfs/partition/gpt"
	"github.com/diskfs/go-diskfs/partition/mbr"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	mib = 1 << 20

	sectorSize           = 512
	partitionStartSector = 2048
	minImageSize         = 64 * mib

	// Sectors at the end of the disk occupied by the backup GPT header and
	// partition entries.
	gptBackupSectors = 33

	mbrBootCodeSize   = 440
	maxBIOSLoaderSize = mbrBootCodeSize + (partitionStartSector-1)*sectorSize

	volumeLabel       = "BOOT"
	partitionName     = "EFI System Partition"
	kernelFileName    = "kernel-x86_64"
	configFileName    = "boot.json"
	ramdiskFileName   = "ramdisk"
	uefiLoaderDirPath = "/EFI/BOOT"
	uefiLoaderPath    = uefiLoaderDirPath + "/BOOTX64.EFI"
)

// imageSize returns the image size for the given amount of file content.
//
// Besides the partition offset it adds room for FAT tables, directory entries
// and the backup GPT. The result is a multiple of 1 MiB, at least 64 MiB.
func imageSize(contentSize int64) int64 {
	size := partitionStartSector*sectorSize + contentSize + contentSize/8 + 4*mib

	size = (size + mib - 1) / mib * mib

	return max(size, minImageSize)
}

// partitionTable returns the partition table for an image of the given size.
// It has a single partition starting at sector 2048 and spanning the rest of
// the disk.
func partitionTable(firmware Firmware, size int64) (partition.Table, error) {
	totalSectors := size / sectorSize

	switch firmware {
	case FirmwareUEFI:
		start := uint64(partitionStartSector)
		end := uint64(totalSectors - gptBackupSectors - 1)

		return &gpt.Table{
			LogicalSectorSize:  sectorSize,
			PhysicalSectorSize: sectorSize,
			ProtectiveMBR:      true,
			GUID:               uuid.NewString(),
			Partitions: []*gpt.Partition{
				{
					Start: start,
					End:   end,
					Size:  (end - start + 1) * sectorSize,
					Type:  gpt.EFISystemPartition,
					Name:  partitionName,
					GUID:  uuid.NewString(),
				},
			},
		}, nil
	case FirmwareBIOS:
		return &mbr.Table{
			LogicalSectorSize:  sectorSize,
			PhysicalSectorSize: sectorSize,
			Partitions: []*mbr.Partition{
				{
					Bootable: true,
					Type:     mbr.Fat32LBA,
					Start:    partitionStartSector,
					Size:     uint32(totalSectors - partitionStartSector),
				},
			},
		}, nil
	default:
		return nil, errors.WithStack(ErrUnknownFirmware)
	}
}
