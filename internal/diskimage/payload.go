// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package diskimage

import (
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// payloadFile is a single file written to the boot partition. Its content is
// either read from source or taken from data.
type payloadFile struct {
	path   string
	source string
	data   []byte
	size   int64
}

// reservedNames are the root entries written by the builder itself, keyed by
// [fatName].
var reservedNames = map[string]bool{
	fatName(kernelFileName):  true,
	fatName(configFileName):  true,
	fatName(ramdiskFileName): true,
	fatName("EFI"):           true,
}

// fatName returns the key FAT compares file names by. FAT file names are case
// insensitive.
func fatName(name string) string {
	return strings.ToUpper(name)
}

// collectPayload returns the files for the boot partition in the order they
// are written.
func collectPayload(req Request, config []byte) ([]payloadFile, error) {
	kernel, err := sourceFile("/"+kernelFileName, req.Kernel)
	if err != nil {
		return nil, errors.Wrap(err, "kernel")
	}

	payload := []payloadFile{
		kernel,
		{path: "/" + configFileName, data: config, size: int64(len(config))},
	}

	if req.Ramdisk != "" {
		ramdisk, err := sourceFile("/"+ramdiskFileName, req.Ramdisk)
		if err != nil {
			return nil, errors.Wrap(err, "ramdisk")
		}

		payload = append(payload, ramdisk)
	}

	files, err := dedupFiles(req.Files)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		extra, err := sourceFile("/"+file.Name, file.Source)
		if err != nil {
			return nil, errors.Wrapf(err, "file %s", file.Name)
		}

		payload = append(payload, extra)
	}

	if req.Firmware == FirmwareUEFI && req.Loader != "" {
		loader, err := sourceFile(uefiLoaderPath, req.Loader)
		if err != nil {
			return nil, errors.Wrap(err, "loader")
		}

		payload = append(payload, loader)
	}

	return payload, nil
}

// dedupFiles removes files with duplicate names. Names differing only in case
// are duplicates. The last occurrence is kept at the position of the first
// one.
func dedupFiles(files []File) ([]File, error) {
	result := make([]File, 0, len(files))
	index := make(map[string]int, len(files))

	for _, file := range files {
		if file.Name == "" || file.Name != path.Base(file.Name) || file.Name == "." || file.Name == ".." {
			return nil, errors.Errorf("invalid file name %q", file.Name)
		}

		key := fatName(file.Name)

		if reservedNames[key] {
			return nil, errors.Wrapf(ErrReservedName, "%s", file.Name)
		}

		if idx, exists := index[key]; exists {
			result[idx] = file
			continue
		}

		index[key] = len(result)
		result = append(result, file)
	}

	return result, nil
}

func sourceFile(dest, source string) (payloadFile, error) {
	info, err := os.Stat(source)
	if err != nil {
		return payloadFile{}, errors.WithStack(err)
	}

	if !info.Mode().IsRegular() {
		return payloadFile{}, errors.Wrapf(ErrNotRegularFile, "%s", source)
	}

	return payloadFile{path: dest, source: source, size: info.Size()}, nil
}

func payloadSize(payload []payloadFile) int64 {
	var size int64
	for _, file := range payload {
		size += file.size
	}

	return size
}
