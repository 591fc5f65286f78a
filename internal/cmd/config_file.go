// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Project config files looked up in the working directory, in this order.
var projectConfigFiles = []string{"bootrun.toml", "bootrun.yaml"}

// projectConfig is the content of a project config file. Keys mirror the
// long flag names. Unset keys are nil.
type projectConfig struct {
	UEFI          *bool    `toml:"uefi"           yaml:"uefi"`
	OutDir        *string  `toml:"out_dir"        yaml:"out_dir"`
	QemuPath      *string  `toml:"qemu_path"      yaml:"qemu_path"`
	OVMFPath      *string  `toml:"ovmf_path"      yaml:"ovmf_path"`
	UEFILoader    *string  `toml:"uefi_loader"    yaml:"uefi_loader"`
	BIOSLoader    *string  `toml:"bios_loader"    yaml:"bios_loader"`
	NoOVMF        *bool    `toml:"no_ovmf"        yaml:"no_ovmf"`
	MountFiles    []string `toml:"mount_files"    yaml:"mount_files"`
	Ramdisk       *string  `toml:"ramdisk"        yaml:"ramdisk"`
	LogLevel      *string  `toml:"log_level"      yaml:"log_level"`
	FrameLogging  *bool    `toml:"frame_logging"  yaml:"frame_logging"`
	SerialLogging *bool    `toml:"serial_logging" yaml:"serial_logging"`
	MinWidth      *uint64  `toml:"min_width"      yaml:"min_width"`
	MinHeight     *uint64  `toml:"min_height"     yaml:"min_height"`
	Args          []string `toml:"args"           yaml:"args"`
}

type flagValues struct {
	name   string
	values []string
}

func boolValue(name string, v *bool) flagValues {
	if v == nil {
		return flagValues{name: name}
	}

	return flagValues{name, []string{strconv.FormatBool(*v)}}
}

func stringValue(name string, v *string) flagValues {
	if v == nil {
		return flagValues{name: name}
	}

	return flagValues{name, []string{*v}}
}

func uintValue(name string, v *uint64) flagValues {
	if v == nil {
		return flagValues{name: name}
	}

	return flagValues{name, []string{strconv.FormatUint(*v, 10)}}
}

// settings returns the flag values the config sets, by flag name.
func (c *projectConfig) settings() []flagValues {
	return []flagValues{
		boolValue("uefi", c.UEFI),
		stringValue("out-dir", c.OutDir),
		stringValue("qemu-path", c.QemuPath),
		stringValue("ovmf-path", c.OVMFPath),
		stringValue("uefi-loader", c.UEFILoader),
		stringValue("bios-loader", c.BIOSLoader),
		boolValue("no-ovmf", c.NoOVMF),
		{"mount-file", c.MountFiles},
		stringValue("ramdisk", c.Ramdisk),
		stringValue("log-level", c.LogLevel),
		boolValue("frame-logging", c.FrameLogging),
		boolValue("serial-logging", c.SerialLogging),
		uintValue("min-width", c.MinWidth),
		uintValue("min-height", c.MinHeight),
		{"args", c.Args},
	}
}

// apply sets all flags the config has a value for, unless the flag was given
// on the command line.
func (c *projectConfig) apply(flags *pflag.FlagSet) error {
	for _, fv := range c.settings() {
		if len(fv.values) == 0 || flags.Changed(fv.name) {
			continue
		}

		for _, value := range fv.values {
			err := flags.Set(fv.name, value)
			if err != nil {
				return fmt.Errorf("%s: %w", fv.name, err)
			}
		}
	}

	return nil
}

// loadProjectConfig reads the given config file. If path is empty, the
// default project config files are tried and it is not an error if none
// exists. A nil config is returned if no file was read.
func loadProjectConfig(fsys afero.Fs, path string) (*projectConfig, error) {
	if path != "" {
		return readProjectConfig(fsys, path)
	}

	for _, name := range projectConfigFiles {
		cfg, err := readProjectConfig(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		return cfg, err
	}

	return nil, nil
}

func readProjectConfig(fsys afero.Fs, path string) (*projectConfig, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	var cfg projectConfig

	switch ext := filepath.Ext(path); ext {
	case ".toml":
		err = decodeTOML(file, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(file, &cfg)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Project config file loaded", slog.String("path", path))

	return &cfg, nil
}

func decodeTOML(r io.Reader, cfg *projectConfig) error {
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, undecoded[0])
	}

	return nil
}

func decodeYAML(r io.Reader, cfg *projectConfig) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}
