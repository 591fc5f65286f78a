// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootrun

import (
	"github.com/aibor/bootrun/internal/diskimage"
)

// ComposeBootConfig returns the boot loader configuration for cfg.
func ComposeBootConfig(cfg Config) diskimage.BootConfig {
	return diskimage.BootConfig{
		FrameBuffer: diskimage.FrameBuffer{
			MinimumHeight: cfg.MinHeight,
			MinimumWidth:  cfg.MinWidth,
		},
		LogLevel:           cfg.LogLevel.BootLogLevel(),
		FrameBufferLogging: cfg.FrameLogging,
		SerialLogging:      cfg.SerialLogging,
	}
}
