// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build tools

package tools

import (
	_ "github.com/jstemmer/go-junit-report/v2"
	_ "go.uber.org/mock/mockgen"
	_ "golang.org/x/vuln/cmd/govulncheck"
)
