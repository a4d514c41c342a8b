// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/orgboard/session-service/cmd"
)

func main() {
	cmd.Execute()
}
