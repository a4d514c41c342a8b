// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"github.com/orgboard/session-service/pkg/session"
)

// SessionInterface is the read-only slice of the organization session the
// guard consults. The guard never triggers resolution itself, and it decides
// from one snapshot so a concurrent refetch cannot split the read.
type SessionInterface interface {
	Snapshot() session.Snapshot
}
