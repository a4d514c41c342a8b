// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/orgboard/session-service/internal/types"
)

// DirectoryInterface is the slice of the directory client the session
// bootstrap needs.
type DirectoryInterface interface {
	GetCurrentSession(ctx context.Context) (*types.CurrentSession, error)
	ListMemberModules(ctx context.Context, organizationID string) ([]string, error)
}

// SessionInterface is the read/refresh surface consumers get. Only the
// manager's own transitions mutate the resolved organization/role/allow-list
// triple; Refetch is the single externally triggerable mutation entry point.
type SessionInterface interface {
	Snapshot() Snapshot
	HasModuleAccess(moduleKey string) bool
	Refetch(ctx context.Context) error
}
