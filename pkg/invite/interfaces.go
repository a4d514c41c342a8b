// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package invite

import (
	"context"

	"github.com/orgboard/session-service/internal/directory"
)

// DirectoryInterface is the slice of the directory client the invitation
// flow needs.
type DirectoryInterface interface {
	GetInvite(ctx context.Context, code string) (*directory.InviteDetails, error)
	AcceptInvite(ctx context.Context, code, password string) (*directory.AcceptResult, error)
}

// SessionRefresherInterface re-resolves the organization session after an
// accepted invitation changed the caller's memberships.
type SessionRefresherInterface interface {
	Refetch(ctx context.Context) error
}

type ServiceInterface interface {
	Verify(ctx context.Context, code string) (*Verification, error)
	Accept(ctx context.Context, code string, creds *Credentials) (*directory.AcceptResult, error)
	LoginLink(code string) string
}
