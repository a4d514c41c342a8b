// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string.
	// Returns the caller's identity if the token is valid, otherwise an error.
	VerifyToken(ctx context.Context, rawToken string) (*Identity, error)
}
