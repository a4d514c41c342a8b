// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Identity is the authenticated dashboard caller.
type Identity struct {
	Subject string
	Email   string
}

// Define private custom types to avoid collisions
type identityContextKey struct{}
type tokenContextKey struct{}

// WithIdentity returns a new context carrying the authenticated identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// GetIdentity retrieves the authenticated identity from the context.
// Returns nil and false if no identity is present.
func GetIdentity(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(*Identity)
	return id, ok
}

// WithToken returns a new context carrying the caller's raw bearer token, so
// that outbound directory calls can forward it.
func WithToken(ctx context.Context, rawToken string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, rawToken)
}

// TokenFromContext retrieves the raw bearer token from the context.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok
}
