// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"errors"
)

// Sentinel errors for directory operations. Raw transport and status errors
// are mapped onto these at the client boundary; nothing above this package
// sees an unmapped transport error.
var (
	// ErrTransient covers timeouts, connection failures and 5xx answers.
	// Callers retry these up to their bounded budget, then surface them.
	ErrTransient = errors.New("transient directory error")

	// ErrUnauthenticated means the directory rejected the caller's
	// credential (or none was sent).
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrInviteInvalid covers not-found, expired and cancelled invitation
	// codes. Terminal, never retried.
	ErrInviteInvalid = errors.New("invitation invalid")

	// ErrEmailMismatch means the authenticated identity is not the invited
	// email. The caller should re-authenticate, not show a bare error.
	ErrEmailMismatch = errors.New("authenticated identity does not match invited email")

	// ErrAlreadyMember is the idempotent re-accept outcome. Informational,
	// not fatal.
	ErrAlreadyMember = errors.New("already a member of the organization")
)

// Category buckets an error for user-facing handling.
type Category string

const (
	CategoryNone            Category = ""
	CategoryTransient       Category = "transient"
	CategoryUnauthenticated Category = "unauthenticated"
	CategoryInviteInvalid   Category = "invite_invalid"
	CategoryEmailMismatch   Category = "invite_email_mismatch"
	CategoryAlreadyMember   Category = "invite_already_member"
)

// Categorize maps an error onto its user-facing category. Unrecognized
// errors bucket as transient so that nothing reaches the surface unmapped.
func Categorize(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, ErrUnauthenticated):
		return CategoryUnauthenticated
	case errors.Is(err, ErrInviteInvalid):
		return CategoryInviteInvalid
	case errors.Is(err, ErrEmailMismatch):
		return CategoryEmailMismatch
	case errors.Is(err, ErrAlreadyMember):
		return CategoryAlreadyMember
	default:
		return CategoryTransient
	}
}
