// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Role is the organization-scoped privilege level of a membership.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Privileged reports whether the role carries implicit access to every
// module. Owner and admin are the privileged union; member is restricted to
// an explicit allow-list.
func (r Role) Privileged() bool {
	return r == RoleOwner || r == RoleAdmin
}

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// PlanTier is the subscription tier of an organization.
type PlanTier string

const (
	PlanFree       PlanTier = "free"
	PlanStarter    PlanTier = "starter"
	PlanBusiness   PlanTier = "business"
	PlanEnterprise PlanTier = "enterprise"
)

type Organization struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Plan        PlanTier `json:"plan"`
	MemberLimit int      `json:"member_limit"`
	MemberCount int      `json:"member_count"`
}

type Membership struct {
	OrganizationID string    `json:"organization_id"`
	UserID         string    `json:"user_id"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// CurrentSession is the directory API's answer to "who am I and which
// organization is active". A logged-in session may still carry no
// organization; that is the no-organization empty state, not an error.
type CurrentSession struct {
	LoggedIn     bool          `json:"logged_in"`
	Organization *Organization `json:"organization"`
	Role         Role          `json:"role"`
}

// InviteStatus is the lifecycle state of an invitation. Accepted, cancelled
// and expired are terminal.
type InviteStatus string

const (
	InvitePending   InviteStatus = "pending"
	InviteAccepted  InviteStatus = "accepted"
	InviteCancelled InviteStatus = "cancelled"
	InviteExpired   InviteStatus = "expired"
)

// Invite is a one-time, expiring token binding an email to a proposed role
// in an organization. The proposed module list is meaningful only when the
// proposed role is member.
type Invite struct {
	Code      string       `json:"code"`
	Email     string       `json:"email"`
	Role      Role         `json:"role"`
	Modules   []string     `json:"modules,omitempty"`
	Status    InviteStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// ModuleCatalogEntry is one feature-module of the dashboard, grouped into a
// named group. Keys are stable identifiers; display names are not.
type ModuleCatalogEntry struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Group string `json:"group"`
}
