// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

// Package access holds the pure module-access logic of the dashboard:
// the allow-list resolver and the group selection algebra. Nothing in this
// package performs I/O; resolution state lives in pkg/session.
package access

import (
	"sort"

	"github.com/orgboard/session-service/internal/types"
)

// AllowList is the resolved set of module keys a membership may reach.
// The zero value denies every key, which makes "fetch failed" fail closed
// by construction. The privileged sentinel (AllowAll) grants every key.
type AllowList struct {
	all  bool
	keys map[string]struct{}
}

// AllowAll returns the privileged sentinel: every module key resolves to
// reachable, including keys absent from the catalog.
func AllowAll() AllowList {
	return AllowList{all: true}
}

// AllowKeys returns an allow-list containing exactly the given keys.
func AllowKeys(keys ...string) AllowList {
	l := AllowList{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		l.keys[k] = struct{}{}
	}
	return l
}

// All reports whether this is the privileged sentinel.
func (l AllowList) All() bool {
	return l.all
}

// Contains reports whether the key is reachable through this allow-list.
// Matching is exact: no case folding, no wildcards. Keys that fell out of
// the module catalog simply never match; they are not an error.
func (l AllowList) Contains(key string) bool {
	if l.all {
		return true
	}
	_, ok := l.keys[key]
	return ok
}

// Keys returns the explicit keys in sorted order. Empty for the sentinel.
func (l AllowList) Keys() []string {
	out := make([]string, 0, len(l.keys))
	for k := range l.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// HasModuleAccess decides whether a module key is reachable for the given
// role and resolved allow-list.
//
// Owner and admin (or the AllowAll sentinel) short-circuit to true without
// looking at the key. A member is checked against the allow-list exactly.
// Any other role — including the empty role of an unresolved bootstrap —
// yields false; callers that need to distinguish "denied" from "not yet
// known" must consult the session's loading flags, not this function.
func HasModuleAccess(role types.Role, allowList AllowList, moduleKey string) bool {
	if role.Privileged() || allowList.All() {
		return true
	}
	if role != types.RoleMember {
		return false
	}
	return allowList.Contains(moduleKey)
}
