// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"sort"
)

// KeySet is a set of module keys. Callers own their sets; the toggle
// operations below never mutate their inputs.
type KeySet map[string]struct{}

func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

func (s KeySet) Clone() KeySet {
	out := make(KeySet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Keys returns the members in sorted order.
func (s KeySet) Keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// GroupState reports whether a group of keys is fully and/or partially
// selected. someSelected drives the indeterminate checkbox rendering only;
// the toggle rule below depends on allSelected alone.
func GroupState(group, selected KeySet) (allSelected, someSelected bool) {
	allSelected = len(group) > 0
	for k := range group {
		if selected.Contains(k) {
			someSelected = true
		} else {
			allSelected = false
		}
	}
	return allSelected, someSelected
}

// ToggleGroup returns the selection after toggling a whole group: a fully
// selected group is removed, anything else is filled in. A partially
// selected group therefore always escalates to fully selected, never to
// empty. The asymmetry is the shipped behavior of every module picker in
// the dashboard; keep it unless product decides otherwise.
func ToggleGroup(group, selected KeySet) KeySet {
	out := selected.Clone()

	allSelected, _ := GroupState(group, selected)
	if allSelected {
		for k := range group {
			delete(out, k)
		}
		return out
	}

	for k := range group {
		out[k] = struct{}{}
	}
	return out
}

// ToggleKey returns the selection after toggling a single key, independent
// of any group bookkeeping.
func ToggleKey(selected KeySet, key string) KeySet {
	out := selected.Clone()
	if out.Contains(key) {
		delete(out, key)
	} else {
		out[key] = struct{}{}
	}
	return out
}
