// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"reflect"
	"testing"
)

func TestGroupState(t *testing.T) {
	group := NewKeySet("a", "b", "c")

	tests := []struct {
		name         string
		selected     KeySet
		expectedAll  bool
		expectedSome bool
	}{
		{"nothing selected", NewKeySet(), false, false},
		{"partial", NewKeySet("a", "b"), false, true},
		{"full", NewKeySet("a", "b", "c"), true, true},
		{"full plus extras", NewKeySet("a", "b", "c", "z"), true, true},
		{"disjoint", NewKeySet("x", "y"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all, some := GroupState(group, tt.selected)
			if all != tt.expectedAll || some != tt.expectedSome {
				t.Errorf("GroupState = (%v, %v), expected (%v, %v)", all, some, tt.expectedAll, tt.expectedSome)
			}
		})
	}
}

func TestToggleGroup_PartialEscalatesToFull(t *testing.T) {
	group := NewKeySet("a", "b", "c")
	selected := NewKeySet("a", "b")

	got := ToggleGroup(group, selected)
	if !reflect.DeepEqual(got.Keys(), []string{"a", "b", "c"}) {
		t.Errorf("expected {a b c}, got %v", got.Keys())
	}
}

func TestToggleGroup_FullClears(t *testing.T) {
	group := NewKeySet("a", "b", "c")
	selected := NewKeySet("a", "b", "c")

	got := ToggleGroup(group, selected)
	if len(got) != 0 {
		t.Errorf("expected empty selection, got %v", got.Keys())
	}
}

func TestToggleGroup_KeepsKeysOutsideGroup(t *testing.T) {
	group := NewKeySet("a", "b")
	selected := NewKeySet("a", "b", "z")

	got := ToggleGroup(group, selected)
	if !reflect.DeepEqual(got.Keys(), []string{"z"}) {
		t.Errorf("expected {z}, got %v", got.Keys())
	}
}

func TestToggleGroup_DoesNotMutateInput(t *testing.T) {
	group := NewKeySet("a", "b")
	selected := NewKeySet("a")

	_ = ToggleGroup(group, selected)
	if !reflect.DeepEqual(selected.Keys(), []string{"a"}) {
		t.Errorf("input selection mutated: %v", selected.Keys())
	}
}

func TestToggleKey(t *testing.T) {
	selected := NewKeySet("a")

	got := ToggleKey(selected, "b")
	if !reflect.DeepEqual(got.Keys(), []string{"a", "b"}) {
		t.Errorf("expected {a b}, got %v", got.Keys())
	}

	got = ToggleKey(got, "a")
	if !reflect.DeepEqual(got.Keys(), []string{"b"}) {
		t.Errorf("expected {b}, got %v", got.Keys())
	}
}
