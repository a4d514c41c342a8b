// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/orgboard/session-service/internal/directory"
	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/monitoring"
	"github.com/orgboard/session-service/internal/tracing"
	"github.com/orgboard/session-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package catalog -destination ./mock_catalog.go -source=./interfaces.go

func newTestService(d DirectoryInterface, ttl time.Duration) *Service {
	return NewService(d, ttl, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func testCatalog() []types.ModuleCatalogEntry {
	return []types.ModuleCatalogEntry{
		{Key: "orders", Name: "Orders", Group: "Commerce"},
		{Key: "billing", Name: "Billing", Group: "Commerce"},
		{Key: "jira-metrics", Name: "Jira Metrics", Group: "Engineering"},
	}
}

func TestService_Entries_CachesWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockDirectory.EXPECT().GetModuleCatalog(gomock.Any()).Return(testCatalog(), nil).Times(1)

	s := newTestService(mockDirectory, 5*time.Minute)

	for i := 0; i < 3; i++ {
		entries, err := s.Entries(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
	}
}

func TestService_Entries_RefetchesPastTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockDirectory.EXPECT().GetModuleCatalog(gomock.Any()).Return(testCatalog(), nil).Times(2)

	// Zero TTL: every read is past the deadline.
	s := newTestService(mockDirectory, 0)

	for i := 0; i < 2; i++ {
		if _, err := s.Entries(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
}

func TestService_Entries_ServesStaleOnFailedRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := NewMockDirectoryInterface(ctrl)
	first := mockDirectory.EXPECT().GetModuleCatalog(gomock.Any()).Return(testCatalog(), nil)
	mockDirectory.EXPECT().GetModuleCatalog(gomock.Any()).Return(nil, directory.ErrTransient).After(first)

	s := newTestService(mockDirectory, 0)

	if _, err := s.Entries(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	entries, err := s.Entries(context.Background())
	if err != nil {
		t.Fatalf("expected the stale copy, got %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected the stale copy to carry 3 entries, got %d", len(entries))
	}
}

func TestService_Entries_ColdCacheFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockDirectory.EXPECT().GetModuleCatalog(gomock.Any()).Return(nil, directory.ErrTransient)

	if _, err := newTestService(mockDirectory, time.Minute).Entries(context.Background()); !errors.Is(err, directory.ErrTransient) {
		t.Fatalf("expected transient error, got %v", err)
	}
}

func TestService_Groups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockDirectory.EXPECT().GetModuleCatalog(gomock.Any()).Return(testCatalog(), nil)

	groups, err := newTestService(mockDirectory, time.Minute).Groups(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "Commerce" || len(groups[0].Modules) != 2 {
		t.Errorf("expected Commerce first with 2 modules, got %+v", groups[0])
	}
	if groups[1].Name != "Engineering" || len(groups[1].Modules) != 1 {
		t.Errorf("expected Engineering with 1 module, got %+v", groups[1])
	}
}

func TestService_Contains(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockDirectory.EXPECT().GetModuleCatalog(gomock.Any()).Return(testCatalog(), nil)

	s := newTestService(mockDirectory, time.Minute)

	if ok, err := s.Contains(context.Background(), "orders"); err != nil || !ok {
		t.Errorf("expected orders in the catalog, got %v %v", ok, err)
	}
	if ok, err := s.Contains(context.Background(), "retired-module"); err != nil || ok {
		t.Errorf("expected retired-module to be absent, got %v %v", ok, err)
	}
}
