// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

// Package catalog serves the dashboard's module catalog: the full list of
// feature modules and their display groups. The catalog changes rarely, so
// it is cached with a TTL and served stale when a refresh fails.
package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/monitoring"
	"github.com/orgboard/session-service/internal/tracing"
	"github.com/orgboard/session-service/internal/types"
)

// Group is a named display group with its modules in catalog order.
type Group struct {
	Name    string                     `json:"name"`
	Modules []types.ModuleCatalogEntry `json:"modules"`
}

type Service struct {
	directory DirectoryInterface
	ttl       time.Duration

	mu        sync.Mutex
	entries   []types.ModuleCatalogEntry
	fetchedAt time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	directory DirectoryInterface,
	ttl time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		directory: directory,
		ttl:       ttl,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// Entries returns the catalog, fetching it when the cache is cold or past
// its TTL. A failed refresh falls back to the stale copy: a slightly old
// catalog beats an empty dashboard.
func (s *Service) Entries(ctx context.Context) ([]types.ModuleCatalogEntry, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.Service.Entries")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries != nil && time.Since(s.fetchedAt) < s.ttl {
		return s.entries, nil
	}

	entries, err := s.directory.GetModuleCatalog(ctx)
	if err != nil {
		if s.entries != nil {
			s.logger.Warnf("catalog refresh failed, serving stale copy: %v", err)
			return s.entries, nil
		}
		return nil, err
	}

	s.entries = entries
	s.fetchedAt = time.Now()
	return entries, nil
}

// Groups returns the catalog folded into display groups, in first-seen
// catalog order.
func (s *Service) Groups(ctx context.Context) ([]Group, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}

	var groups []Group
	index := map[string]int{}
	for _, entry := range entries {
		i, ok := index[entry.Group]
		if !ok {
			i = len(groups)
			index[entry.Group] = i
			groups = append(groups, Group{Name: entry.Group})
		}
		groups[i].Modules = append(groups[i].Modules, entry)
	}

	return groups, nil
}

// Contains reports whether the key names a current catalog module. Allow-list
// entries for retired modules answer false here and are otherwise harmless.
func (s *Service) Contains(ctx context.Context, moduleKey string) (bool, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return false, err
	}

	for _, entry := range entries {
		if entry.Key == moduleKey {
			return true, nil
		}
	}
	return false, nil
}
