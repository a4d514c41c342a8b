// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

// Package guard gates module routes on the resolved organization session.
package guard

import (
	"encoding/json"
	"net/http"

	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/monitoring"
	"github.com/orgboard/session-service/internal/tracing"
)

// Decision is the outcome of checking a module key against the session.
// Pending means no access decision has been made yet: the allow-list is
// still resolving and a denial would be premature.
type Decision struct {
	ModuleKey string `json:"module_key"`
	Allowed   bool   `json:"allowed"`
	Pending   bool   `json:"pending"`

	// Set on denials: the active organization's display name and the two
	// escape routes the denial view offers.
	OrganizationName string `json:"organization_name,omitempty"`
	BackRoute        string `json:"back_route,omitempty"`
	HomeRoute        string `json:"home_route,omitempty"`
}

type Guard struct {
	session   SessionInterface
	homeRoute string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGuard(
	session SessionInterface,
	homeRoute string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Guard {
	return &Guard{
		session:   session,
		homeRoute: homeRoute,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// Check decides whether the module key is reachable right now. Pure over a
// single session snapshot: no network calls, no side effects, no second
// read that a concurrent refetch could land between.
func (g *Guard) Check(moduleKey string) Decision {
	s := g.session.Snapshot()

	if s.LoadingModules {
		return Decision{ModuleKey: moduleKey, Pending: true}
	}

	if !s.HasModuleAccess(moduleKey) {
		d := Decision{
			ModuleKey: moduleKey,
			BackRoute: "back",
			HomeRoute: g.homeRoute,
		}
		if s.Organization != nil {
			d.OrganizationName = s.Organization.Name
		}
		return d
	}

	return Decision{ModuleKey: moduleKey, Allowed: true}
}

// RequireModule gates a subtree on a module key: 503 while the decision is
// pending, 403 with the denial payload when refused, pass-through otherwise.
func (g *Guard) RequireModule(moduleKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := g.tracer.Start(r.Context(), "guard.Guard.RequireModule")
			defer span.End()

			d := g.Check(moduleKey)

			switch {
			case d.Pending:
				w.Header().Set("Retry-After", "1")
				g.writeDecision(w, http.StatusServiceUnavailable, d)
			case !d.Allowed:
				g.logger.Debugf("module access denied for %q", moduleKey)
				g.writeDecision(w, http.StatusForbidden, d)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func (g *Guard) writeDecision(w http.ResponseWriter, status int, d Decision) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(d); err != nil {
		g.logger.Errorf("failed to encode guard decision: %v", err)
	}
}
