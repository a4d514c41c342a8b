// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orgboard/session-service/internal/directory"
	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/monitoring"
	"github.com/orgboard/session-service/internal/tracing"
	"github.com/orgboard/session-service/internal/types"
)

type API struct {
	session SessionInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	session SessionInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		session: session,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/session", a.getSession)
	mux.Post("/api/v0/session/refresh", a.refreshSession)
}

type snapshotResponse struct {
	State          State               `json:"state"`
	Organization   *types.Organization `json:"organization"`
	Role           types.Role          `json:"role,omitempty"`
	IsOwner        bool                `json:"is_owner"`
	IsAdmin        bool                `json:"is_admin"`
	IsMember       bool                `json:"is_member"`
	Loading        bool                `json:"loading"`
	LoadingModules bool                `json:"loading_modules"`
}

func (a *API) getSession(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "session.API.getSession")
	defer span.End()

	a.writeSnapshot(w, http.StatusOK, a.session.Snapshot())
}

func (a *API) refreshSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.refreshSession")
	defer span.End()

	if err := a.session.Refetch(ctx); err != nil && !errors.Is(err, ErrNoOrganization) {
		a.logger.Errorf("session refresh failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"code": string(directory.CategoryTransient),
		}); err != nil {
			a.logger.Errorf("failed to encode refresh error: %v", err)
		}
		return
	}

	// The no-organization outcome is the empty state, not an error.
	a.writeSnapshot(w, http.StatusOK, a.session.Snapshot())
}

func (a *API) writeSnapshot(w http.ResponseWriter, status int, s Snapshot) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(snapshotResponse{
		State:          s.State,
		Organization:   s.Organization,
		Role:           s.Role,
		IsOwner:        s.IsOwner,
		IsAdmin:        s.IsAdmin,
		IsMember:       s.IsMember,
		Loading:        s.Loading,
		LoadingModules: s.LoadingModules,
	}); err != nil {
		a.logger.Errorf("failed to encode session snapshot: %v", err)
	}
}
