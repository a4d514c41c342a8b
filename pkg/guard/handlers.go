// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orgboard/session-service/internal/logging"
)

// API exposes the gate decision as a probe endpoint so the dashboard can ask
// "may I show this module" without mounting a guarded subtree.
type API struct {
	guard  *Guard
	logger logging.LoggerInterface
}

func NewAPI(guard *Guard, logger logging.LoggerInterface) *API {
	return &API{
		guard:  guard,
		logger: logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/access/{key}", a.checkAccess)
}

func (a *API) checkAccess(w http.ResponseWriter, r *http.Request) {
	d := a.guard.Check(chi.URLParam(r, "key"))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(d); err != nil {
		a.logger.Errorf("failed to encode access decision: %v", err)
	}
}
