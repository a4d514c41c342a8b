// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/version"
)

type API struct {
	logger logging.LoggerInterface
}

type statusResponse struct {
	Status    string `json:"status"`
	BuildInfo string `json:"buildInfo"`
}

func NewAPI(logger logging.LoggerInterface) *API {
	return &API{logger: logger}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(statusResponse{
		Status:    "ok",
		BuildInfo: version.Version,
	})
	if err != nil {
		a.logger.Errorf("failed to encode status: %v", err)
	}
}
