// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orgboard/session-service/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/modules", a.listModules)
}

func (a *API) listModules(w http.ResponseWriter, r *http.Request) {
	groups, err := a.service.Groups(r.Context())
	if err != nil {
		a.logger.Errorf("failed to load module catalog: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		if err := json.NewEncoder(w).Encode(map[string]string{"category": "transient"}); err != nil {
			a.logger.Errorf("failed to encode module catalog error: %v", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string][]Group{"groups": groups}); err != nil {
		a.logger.Errorf("failed to encode module catalog: %v", err)
	}
}
