// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package invite

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orgboard/session-service/internal/directory"
	"github.com/orgboard/session-service/internal/hint"
	"github.com/orgboard/session-service/internal/logging"
)

type API struct {
	service ServiceInterface
	hints   hint.StoreInterface
	logger  logging.LoggerInterface
}

type errorResponse struct {
	Category string `json:"category"`
	Message  string `json:"message,omitempty"`
	LoginURL string `json:"login_url,omitempty"`
}

func NewAPI(service ServiceInterface, hints hint.StoreInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		hints:   hints,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/invites/{code}", a.verify)
	mux.Post("/api/v0/invites/{code}/accept", a.accept)
}

func (a *API) verify(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	// Read the marker before the directory round-trip so the dashboard can
	// show the returning-member presentation while verification is in flight.
	seen := a.hints.Seen(r)

	v, err := a.service.Verify(r.Context(), code)
	if err != nil {
		a.writeError(w, code, err)
		return
	}
	v.ReturningClient = seen

	switch {
	case v.Accepted != nil || v.AlreadyMember:
		a.mark(w, r)
	case v.EmailMismatch:
		// The rejected credential disproves the marker; drop it so the next
		// visit does not expect a usable session again.
		a.clear(w, r)
	}

	status := http.StatusOK
	switch {
	case v.Branch == BranchInvalid:
		status = http.StatusGone
	case v.EmailMismatch:
		status = http.StatusUnauthorized
	}

	a.writeJSON(w, status, v)
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	creds, err := a.decodeCredentials(r)
	if err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{
			Category: "validation",
			Message:  "malformed request body",
		})
		return
	}

	result, err := a.service.Accept(r.Context(), code, creds)
	if err != nil {
		a.writeError(w, code, err)
		return
	}

	a.mark(w, r)
	a.writeJSON(w, http.StatusOK, result)
}

// decodeCredentials reads the optional password pair. An empty body means an
// authenticated accept, which needs no credentials.
func (a *API) decodeCredentials(r *http.Request) (*Credentials, error) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	if creds.Password == "" && creds.Confirm == "" {
		return nil, nil
	}
	return &creds, nil
}

func (a *API) writeError(w http.ResponseWriter, code string, err error) {
	resp := errorResponse{Category: string(directory.Categorize(err))}

	var status int
	switch {
	case errors.Is(err, ErrValidation):
		status = http.StatusBadRequest
		resp.Category = "validation"
		resp.Message = "password must be at least 6 characters and both entries must match"

	case errors.Is(err, directory.ErrInviteInvalid):
		status = http.StatusGone

	case errors.Is(err, directory.ErrUnauthenticated), errors.Is(err, directory.ErrEmailMismatch):
		status = http.StatusUnauthorized
		resp.LoginURL = a.service.LoginLink(code)

	case errors.Is(err, directory.ErrAlreadyMember):
		// Idempotent re-accept. Informational, not a failure.
		status = http.StatusOK

	default:
		a.logger.Errorf("invite operation failed: %v", err)
		status = http.StatusBadGateway
	}

	a.writeJSON(w, status, resp)
}

func (a *API) mark(w http.ResponseWriter, r *http.Request) {
	if err := a.hints.Mark(w, r); err != nil {
		a.logger.Errorf("failed to set returning-member hint: %v", err)
	}
}

func (a *API) clear(w http.ResponseWriter, r *http.Request) {
	if err := a.hints.Clear(w, r); err != nil {
		a.logger.Errorf("failed to clear returning-member hint: %v", err)
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode invite response: %v", err)
	}
}
