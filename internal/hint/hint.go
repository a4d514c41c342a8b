// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

// Package hint persists a small per-browser marker recording that the caller
// has joined an organization before. The marker is advisory: access decisions
// never read it, the dashboard only uses it to pick a friendlier first screen.
package hint

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/orgboard/session-service/internal/logging"
)

const (
	seenKey     = "seen"
	clientIDKey = "client_id"
)

type StoreInterface interface {
	Mark(w http.ResponseWriter, r *http.Request) error
	Seen(r *http.Request) bool
	Clear(w http.ResponseWriter, r *http.Request) error
}

type Store struct {
	cookies *sessions.CookieStore
	name    string

	logger logging.LoggerInterface
}

var _ StoreInterface = (*Store)(nil)

func NewStore(secret, cookieName string, logger logging.LoggerInterface) *Store {
	cookies := sessions.NewCookieStore([]byte(secret))
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Store{
		cookies: cookies,
		name:    cookieName,
		logger:  logger,
	}
}

// Mark records that this browser completed an invitation at least once. The
// client id is minted on first write and kept stable afterwards.
func (s *Store) Mark(w http.ResponseWriter, r *http.Request) error {
	session, err := s.cookies.Get(r, s.name)
	if err != nil {
		// A cookie signed with a rotated secret decodes to a fresh session,
		// which is exactly what we want here.
		s.logger.Debugf("discarding undecodable hint cookie: %v", err)
	}

	session.Values[seenKey] = true
	if _, ok := session.Values[clientIDKey].(string); !ok {
		session.Values[clientIDKey] = uuid.NewString()
	}

	return s.cookies.Save(r, w, session)
}

// Seen reports whether this browser carries the marker.
func (s *Store) Seen(r *http.Request) bool {
	session, err := s.cookies.Get(r, s.name)
	if err != nil {
		return false
	}

	seen, _ := session.Values[seenKey].(bool)
	return seen
}

func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	session, err := s.cookies.Get(r, s.name)
	if err != nil {
		s.logger.Debugf("discarding undecodable hint cookie: %v", err)
	}

	session.Options.MaxAge = -1
	return s.cookies.Save(r, w, session)
}
