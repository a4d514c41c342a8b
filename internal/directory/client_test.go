// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/monitoring"
	"github.com/orgboard/session-service/internal/tracing"
	"github.com/orgboard/session-service/internal/types"
	"github.com/orgboard/session-service/pkg/authentication"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, "", 5*time.Second, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return c, srv
}

func TestClient_GetCurrentSession(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/session" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"logged_in":true,"organization":{"id":"org-1","name":"Acme","plan":"business","member_limit":25,"member_count":7},"role":"member"}`))
	}))

	session, err := c.GetCurrentSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.LoggedIn {
		t.Error("expected logged in session")
	}
	if session.Organization == nil || session.Organization.Name != "Acme" {
		t.Errorf("unexpected organization: %+v", session.Organization)
	}
	if session.Role != types.RoleMember {
		t.Errorf("expected member role, got %q", session.Role)
	}
}

func TestClient_GetCurrentSession_NullOrganization(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"logged_in":true,"organization":null,"role":""}`))
	}))

	session, err := c.GetCurrentSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Organization != nil {
		t.Errorf("expected nil organization, got %+v", session.Organization)
	}
}

func TestClient_ServerErrorIsTransient(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.GetCurrentSession(context.Background())
	if !errors.Is(err, ErrTransient) {
		t.Errorf("expected ErrTransient, got %v", err)
	}
	if Categorize(err) != CategoryTransient {
		t.Errorf("expected transient category, got %q", Categorize(err))
	}
}

func TestClient_ListMemberModules(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/organizations/org-1/my-modules" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"role":"member","modules":["jira-metrics","orders"]}`))
	}))

	modules, err := c.ListMemberModules(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modules) != 2 || modules[0] != "jira-metrics" {
		t.Errorf("unexpected modules: %v", modules)
	}
}

func TestClient_GetInvite(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectedErr error
	}{
		{
			name:   "valid invite",
			status: http.StatusOK,
			body:   `{"valid":true,"email":"a@b.com","organization_name":"Acme","role":"member","modules":["orders"],"email_has_account":true}`,
		},
		{
			name:        "valid=false answer",
			status:      http.StatusOK,
			body:        `{"valid":false}`,
			expectedErr: ErrInviteInvalid,
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{"error":"not found"}`,
			expectedErr: ErrInviteInvalid,
		},
		{
			name:        "expired",
			status:      http.StatusGone,
			body:        `{"error":"expired"}`,
			expectedErr: ErrInviteInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			invite, err := c.GetInvite(context.Background(), "code-1")
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invite.Email != "a@b.com" || !invite.EmailHasAccount {
				t.Errorf("unexpected invite: %+v", invite)
			}
		})
	}
}

func TestClient_AcceptInvite_StatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		expectedErr error
	}{
		{name: "unauthenticated", status: http.StatusUnauthorized, expectedErr: ErrUnauthenticated},
		{name: "email mismatch", status: http.StatusForbidden, expectedErr: ErrEmailMismatch},
		{name: "already member", status: http.StatusConflict, expectedErr: ErrAlreadyMember},
		{name: "invalid", status: http.StatusGone, expectedErr: ErrInviteInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := c.AcceptInvite(context.Background(), "code-1", "")
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestClient_AcceptInvite_ForwardsBearerToken(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"organization":{"id":"org-1","name":"Acme"},"account_created":false}`))
	}))

	ctx := authentication.WithToken(context.Background(), "caller-token")
	result, err := c.AcceptInvite(ctx, "code-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer caller-token" {
		t.Errorf("expected forwarded bearer token, got %q", gotAuth)
	}
	if result.Organization.ID != "org-1" {
		t.Errorf("unexpected organization: %+v", result.Organization)
	}
}
