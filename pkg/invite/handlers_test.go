// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package invite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/orgboard/session-service/internal/directory"
	"github.com/orgboard/session-service/internal/hint"
	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/types"
)

func newTestAPI(service ServiceInterface) http.Handler {
	mux := chi.NewMux()
	api := NewAPI(service, hint.NewStore("test-secret", "orgboard_session_hint", logging.NewNoopLogger()), logging.NewNoopLogger())
	api.RegisterEndpoints(mux)
	return mux
}

func markedRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()

	hints := hint.NewStore("test-secret", "orgboard_session_hint", logging.NewNoopLogger())
	w := httptest.NewRecorder()
	if err := hints.Mark(w, httptest.NewRequest(http.MethodPost, "/", nil)); err != nil {
		t.Fatalf("failed to mark: %v", err)
	}

	r := httptest.NewRequest(method, target, nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func hasHintCookie(w *httptest.ResponseRecorder) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name == "orgboard_session_hint" && c.MaxAge >= 0 {
			return true
		}
	}
	return false
}

func TestAPI_Verify(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validate       func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "new account branch",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Verify(gomock.Any(), "inv-1").Return(&Verification{
					Branch: BranchNewAccount,
					Invite: pendingInvite(false),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var v Verification
				if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if v.Branch != BranchNewAccount {
					t.Errorf("expected new_account, got %q", v.Branch)
				}
				if hasHintCookie(w) {
					t.Error("expected no hint cookie before anything was accepted")
				}
			},
		},
		{
			name: "invalid code answers 410",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Verify(gomock.Any(), "inv-1").Return(&Verification{Branch: BranchInvalid}, nil)
			},
			expectedStatus: http.StatusGone,
		},
		{
			name: "email mismatch answers 401 with a login link",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Verify(gomock.Any(), "inv-1").Return(&Verification{
					Branch:        BranchExistingLoggedOut,
					EmailMismatch: true,
					LoginURL:      "/login?return_to=%2Finvites%2Finv-1",
				}, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				if !strings.Contains(w.Body.String(), "login_url") {
					t.Errorf("expected a login link in %q", w.Body.String())
				}
			},
		},
		{
			name: "auto-accept sets the returning-member hint",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Verify(gomock.Any(), "inv-1").Return(&Verification{
					Branch:   BranchExistingLoggedIn,
					Invite:   pendingInvite(true),
					Accepted: &directory.AcceptResult{Organization: types.Organization{Name: "Acme"}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				if !hasHintCookie(w) {
					t.Error("expected the hint cookie on auto-accept")
				}
			},
		},
		{
			name: "transient failure answers 502",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Verify(gomock.Any(), "inv-1").Return(nil, directory.ErrTransient)
			},
			expectedStatus: http.StatusBadGateway,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				if !strings.Contains(w.Body.String(), string(directory.CategoryTransient)) {
					t.Errorf("expected the transient category in %q", w.Body.String())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			w := httptest.NewRecorder()
			newTestAPI(mockService).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/invites/inv-1", nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.validate != nil {
				tt.validate(t, w)
			}
		})
	}
}

func TestAPI_Verify_SurfacesReturningClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().Verify(gomock.Any(), "inv-1").Return(&Verification{
		Branch: BranchNewAccount,
		Invite: pendingInvite(false),
	}, nil)

	w := httptest.NewRecorder()
	newTestAPI(mockService).ServeHTTP(w, markedRequest(t, http.MethodGet, "/api/v0/invites/inv-1"))

	var v Verification
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !v.ReturningClient {
		t.Error("expected the marker to surface on the verification payload")
	}
}

func TestAPI_Verify_MismatchClearsHint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().Verify(gomock.Any(), "inv-1").Return(&Verification{
		Branch:        BranchExistingLoggedOut,
		EmailMismatch: true,
		LoginURL:      "/login?return_to=%2Finvites%2Finv-1",
	}, nil)

	w := httptest.NewRecorder()
	newTestAPI(mockService).ServeHTTP(w, markedRequest(t, http.MethodGet, "/api/v0/invites/inv-1"))

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "orgboard_session_hint" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the mismatch to clear the marker")
	}
}

func TestAPI_Accept(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validate       func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "account creation",
			body: `{"password": "hunter22", "confirm_password": "hunter22"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					Accept(gomock.Any(), "inv-1", &Credentials{Password: "hunter22", Confirm: "hunter22"}).
					Return(&directory.AcceptResult{
						Organization:   types.Organization{ID: "org-1", Name: "Acme"},
						AccountCreated: true,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				if !hasHintCookie(w) {
					t.Error("expected the hint cookie after accepting")
				}
			},
		},
		{
			name: "authenticated accept sends no credentials",
			body: "",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					Accept(gomock.Any(), "inv-1", gomock.Nil()).
					Return(&directory.AcceptResult{Organization: types.Organization{Name: "Acme"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "rejected credentials answer 400",
			body: `{"password": "12345", "confirm_password": "12345"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					Accept(gomock.Any(), "inv-1", gomock.Any()).
					Return(nil, ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body never reaches the service",
			body:           `{"password": `,
			setupMocks:     func(mockService *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid code answers 410",
			body: "",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Accept(gomock.Any(), "inv-1", gomock.Nil()).Return(nil, directory.ErrInviteInvalid)
			},
			expectedStatus: http.StatusGone,
		},
		{
			name: "unauthenticated accept answers 401 with a login link",
			body: "",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Accept(gomock.Any(), "inv-1", gomock.Nil()).Return(nil, directory.ErrUnauthenticated)
				mockService.EXPECT().LoginLink("inv-1").Return("/login?return_to=%2Finvites%2Finv-1")
			},
			expectedStatus: http.StatusUnauthorized,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				if !strings.Contains(w.Body.String(), "login_url") {
					t.Errorf("expected a login link in %q", w.Body.String())
				}
			},
		},
		{
			name: "already a member is informational",
			body: "",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Accept(gomock.Any(), "inv-1", gomock.Nil()).Return(nil, directory.ErrAlreadyMember)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				if !strings.Contains(w.Body.String(), string(directory.CategoryAlreadyMember)) {
					t.Errorf("expected the already-member category in %q", w.Body.String())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v0/invites/inv-1/accept", strings.NewReader(tt.body))
			newTestAPI(mockService).ServeHTTP(w, r)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.validate != nil {
				tt.validate(t, w)
			}
		})
	}
}
