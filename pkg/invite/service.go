// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

// Package invite drives the invitation acceptance lifecycle, from code
// verification through account creation or auto-accept to the session
// refresh that makes the new membership visible.
package invite

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/orgboard/session-service/internal/directory"
	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/monitoring"
	"github.com/orgboard/session-service/internal/tracing"
	"github.com/orgboard/session-service/pkg/authentication"
)

// ErrValidation marks credentials rejected locally, before any directory
// call is made.
var ErrValidation = errors.New("invalid credentials")

// Branch is the outcome of verifying an invitation code. It decides which
// screen the dashboard shows next.
type Branch string

const (
	// BranchExistingLoggedIn: the invited email belongs to the caller's
	// authenticated account; the invitation was accepted in the same step.
	BranchExistingLoggedIn Branch = "existing_logged_in"

	// BranchExistingLoggedOut: the invited email has an account but the
	// caller is not logged in (or is logged in as someone else). The caller
	// is sent to the login flow and returns to the invitation afterwards.
	BranchExistingLoggedOut Branch = "existing_logged_out"

	// BranchNewAccount: the invited email has no account yet; accepting
	// requires choosing a password.
	BranchNewAccount Branch = "new_account"

	// BranchInvalid: the code is unknown, expired or cancelled. Terminal.
	BranchInvalid Branch = "invalid"
)

// Verification is the verified state of an invitation code. Invite is nil on
// the invalid branch; Accepted is set only when verification auto-accepted.
type Verification struct {
	Branch        Branch                   `json:"branch"`
	Invite        *directory.InviteDetails `json:"invite,omitempty"`
	Accepted      *directory.AcceptResult  `json:"accepted,omitempty"`
	AlreadyMember bool                     `json:"already_member,omitempty"`
	EmailMismatch bool                     `json:"email_mismatch,omitempty"`

	// Set on branches that route through the login flow.
	LoginURL            string `json:"login_url,omitempty"`
	RedirectDelayMillis int64  `json:"redirect_delay_ms,omitempty"`

	// ReturningClient mirrors the browser's membership marker, read before
	// the directory round-trip. Presentation only, never a trust input.
	ReturningClient bool `json:"returning_client,omitempty"`
}

// Credentials are the password pair a new account is created with. Both
// checks run locally; a failing pair never reaches the directory.
type Credentials struct {
	Password string `json:"password" validate:"required,min=6"`
	Confirm  string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type Config struct {
	// LoginURL is the dashboard login route, used when no OAuth2 authorize
	// endpoint is configured.
	LoginURL string

	// OAuth, when set, mints login links through the authorize endpoint
	// instead of the plain login route.
	OAuth *oauth2.Config

	// RedirectDelay is how long clients should show the "account exists,
	// taking you to login" notice before following the login link.
	RedirectDelay time.Duration
}

type Service struct {
	directory DirectoryInterface
	session   SessionRefresherInterface
	config    Config

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	directory DirectoryInterface,
	session SessionRefresherInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		directory: directory,
		session:   session,
		config:    config,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// Verify resolves an invitation code into its branch. When the caller is
// already authenticated as the invited email, the invitation is accepted in
// the same step; a mismatched identity flips the flow back to login instead
// of surfacing an error page.
func (s *Service) Verify(ctx context.Context, code string) (*Verification, error) {
	ctx, span := s.tracer.Start(ctx, "invite.Service.Verify")
	defer span.End()

	details, err := s.directory.GetInvite(ctx, code)
	if err != nil {
		if errors.Is(err, directory.ErrInviteInvalid) {
			return &Verification{Branch: BranchInvalid}, nil
		}
		return nil, err
	}

	// Credential creation comes first when the invited email has no account
	// yet, even for an authenticated caller: there is nothing to accept with
	// until a password is chosen.
	if !details.EmailHasAccount {
		return &Verification{Branch: BranchNewAccount, Invite: details}, nil
	}

	if identity, loggedIn := authentication.GetIdentity(ctx); loggedIn {
		return s.autoAccept(ctx, code, details, identity)
	}

	return &Verification{
		Branch:              BranchExistingLoggedOut,
		Invite:              details,
		LoginURL:            s.LoginLink(code),
		RedirectDelayMillis: s.config.RedirectDelay.Milliseconds(),
	}, nil
}

func (s *Service) autoAccept(ctx context.Context, code string, details *directory.InviteDetails, identity *authentication.Identity) (*Verification, error) {
	result, err := s.directory.AcceptInvite(ctx, code, "")
	switch {
	case err == nil:
		s.afterAccept(ctx, details.Email, result.Organization.Name)
		return &Verification{Branch: BranchExistingLoggedIn, Invite: details, Accepted: result}, nil

	case errors.Is(err, directory.ErrAlreadyMember):
		return &Verification{Branch: BranchExistingLoggedIn, Invite: details, AlreadyMember: true}, nil

	case errors.Is(err, directory.ErrEmailMismatch), errors.Is(err, directory.ErrUnauthenticated):
		// Logged in as the wrong account. Route back through login rather
		// than dead-ending the invitation.
		s.logger.Security().AuthzFailure(identity.Subject, "invite:accept")
		return &Verification{
			Branch:              BranchExistingLoggedOut,
			Invite:              details,
			EmailMismatch:       errors.Is(err, directory.ErrEmailMismatch),
			LoginURL:            s.LoginLink(code),
			RedirectDelayMillis: s.config.RedirectDelay.Milliseconds(),
		}, nil

	case errors.Is(err, directory.ErrInviteInvalid):
		return &Verification{Branch: BranchInvalid}, nil

	default:
		return nil, err
	}
}

// Accept finishes the invitation. Credentials are required when the invited
// email has no account yet and must pass local validation before any
// directory call; an authenticated accept passes nil credentials.
func (s *Service) Accept(ctx context.Context, code string, creds *Credentials) (*directory.AcceptResult, error) {
	ctx, span := s.tracer.Start(ctx, "invite.Service.Accept")
	defer span.End()

	var password string
	if creds != nil {
		if err := s.validate.Struct(creds); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		password = creds.Password
	}

	result, err := s.directory.AcceptInvite(ctx, code, password)
	if err != nil {
		return nil, err
	}

	email := ""
	if identity, ok := authentication.GetIdentity(ctx); ok {
		email = identity.Email
	}
	s.afterAccept(ctx, email, result.Organization.Name)

	return result, nil
}

// afterAccept refreshes the organization session so the new membership is
// visible immediately. The accept already succeeded, so a failed refresh is
// logged and retried lazily rather than surfaced.
func (s *Service) afterAccept(ctx context.Context, email, organization string) {
	s.logger.Security().InviteAccepted(email, organization)

	if err := s.session.Refetch(ctx); err != nil {
		s.logger.Warnf("session refresh after invite accept failed: %v", err)
	}
}

// LoginLink mints the login URL that brings the caller back to this
// invitation after authenticating.
func (s *Service) LoginLink(code string) string {
	returnTo := "/invites/" + url.PathEscape(code)

	if s.config.OAuth != nil {
		return s.config.OAuth.AuthCodeURL(uuid.NewString(), oauth2.SetAuthURLParam("return_to", returnTo))
	}

	loginURL := s.config.LoginURL
	sep := "?"
	if strings.Contains(loginURL, "?") {
		sep = "&"
	}
	return loginURL + sep + "return_to=" + url.QueryEscape(returnTo)
}
