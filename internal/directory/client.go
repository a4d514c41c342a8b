// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/monitoring"
	"github.com/orgboard/session-service/internal/tracing"
	"github.com/orgboard/session-service/internal/types"
	"github.com/orgboard/session-service/pkg/authentication"
)

type ClientInterface interface {
	GetCurrentSession(ctx context.Context) (*types.CurrentSession, error)
	ListMemberModules(ctx context.Context, organizationID string) ([]string, error)
	GetModuleCatalog(ctx context.Context) ([]types.ModuleCatalogEntry, error)
	GetInvite(ctx context.Context, code string) (*InviteDetails, error)
	AcceptInvite(ctx context.Context, code, password string) (*AcceptResult, error)
}

// InviteDetails is the directory's view of a pending invitation, as returned
// by the code lookup. An invalid, expired or cancelled code never reaches
// this type; it surfaces as ErrInviteInvalid instead.
type InviteDetails struct {
	Email            string     `json:"email"`
	OrganizationName string     `json:"organization_name"`
	Role             types.Role `json:"role"`
	Modules          []string   `json:"modules,omitempty"`
	EmailHasAccount  bool       `json:"email_has_account"`
}

type AcceptResult struct {
	Organization   types.Organization `json:"organization"`
	AccountCreated bool               `json:"account_created"`
}

var _ ClientInterface = (*Client)(nil)

type Client struct {
	baseURL *url.URL
	apiKey  string
	hc      *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(baseURL, apiKey string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid directory API URL: %w", err)
	}

	return &Client{
		baseURL: u,
		apiKey:  apiKey,
		hc: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

func (c *Client) GetCurrentSession(ctx context.Context) (*types.CurrentSession, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.GetCurrentSession")
	defer span.End()

	var session types.CurrentSession
	if err := c.do(ctx, http.MethodGet, "/v1/session", nil, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *Client) ListMemberModules(ctx context.Context, organizationID string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.ListMemberModules")
	defer span.End()

	var payload struct {
		Role    types.Role `json:"role"`
		Modules []string   `json:"modules"`
	}
	path := fmt.Sprintf("/v1/organizations/%s/my-modules", url.PathEscape(organizationID))
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	return payload.Modules, nil
}

func (c *Client) GetModuleCatalog(ctx context.Context) ([]types.ModuleCatalogEntry, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.GetModuleCatalog")
	defer span.End()

	var payload struct {
		Modules []types.ModuleCatalogEntry `json:"modules"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/modules", nil, &payload); err != nil {
		return nil, err
	}

	return payload.Modules, nil
}

func (c *Client) GetInvite(ctx context.Context, code string) (*InviteDetails, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.GetInvite")
	defer span.End()

	var payload struct {
		Valid bool `json:"valid"`
		InviteDetails
	}
	path := fmt.Sprintf("/v1/invites/%s", url.PathEscape(code))
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	// Some directory versions answer 200 with valid=false instead of 410.
	if !payload.Valid {
		return nil, ErrInviteInvalid
	}

	return &payload.InviteDetails, nil
}

func (c *Client) AcceptInvite(ctx context.Context, code, password string) (*AcceptResult, error) {
	ctx, span := c.tracer.Start(ctx, "directory.Client.AcceptInvite")
	defer span.End()

	var body interface{}
	if password != "" {
		body = map[string]string{"password": password}
	}

	var result AcceptResult
	path := fmt.Sprintf("/v1/invites/%s/accept", url.PathEscape(code))
	if err := c.do(ctx, http.MethodPost, path, body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	// Forward the dashboard caller's credential when present.
	if token, ok := authentication.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Debugf("directory request %s %s failed: %v", method, path, err)
		c.setAvailability(0)
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	defer resp.Body.Close()

	if err := c.statusError(resp.StatusCode); err != nil {
		return err
	}
	c.setAvailability(1)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", ErrTransient, err)
	}

	return nil
}

// statusError maps a non-2xx directory answer onto the error taxonomy.
func (c *Client) statusError(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return ErrUnauthenticated
	case status == http.StatusForbidden:
		return ErrEmailMismatch
	case status == http.StatusNotFound, status == http.StatusGone, status == http.StatusUnprocessableEntity:
		return ErrInviteInvalid
	case status == http.StatusConflict:
		return ErrAlreadyMember
	default:
		return fmt.Errorf("%w: directory answered %d", ErrTransient, status)
	}
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "directory"}, v); err != nil {
		c.logger.Errorf("failed to set dependency availability: %v", err)
	}
}
