// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	DirectoryAPIURL  string        `envconfig:"directory_api_url" required:"true"`
	DirectoryAPIKey  string        `envconfig:"directory_api_key"`
	DirectoryTimeout time.Duration `envconfig:"directory_timeout" default:"10s"`

	OIDCIssuer    string `envconfig:"oidc_issuer"`
	JWKSURL       string `envconfig:"jwks_url"`
	OAuthClientID string `envconfig:"oauth_client_id"`
	LoginURL      string `envconfig:"login_url" default:"/login"`

	// Delay the invite flow asks clients to honor before redirecting a
	// logged-out user with an existing account to the login flow.
	LoginRedirectDelay time.Duration `envconfig:"login_redirect_delay" default:"3s"`

	// Bootstrap retry budget: retries after the initial attempt, with
	// jittered exponential backoff between attempts.
	BootstrapRetries       uint          `envconfig:"bootstrap_retries" default:"3"`
	BootstrapRetryDelay    time.Duration `envconfig:"bootstrap_retry_delay" default:"250ms"`
	BootstrapRetryMaxDelay time.Duration `envconfig:"bootstrap_retry_max_delay" default:"5s"`

	CatalogTTL time.Duration `envconfig:"catalog_ttl" default:"5m"`

	CookieSecret string `envconfig:"cookie_secret" required:"true"`
	CookieName   string `envconfig:"cookie_name" default:"orgboard_session_hint"`

	HomeRoute string `envconfig:"home_route" default:"/"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`
}
