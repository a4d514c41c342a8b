// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/orgboard/session-service/internal/config"
	"github.com/orgboard/session-service/internal/directory"
	"github.com/orgboard/session-service/internal/hint"
	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/monitoring/prometheus"
	"github.com/orgboard/session-service/internal/tracing"
	"github.com/orgboard/session-service/pkg/authentication"
	"github.com/orgboard/session-service/pkg/catalog"
	"github.com/orgboard/session-service/pkg/invite"
	"github.com/orgboard/session-service/pkg/session"
	"github.com/orgboard/session-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("session-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	directoryClient, err := directory.NewClient(
		specs.DirectoryAPIURL,
		specs.DirectoryAPIKey,
		specs.DirectoryTimeout,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create directory client: %v", err)
	}

	sessions := session.NewManager(
		directoryClient,
		session.Config{
			Retries:       specs.BootstrapRetries,
			RetryDelay:    specs.BootstrapRetryDelay,
			RetryMaxDelay: specs.BootstrapRetryMaxDelay,
		},
		tracer,
		monitor,
		logger,
	)
	defer sessions.Close()

	// Kick off the bootstrap so the session is warm before the first
	// dashboard request. Consumers see the resolving state until it lands.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := sessions.Resolve(ctx); err != nil && !errors.Is(err, session.ErrNoOrganization) {
			logger.Warnf("initial session bootstrap failed: %v", err)
		}
	}()

	var verifier authentication.TokenVerifierInterface
	if specs.OIDCIssuer != "" {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT authentication: %v", err)
		}
	} else {
		logger.Warn("JWT verification is disabled, using noop verifier")
		verifier = authentication.NewNoopVerifier()
	}

	inviteConfig := invite.Config{
		LoginURL:      specs.LoginURL,
		RedirectDelay: specs.LoginRedirectDelay,
	}
	if specs.OAuthClientID != "" && specs.OIDCIssuer != "" {
		provider, err := authentication.NewProvider(context.Background(), specs.OIDCIssuer)
		if err != nil {
			return fmt.Errorf("failed to discover OAuth endpoints: %v", err)
		}
		inviteConfig.OAuth = &oauth2.Config{
			ClientID:    specs.OAuthClientID,
			Endpoint:    provider.Endpoint(),
			RedirectURL: specs.LoginURL,
		}
	}

	hints := hint.NewStore(specs.CookieSecret, specs.CookieName, logger)
	invites := invite.NewService(directoryClient, sessions, inviteConfig, tracer, monitor, logger)
	modules := catalog.NewService(directoryClient, specs.CatalogTTL, tracer, monitor, logger)

	router := web.NewRouter(
		sessions,
		invites,
		modules,
		hints,
		verifier,
		specs.HomeRoute,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
