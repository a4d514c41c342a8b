// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/orgboard/session-service/internal/hint"
	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/monitoring"
	"github.com/orgboard/session-service/internal/tracing"
	"github.com/orgboard/session-service/pkg/authentication"
	"github.com/orgboard/session-service/pkg/catalog"
	"github.com/orgboard/session-service/pkg/guard"
	"github.com/orgboard/session-service/pkg/invite"
	"github.com/orgboard/session-service/pkg/metrics"
	"github.com/orgboard/session-service/pkg/session"
	"github.com/orgboard/session-service/pkg/status"
)

func NewRouter(
	sessions session.SessionInterface,
	invites invite.ServiceInterface,
	modules catalog.ServiceInterface,
	hints hint.StoreInterface,
	verifier authentication.TokenVerifierInterface,
	homeRoute string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		// Identity is optional on most routes; the invite flow branches on it.
		authentication.NewMiddleware(verifier, tracer, monitor, logger).Optional(),
	)

	router.Use(middlewares...)

	metrics.NewAPI().RegisterEndpoints(router)
	status.NewAPI(logger).RegisterEndpoints(router)
	session.NewAPI(sessions, tracer, monitor, logger).RegisterEndpoints(router)
	guard.NewAPI(guard.NewGuard(sessions, homeRoute, tracer, monitor, logger), logger).RegisterEndpoints(router)
	invite.NewAPI(invites, hints, logger).RegisterEndpoints(router)
	catalog.NewAPI(modules, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
