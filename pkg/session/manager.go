// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

// Package session owns the organization session of the dashboard: the
// bootstrap state machine that resolves the active organization, the
// caller's role and, for members, the module allow-list.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	retry "github.com/avast/retry-go/v4"

	"github.com/orgboard/session-service/internal/logging"
	"github.com/orgboard/session-service/internal/monitoring"
	"github.com/orgboard/session-service/internal/tracing"
	"github.com/orgboard/session-service/internal/types"
	"github.com/orgboard/session-service/pkg/access"
)

// State is the bootstrap machine state: Init -> Resolving -> {Ready, Failed}.
// Failed is terminal until Refetch starts a fresh bootstrap.
type State string

const (
	StateInit      State = "init"
	StateResolving State = "resolving"
	StateReady     State = "ready"
	StateFailed    State = "failed"
)

var (
	// ErrNoOrganization is the empty state: a valid session with no active
	// organization. Retried up to the budget like a transport failure, then
	// surfaced as-is rather than as an error screen.
	ErrNoOrganization = errors.New("session has no active organization")

	// ErrClosed is returned when resolving against a closed manager.
	ErrClosed = errors.New("session manager is closed")
)

// Snapshot is a point-in-time read of the session, carrying everything an
// access decision needs so gates never interleave two reads. A false
// HasModuleAccess while LoadingModules is true means "not yet known", not
// "denied"; gates must check the flag before trusting a denial.
type Snapshot struct {
	State        State
	Organization *types.Organization
	Role         types.Role
	Modules      access.AllowList

	IsOwner  bool
	IsAdmin  bool // true for owner too: the privileged-role union
	IsMember bool

	Loading        bool
	LoadingModules bool
}

// HasModuleAccess reports whether this snapshot may reach the module. False
// until the bootstrap and the allow-list resolution complete.
func (s Snapshot) HasModuleAccess(moduleKey string) bool {
	if s.State != StateReady || s.LoadingModules {
		return false
	}
	return access.HasModuleAccess(s.Role, s.Modules, moduleKey)
}

type Config struct {
	// Retries is the number of automatic re-attempts after the initial
	// bootstrap call, bounding the total directory calls per bootstrap at
	// Retries+1.
	Retries uint

	// RetryDelay and RetryMaxDelay bound the jittered exponential backoff
	// between attempts.
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration
}

var _ SessionInterface = (*Manager)(nil)

// Manager is the process-wide session value. It is created at application
// start, injected into consumers, and torn down with Close.
type Manager struct {
	directory DirectoryInterface
	cfg       Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface

	mu              sync.Mutex
	state           State
	organization    *types.Organization
	role            types.Role
	modules         access.AllowList
	modulesResolved bool
	closed          bool

	// generation of the bootstrap currently allowed to publish results;
	// a Refetch bumps it so an older in-flight bootstrap discards its
	// outcome instead of clobbering the fresh one.
	generation uint64
}

func NewManager(
	directory DirectoryInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Manager {
	return &Manager{
		directory: directory,
		cfg:       cfg,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
		state:     StateInit,
	}
}

// Resolve runs one bootstrap: a bounded, backoff-retried fetch of the
// current session, then, for members only, the allow-list fetch. It blocks
// until the machine settles in Ready or Failed.
func (m *Manager) Resolve(ctx context.Context) error {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Resolve")
	defer span.End()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.generation++
	gen := m.generation
	m.state = StateResolving
	m.organization = nil
	m.role = ""
	m.modules = access.AllowList{}
	m.modulesResolved = false
	m.mu.Unlock()

	var current *types.CurrentSession
	err := retry.Do(
		func() error {
			s, err := m.directory.GetCurrentSession(ctx)
			if err != nil {
				return err
			}
			if !s.LoggedIn || s.Organization == nil || !s.Role.Valid() {
				return ErrNoOrganization
			}
			current = s
			return nil
		},
		retry.Attempts(m.cfg.Retries+1),
		retry.Delay(m.cfg.RetryDelay),
		retry.MaxDelay(m.cfg.RetryMaxDelay),
		retry.MaxJitter(m.cfg.RetryDelay),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		m.logger.Warnf("session bootstrap failed after %d attempts: %v", m.cfg.Retries+1, err)
		m.publish(gen, func() {
			m.state = StateFailed
		})
		return err
	}

	m.publish(gen, func() {
		m.state = StateReady
		m.organization = current.Organization
		m.role = current.Role
	})

	// The allow-list fetch is issued only after the role is known: owner
	// and admin short-circuit to the sentinel without a second call.
	if current.Role.Privileged() {
		m.publish(gen, func() {
			m.modules = access.AllowAll()
			m.modulesResolved = true
		})
		return nil
	}

	modules, err := m.directory.ListMemberModules(ctx, current.Organization.ID)
	if err != nil {
		// Fail closed: an unreadable allow-list grants nothing.
		m.logger.Warnf("allow-list fetch failed, denying all modules: %v", err)
		m.publish(gen, func() {
			m.modules = access.AllowList{}
			m.modulesResolved = true
		})
		return nil
	}

	m.publish(gen, func() {
		m.modules = access.AllowKeys(modules...)
		m.modulesResolved = true
	})
	return nil
}

// Refetch forces a fresh bootstrap regardless of the current state, with a
// fresh (still bounded) retry budget. Called after events that change the
// session server-side, such as accepting an invitation.
func (m *Manager) Refetch(ctx context.Context) error {
	return m.Resolve(ctx)
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	loading := m.state == StateInit || m.state == StateResolving
	return Snapshot{
		State:          m.state,
		Organization:   m.organization,
		Role:           m.role,
		Modules:        m.modules,
		IsOwner:        m.role == types.RoleOwner,
		IsAdmin:        m.role.Privileged(),
		IsMember:       m.role == types.RoleMember,
		Loading:        loading,
		LoadingModules: loading || (m.state == StateReady && !m.modulesResolved),
	}
}

// HasModuleAccess reports whether the resolved session may reach the module.
// False until the bootstrap and the allow-list resolution complete.
func (m *Manager) HasModuleAccess(moduleKey string) bool {
	return m.Snapshot().HasModuleAccess(moduleKey)
}

// Close tears the session down. In-flight bootstraps finish without
// publishing their results.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

// publish applies a state mutation unless the manager was closed or a newer
// bootstrap superseded this one.
func (m *Manager) publish(gen uint64, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.generation != gen {
		return
	}
	fn()
}
