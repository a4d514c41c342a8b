// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerEvents(t *testing.T) {
	l := NewNoopLogger()

	l.Security().SystemStartup()
	l.Security().SystemShutdown()
	l.Security().AuthnFailure("user-123")
	l.Security().AuthzFailure("user-123", "module_access")
	l.Security().InviteAccepted("a@b.com", "Acme")
}
