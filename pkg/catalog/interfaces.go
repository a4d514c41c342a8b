// Copyright 2026 Orgboard Authors
// SPDX-License-Identifier: AGPL-3.0

package catalog

import (
	"context"

	"github.com/orgboard/session-service/internal/types"
)

type DirectoryInterface interface {
	GetModuleCatalog(ctx context.Context) ([]types.ModuleCatalogEntry, error)
}

type ServiceInterface interface {
	Entries(ctx context.Context) ([]types.ModuleCatalogEntry, error)
	Groups(ctx context.Context) ([]Group, error)
	Contains(ctx context.Context, moduleKey string) (bool, error)
}
