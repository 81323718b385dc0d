package services

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/ProLedger/project_ledger_app/internal/dto"
)

// PermissionSvcFacade resolves and manages per-user permission overrides.
type PermissionSvcFacade interface {
	// GetEffectivePermissions returns the permissions a user actually holds,
	// after applying any override on top of their role defaults.
	GetEffectivePermissions(ctx context.Context, userID string) (*dto.EffectivePermissionsResponse, error)

	// HasPermission reports whether a user holds a single permission.
	HasPermission(ctx context.Context, userID string, permissionID string) (bool, error)

	// GetEffectiveLimits returns the resolved custom limits for a user.
	GetEffectiveLimits(ctx context.Context, userID string) (*domain.CustomLimits, error)

	// SavePermissions replaces a user's override wholesale. An override
	// supersedes the role defaults entirely rather than merging with them.
	SavePermissions(ctx context.Context, userID string, req dto.SavePermissionsRequest, requestingUserID string) (*dto.EffectivePermissionsResponse, error)
}
