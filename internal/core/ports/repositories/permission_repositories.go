package repositories

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
)

// PermissionRepositoryFacade defines operations for per-user permission
// overrides. The store is keyed by user id; a missing override is reported
// as apperrors.ErrNotFound and resolves to the role default at the service
// layer.
type PermissionRepositoryFacade interface {
	// FindOverrideByUserID retrieves the override for one user.
	FindOverrideByUserID(ctx context.Context, userID string) (*domain.PermissionOverride, error)

	// SaveOverride replaces the override record for exactly one user,
	// leaving every other user's record untouched.
	SaveOverride(ctx context.Context, override domain.PermissionOverride) error

	// ListOverrides retrieves all override records.
	ListOverrides(ctx context.Context) ([]domain.PermissionOverride, error)
}
