package gateway

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
)

const permissionsCollection = "permissions"

// permissionRepository stores per-user permission overrides in the
// gateway's permissions collection, keyed by user id.
type permissionRepository struct {
	store CollectionStore
}

// NewPermissionRepository creates a gateway-backed permission repository.
func NewPermissionRepository(store CollectionStore) portsrepo.PermissionRepositoryFacade {
	return &permissionRepository{store: store}
}

var _ portsrepo.PermissionRepositoryFacade = (*permissionRepository)(nil)

func (r *permissionRepository) FindOverrideByUserID(ctx context.Context, userID string) (*domain.PermissionOverride, error) {
	overrides, err := r.ListOverrides(ctx)
	if err != nil {
		return nil, err
	}
	for idx := range overrides {
		if overrides[idx].UserID == userID {
			return &overrides[idx], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// SaveOverride replaces the override record for exactly one user, leaving
// every other user's record untouched.
func (r *permissionRepository) SaveOverride(ctx context.Context, override domain.PermissionOverride) error {
	overrides, err := r.ListOverrides(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for idx := range overrides {
		if overrides[idx].UserID == override.UserID {
			overrides[idx] = override
			replaced = true
			break
		}
	}
	if !replaced {
		overrides = append(overrides, override)
	}
	return r.store.ReplaceCollection(ctx, permissionsCollection, overrides)
}

func (r *permissionRepository) ListOverrides(ctx context.Context) ([]domain.PermissionOverride, error) {
	var overrides []domain.PermissionOverride
	if err := r.store.GetCollection(ctx, permissionsCollection, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}
