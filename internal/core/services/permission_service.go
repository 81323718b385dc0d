package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
)

// permissionService implements the PermissionSvcFacade interface. It reads
// user records through the repository rather than the user service to keep
// the dependency graph acyclic.
type permissionService struct {
	BaseService
	userRepo       portsrepo.UserRepositoryFacade
	permissionRepo portsrepo.PermissionRepositoryFacade
	activitySvc    portssvc.ActivitySvcFacade
}

// NewPermissionService creates a new permission service.
func NewPermissionService(
	userRepo portsrepo.UserRepositoryFacade,
	permissionRepo portsrepo.PermissionRepositoryFacade,
	activitySvc portssvc.ActivitySvcFacade,
) portssvc.PermissionSvcFacade {
	return &permissionService{
		userRepo:       userRepo,
		permissionRepo: permissionRepo,
		activitySvc:    activitySvc,
	}
}

var _ portssvc.PermissionSvcFacade = (*permissionService)(nil)

// resolve loads the user's role and override and applies the
// override-else-role-default rule. An unknown user resolves to the regular
// user defaults rather than an error, so permission checks fail closed to
// the least privileged set.
func (s *permissionService) resolve(ctx context.Context, userID string) (domain.Role, *domain.PermissionOverride, error) {
	role := domain.RoleUser
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return role, nil, err
		}
	} else if user.DeletedAt == nil {
		role = user.Role
	}

	override, err := s.permissionRepo.FindOverrideByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return role, nil, err
		}
		override = nil
	}
	return role, override, nil
}

// GetEffectivePermissions returns the permissions a user actually holds.
func (s *permissionService) GetEffectivePermissions(ctx context.Context, userID string) (*dto.EffectivePermissionsResponse, error) {
	role, override, err := s.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.EffectivePermissionsResponse{
		UserID:      userID,
		Role:        string(role),
		Permissions: domain.ResolvePermissions(role, override).IDs(),
		Limits:      domain.ResolveLimits(role, override),
		HasOverride: override != nil,
	}, nil
}

// HasPermission reports whether a user holds a single permission.
func (s *permissionService) HasPermission(ctx context.Context, userID string, permissionID string) (bool, error) {
	role, override, err := s.resolve(ctx, userID)
	if err != nil {
		return false, err
	}
	return domain.ResolvePermissions(role, override).Has(permissionID), nil
}

// GetEffectiveLimits returns the resolved custom limits for a user.
func (s *permissionService) GetEffectiveLimits(ctx context.Context, userID string) (*domain.CustomLimits, error) {
	role, override, err := s.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	limits := domain.ResolveLimits(role, override)
	return &limits, nil
}

// SavePermissions replaces a user's override wholesale. The requesting
// user must hold users.manage_permissions.
func (s *permissionService) SavePermissions(ctx context.Context, userID string, req dto.SavePermissionsRequest, requestingUserID string) (*dto.EffectivePermissionsResponse, error) {
	allowed, err := s.HasPermission(ctx, requestingUserID, domain.PermUsersManagePermissions)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	for _, id := range req.Permissions {
		if !knownPermission(id) {
			return nil, fmt.Errorf("%w: unknown permission %q", apperrors.ErrValidation, id)
		}
	}

	now := time.Now()
	override := domain.PermissionOverride{
		UserID:      userID,
		Permissions: req.Permissions,
		Limits:      req.Limits,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.permissionRepo.SaveOverride(ctx, override); err != nil {
		s.LogError(ctx, err, "Failed to save permission override", slog.String("user_id", userID))
		return nil, err
	}

	if s.activitySvc != nil {
		s.activitySvc.Log(ctx, domain.ActivityLog{
			UserID:     requestingUserID,
			Action:     "permissions.updated",
			EntityType: domain.EntityPermission,
			EntityID:   userID,
			Details:    fmt.Sprintf("Replaced permission override for user %s (%d permissions)", userID, len(req.Permissions)),
		})
	}

	return s.GetEffectivePermissions(ctx, userID)
}

func knownPermission(id string) bool {
	for _, ids := range domain.PermissionCatalog {
		for _, known := range ids {
			if known == id {
				return true
			}
		}
	}
	return false
}
