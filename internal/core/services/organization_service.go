package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// organizationService implements the OrganizationSvcFacade interface.
type organizationService struct {
	BaseService
	orgRepo       portsrepo.OrganizationRepositoryFacade
	permissionSvc portssvc.PermissionSvcFacade
	activitySvc   portssvc.ActivitySvcFacade
}

// NewOrganizationService creates a new organization service.
func NewOrganizationService(
	orgRepo portsrepo.OrganizationRepositoryFacade,
	permissionSvc portssvc.PermissionSvcFacade,
	activitySvc portssvc.ActivitySvcFacade,
) portssvc.OrganizationSvcFacade {
	return &organizationService{
		orgRepo:       orgRepo,
		permissionSvc: permissionSvc,
		activitySvc:   activitySvc,
	}
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

func (s *organizationService) requireManage(ctx context.Context, userID string) error {
	allowed, err := s.permissionSvc.HasPermission(ctx, userID, domain.PermSystemManageOrganizations)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}
	return nil
}

// GetOrganizationByID retrieves an organization by its ID.
func (s *organizationService) GetOrganizationByID(ctx context.Context, orgID string) (*domain.Organization, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return org, nil
}

// ListOrganizations retrieves all organizations.
func (s *organizationService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	orgs, err := s.orgRepo.ListOrganizations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list organizations")
		return nil, err
	}
	return orgs, nil
}

// CreateOrganization creates a new organization with default settings.
func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, creatorUserID string) (*domain.Organization, error) {
	if err := s.requireManage(ctx, creatorUserID); err != nil {
		return nil, err
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.Name,
		ContactPerson:  req.ContactPerson,
		Email:          req.Email,
		Phone:          req.Phone,
		VATNumber:      req.VATNumber,
		BusinessNumber: req.BusinessNumber,
		IsActive:       true,
		Settings: domain.OrganizationSettings{
			VATRate:  decimal.NewFromInt(18),
			Currency: "ILS",
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		s.LogError(ctx, err, "Failed to save organization", slog.String("organization_id", org.OrganizationID))
		return nil, err
	}

	s.logActivity(ctx, creatorUserID, "organization.created", org.OrganizationID, fmt.Sprintf("Created organization %s", org.Name))
	return &org, nil
}

// UpdateOrganization updates an existing organization.
func (s *organizationService) UpdateOrganization(ctx context.Context, orgID string, req dto.UpdateOrganizationRequest, requestingUserID string) (*domain.Organization, error) {
	if err := s.requireManage(ctx, requestingUserID); err != nil {
		return nil, err
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.ContactPerson != nil {
		org.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		org.Email = *req.Email
	}
	if req.Phone != nil {
		org.Phone = *req.Phone
	}
	if req.VATNumber != nil {
		org.VATNumber = *req.VATNumber
	}
	if req.BusinessNumber != nil {
		org.BusinessNumber = *req.BusinessNumber
	}
	if req.LogoURL != nil {
		org.LogoURL = *req.LogoURL
	}

	if err := s.persist(ctx, org, requestingUserID); err != nil {
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "organization.updated", orgID, fmt.Sprintf("Updated organization %s", org.Name))
	return org, nil
}

// UpdateOrganizationSettings replaces the financial settings of an
// organization. Editing settings requires settings.edit rather than
// the organization management permission.
func (s *organizationService) UpdateOrganizationSettings(ctx context.Context, orgID string, req dto.UpdateOrganizationSettingsRequest, requestingUserID string) (*domain.Organization, error) {
	allowed, err := s.permissionSvc.HasPermission(ctx, requestingUserID, domain.PermSettingsEdit)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if req.VATRate != nil {
		org.Settings.VATRate = *req.VATRate
	}
	if req.TaxRate != nil {
		org.Settings.TaxRate = *req.TaxRate
	}
	if req.Currency != nil {
		org.Settings.Currency = *req.Currency
	}
	if req.CompanyName != nil {
		org.Settings.CompanyName = *req.CompanyName
	}

	if err := s.persist(ctx, org, requestingUserID); err != nil {
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "organization.settings_updated", orgID, fmt.Sprintf("Updated settings for organization %s", org.Name))
	return org, nil
}

// SetOrganizationActive toggles whether the organization can be used.
func (s *organizationService) SetOrganizationActive(ctx context.Context, orgID string, active bool, requestingUserID string) (*domain.Organization, error) {
	if err := s.requireManage(ctx, requestingUserID); err != nil {
		return nil, err
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	org.IsActive = active
	if err := s.persist(ctx, org, requestingUserID); err != nil {
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "organization.active_toggled", orgID, fmt.Sprintf("Set active=%t on organization %s", active, org.Name))
	return org, nil
}

func (s *organizationService) persist(ctx context.Context, org *domain.Organization, requestingUserID string) error {
	org.LastUpdatedAt = time.Now()
	org.LastUpdatedBy = requestingUserID

	if err := s.orgRepo.UpdateOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to update organization", slog.String("organization_id", org.OrganizationID))
		return err
	}
	return nil
}

func (s *organizationService) logActivity(ctx context.Context, actorID, action, orgID, details string) {
	if s.activitySvc == nil {
		return
	}
	s.activitySvc.Log(ctx, domain.ActivityLog{
		UserID:     actorID,
		Action:     action,
		EntityType: domain.EntityOrganization,
		EntityID:   orgID,
		Details:    details,
	})
}
