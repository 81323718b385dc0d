package services

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/ProLedger/project_ledger_app/internal/dto"
)

// OrganizationReaderSvc defines read operations for organizations.
type OrganizationReaderSvc interface {
	GetOrganizationByID(ctx context.Context, orgID string) (*domain.Organization, error)
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
}

// OrganizationWriterSvc defines write operations for organizations.
type OrganizationWriterSvc interface {
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, creatorUserID string) (*domain.Organization, error)
	UpdateOrganization(ctx context.Context, orgID string, req dto.UpdateOrganizationRequest, requestingUserID string) (*domain.Organization, error)

	// UpdateOrganizationSettings replaces the financial settings of an organization.
	UpdateOrganizationSettings(ctx context.Context, orgID string, req dto.UpdateOrganizationSettingsRequest, requestingUserID string) (*domain.Organization, error)

	// SetOrganizationActive toggles whether the organization can be used.
	SetOrganizationActive(ctx context.Context, orgID string, active bool, requestingUserID string) (*domain.Organization, error)
}

// OrganizationSvcFacade combines all organization-related service interfaces.
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
}
