package repositories

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
)

// OrganizationRepositoryFacade defines operations for organization data.
type OrganizationRepositoryFacade interface {
	// ListOrganizations retrieves the whole organization collection.
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)

	// FindOrganizationByID retrieves a specific organization.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// SaveOrganization persists a new organization.
	SaveOrganization(ctx context.Context, org domain.Organization) error

	// UpdateOrganization replaces an existing organization.
	UpdateOrganization(ctx context.Context, org domain.Organization) error

	// DeleteOrganization removes an organization.
	DeleteOrganization(ctx context.Context, organizationID string) error
}
