package gateway

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
)

const organizationsCollection = "organizations"

// organizationRepository stores organizations in the gateway's
// organizations collection.
type organizationRepository struct {
	store CollectionStore
}

// NewOrganizationRepository creates a gateway-backed organization repository.
func NewOrganizationRepository(store CollectionStore) portsrepo.OrganizationRepositoryFacade {
	return &organizationRepository{store: store}
}

var _ portsrepo.OrganizationRepositoryFacade = (*organizationRepository)(nil)

func (r *organizationRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	var orgs []domain.Organization
	if err := r.store.GetCollection(ctx, organizationsCollection, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *organizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	orgs, err := r.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}
	for idx := range orgs {
		if orgs[idx].OrganizationID == organizationID {
			return &orgs[idx], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *organizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	orgs, err := r.ListOrganizations(ctx)
	if err != nil {
		return err
	}
	for _, existing := range orgs {
		if existing.OrganizationID == org.OrganizationID {
			return apperrors.ErrDuplicate
		}
	}
	orgs = append(orgs, org)
	return r.store.ReplaceCollection(ctx, organizationsCollection, orgs)
}

func (r *organizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	orgs, err := r.ListOrganizations(ctx)
	if err != nil {
		return err
	}
	for idx := range orgs {
		if orgs[idx].OrganizationID == org.OrganizationID {
			orgs[idx] = org
			return r.store.ReplaceCollection(ctx, organizationsCollection, orgs)
		}
	}
	return apperrors.ErrNotFound
}

func (r *organizationRepository) DeleteOrganization(ctx context.Context, organizationID string) error {
	orgs, err := r.ListOrganizations(ctx)
	if err != nil {
		return err
	}
	for idx := range orgs {
		if orgs[idx].OrganizationID == organizationID {
			orgs = append(orgs[:idx], orgs[idx+1:]...)
			return r.store.ReplaceCollection(ctx, organizationsCollection, orgs)
		}
	}
	return apperrors.ErrNotFound
}
