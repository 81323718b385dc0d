package gateway

import (
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository over one shared
// collection store, which may be the HTTP client itself or a
// cache-backed fallback around it.
func NewRepositoryProvider(store CollectionStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProjectRepo:      NewProjectRepository(store),
		UserRepo:         NewUserRepository(store),
		OrganizationRepo: NewOrganizationRepository(store),
		CategoryRepo:     NewCategoryRepository(store),
		SupplierRepo:     NewSupplierRepository(store),
		ActivityRepo:     NewActivityRepository(store),
		PermissionRepo:   NewPermissionRepository(store),
	}
}
