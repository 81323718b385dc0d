package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProjectRepo      ProjectRepositoryFacade
	UserRepo         UserRepositoryFacade
	OrganizationRepo OrganizationRepositoryFacade
	CategoryRepo     CategoryRepositoryFacade
	SupplierRepo     SupplierRepositoryFacade
	ActivityRepo     ActivityRepositoryFacade
	PermissionRepo   PermissionRepositoryFacade
}
