package services

import (
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Activity and permission services come first since nearly everything
	// else depends on them.
	container.Activity = NewActivityService(repos.ActivityRepo, repos.UserRepo)
	container.Permission = NewPermissionService(repos.UserRepo, repos.PermissionRepo, container.Activity)

	container.User = NewUserService(repos.UserRepo, container.Permission, container.Activity)
	container.Project = NewProjectService(repos.ProjectRepo, repos.SupplierRepo, container.Permission, container.Activity)
	container.Organization = NewOrganizationService(repos.OrganizationRepo, container.Permission, container.Activity)
	container.Category = NewCategoryService(repos.CategoryRepo, container.Permission, container.Activity)
	container.Supplier = NewSupplierService(repos.SupplierRepo, repos.ProjectRepo, container.Permission, container.Activity)
	container.Reporting = NewReportingService(repos.ProjectRepo, repos.UserRepo, repos.ActivityRepo, container.Permission)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
