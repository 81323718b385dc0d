package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User         UserSvcFacade
	Project      ProjectSvcFacade
	Organization OrganizationSvcFacade
	Category     CategorySvcFacade
	Supplier     SupplierSvcFacade
	Permission   PermissionSvcFacade
	Activity     ActivitySvcFacade
	Reporting    ReportingService
	Token        TokenSvcFacade
	GoogleOAuth  GoogleOAuthHandlerSvcFacade
}
