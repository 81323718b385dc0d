package domain

// Permission ids, grouped by catalog category. The catalog is fixed;
// per-user overrides may only reference ids listed here.
const (
	PermProjectsView            = "projects.view"
	PermProjectsCreate          = "projects.create"
	PermProjectsEdit            = "projects.edit"
	PermProjectsDelete          = "projects.delete"
	PermProjectsArchive         = "projects.archive"
	PermProjectsViewOthers      = "projects.view_others"
	PermProjectsManageSuppliers = "projects.manage_suppliers"

	PermUsersView              = "users.view"
	PermUsersCreate            = "users.create"
	PermUsersEdit              = "users.edit"
	PermUsersDelete            = "users.delete"
	PermUsersManagePermissions = "users.manage_permissions"

	PermReportsView      = "reports.view"
	PermReportsAdvanced  = "reports.advanced"
	PermReportsDashboard = "reports.dashboard"
	PermReportsExport    = "reports.export"

	PermSettingsView             = "settings.view"
	PermSettingsEdit             = "settings.edit"
	PermSettingsManageCategories = "settings.manage_categories"

	PermSystemViewLogs            = "system.view_logs"
	PermSystemManageOrganizations = "system.manage_organizations"
	PermSystemBackup              = "system.backup"
	PermSystemImpersonate         = "system.impersonate"
)

// PermissionCatalog maps each catalog category to its permission ids.
var PermissionCatalog = map[string][]string{
	"projects": {
		PermProjectsView, PermProjectsCreate, PermProjectsEdit,
		PermProjectsDelete, PermProjectsArchive, PermProjectsViewOthers,
		PermProjectsManageSuppliers,
	},
	"users": {
		PermUsersView, PermUsersCreate, PermUsersEdit,
		PermUsersDelete, PermUsersManagePermissions,
	},
	"reports": {
		PermReportsView, PermReportsAdvanced, PermReportsDashboard,
		PermReportsExport,
	},
	"settings": {
		PermSettingsView, PermSettingsEdit, PermSettingsManageCategories,
	},
	"system": {
		PermSystemViewLogs, PermSystemManageOrganizations,
		PermSystemBackup, PermSystemImpersonate,
	},
}

// PermissionSet is a resolved set of permission ids.
type PermissionSet map[string]struct{}

// Has reports membership of a permission id in the set.
func (s PermissionSet) Has(permissionID string) bool {
	_, ok := s[permissionID]
	return ok
}

// IDs returns the set as a slice, unordered.
func (s PermissionSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// NewPermissionSet builds a set from permission ids.
func NewPermissionSet(ids ...string) PermissionSet {
	s := make(PermissionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// FullPermissionSet returns a set containing the whole catalog.
func FullPermissionSet() PermissionSet {
	s := make(PermissionSet)
	for _, ids := range PermissionCatalog {
		for _, id := range ids {
			s[id] = struct{}{}
		}
	}
	return s
}

// CustomLimits are per-user capability caps. MaxProjects < 0 means
// unlimited.
type CustomLimits struct {
	MaxProjects           int  `json:"maxProjects"`
	CanViewOthersProjects bool `json:"canViewOthersProjects"`
	CanEditSystemSettings bool `json:"canEditSystemSettings"`
	CanExportData         bool `json:"canExportData"`
	CanManageUsers        bool `json:"canManageUsers"`
}

// AllowsProjects reports whether a user at the given project count may
// create one more project.
func (l CustomLimits) AllowsProjects(currentCount int) bool {
	return l.MaxProjects < 0 || currentCount < l.MaxProjects
}

// PermissionOverride replaces a user's role defaults entirely when present.
type PermissionOverride struct {
	UserID      string       `json:"userID"`
	Permissions []string     `json:"permissions"`
	Limits      CustomLimits `json:"customLimits"`
	AuditFields
}

// DefaultPermissions returns the role's default permission set. Admin and
// superadmin get the full catalog; everyone else gets the user subset.
func DefaultPermissions(role Role) PermissionSet {
	if role.IsPrivileged() {
		return FullPermissionSet()
	}
	return NewPermissionSet(
		PermProjectsView, PermProjectsCreate, PermProjectsEdit,
		PermProjectsArchive, PermReportsView, PermSettingsView,
	)
}

// DefaultLimits returns the role's default custom limits.
func DefaultLimits(role Role) CustomLimits {
	if role.IsPrivileged() {
		return CustomLimits{
			MaxProjects:           -1,
			CanViewOthersProjects: true,
			CanEditSystemSettings: true,
			CanExportData:         true,
			CanManageUsers:        true,
		}
	}
	return CustomLimits{MaxProjects: 10}
}

// ResolvePermissions applies the override-else-role-default rule. An
// override, when present, replaces the default set entirely; it is never
// merged with it.
func ResolvePermissions(role Role, override *PermissionOverride) PermissionSet {
	if override != nil {
		return NewPermissionSet(override.Permissions...)
	}
	return DefaultPermissions(role)
}

// ResolveLimits applies the same override-else-role-default rule to limits.
func ResolveLimits(role Role, override *PermissionOverride) CustomLimits {
	if override != nil {
		return override.Limits
	}
	return DefaultLimits(role)
}
