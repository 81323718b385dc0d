package dto

import "github.com/ProLedger/project_ledger_app/internal/core/domain"

// SavePermissionsRequest replaces a user's permission override wholesale.
type SavePermissionsRequest struct {
	Permissions []string            `json:"permissions" binding:"required"`
	Limits      domain.CustomLimits `json:"limits"`
}

// EffectivePermissionsResponse describes the permissions a user actually has
// after applying overrides on top of role defaults.
type EffectivePermissionsResponse struct {
	UserID      string              `json:"userId"`
	Role        string              `json:"role"`
	Permissions []string            `json:"permissions"`
	Limits      domain.CustomLimits `json:"limits"`
	HasOverride bool                `json:"hasOverride"`
}

// PermissionCatalogResponse lists every permission the system knows about,
// grouped by catalog category.
type PermissionCatalogResponse struct {
	Categories map[string][]string `json:"categories"`
}
