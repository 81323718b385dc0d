package domain_test

import (
	"testing"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPermissionCatalogSize(t *testing.T) {
	total := 0
	for _, ids := range domain.PermissionCatalog {
		total += len(ids)
	}
	assert.Equal(t, 23, total)
	assert.Len(t, domain.FullPermissionSet(), total)
}

func TestDefaultPermissions(t *testing.T) {
	adminSet := domain.DefaultPermissions(domain.RoleAdmin)
	assert.Len(t, adminSet, len(domain.FullPermissionSet()))
	assert.True(t, adminSet.Has(domain.PermSystemImpersonate))

	userSet := domain.DefaultPermissions(domain.RoleUser)
	assert.True(t, userSet.Has(domain.PermProjectsView))
	assert.True(t, userSet.Has(domain.PermProjectsCreate))
	assert.True(t, userSet.Has(domain.PermProjectsEdit))
	assert.True(t, userSet.Has(domain.PermProjectsArchive))
	assert.True(t, userSet.Has(domain.PermReportsView))
	assert.True(t, userSet.Has(domain.PermSettingsView))
	assert.False(t, userSet.Has(domain.PermProjectsDelete))
	assert.False(t, userSet.Has(domain.PermUsersManagePermissions))
}

func TestResolvePermissions_OverrideReplacesEntirely(t *testing.T) {
	// An override of just projects.view removes
	// projects.create even though the role default includes it.
	override := &domain.PermissionOverride{
		UserID:      "u1",
		Permissions: []string{domain.PermProjectsView},
	}

	resolved := domain.ResolvePermissions(domain.RoleUser, override)
	assert.True(t, resolved.Has(domain.PermProjectsView))
	assert.False(t, resolved.Has(domain.PermProjectsCreate))
	assert.Len(t, resolved, 1)

	// No override falls back to the role default.
	resolved = domain.ResolvePermissions(domain.RoleUser, nil)
	assert.True(t, resolved.Has(domain.PermProjectsCreate))
}

func TestResolveLimits(t *testing.T) {
	adminLimits := domain.ResolveLimits(domain.RoleAdmin, nil)
	assert.True(t, adminLimits.AllowsProjects(1_000_000))
	assert.True(t, adminLimits.CanManageUsers)

	userLimits := domain.ResolveLimits(domain.RoleUser, nil)
	assert.Equal(t, 10, userLimits.MaxProjects)
	assert.True(t, userLimits.AllowsProjects(9))
	assert.False(t, userLimits.AllowsProjects(10))
	assert.False(t, userLimits.CanExportData)

	override := &domain.PermissionOverride{
		UserID: "u1",
		Limits: domain.CustomLimits{MaxProjects: 2, CanExportData: true},
	}
	resolved := domain.ResolveLimits(domain.RoleAdmin, override)
	assert.Equal(t, 2, resolved.MaxProjects)
	assert.True(t, resolved.CanExportData)
	assert.False(t, resolved.CanManageUsers)
}

func TestActivityFilter_Matches(t *testing.T) {
	entry := domain.ActivityLog{
		UserID:     "u1",
		Username:   "dana",
		Action:     "Created project",
		EntityType: domain.EntityProject,
		EntityID:   "p1",
		Details:    "Tower renovation",
	}

	assert.True(t, domain.ActivityFilter{}.Matches(entry))
	assert.True(t, domain.ActivityFilter{UserID: "u1"}.Matches(entry))
	assert.False(t, domain.ActivityFilter{UserID: "u2"}.Matches(entry))
	assert.True(t, domain.ActivityFilter{EntityType: domain.EntityProject, EntityID: "p1"}.Matches(entry))
	assert.False(t, domain.ActivityFilter{EntityType: domain.EntityExpense}.Matches(entry))
	assert.True(t, domain.ActivityFilter{Search: "tower"}.Matches(entry))
	assert.True(t, domain.ActivityFilter{Search: "DANA"}.Matches(entry))
	assert.False(t, domain.ActivityFilter{Search: "bridge"}.Matches(entry))
}
