package services_test

import (
	"context"
	"testing"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/core/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PermissionServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockPermRepo *MockPermissionRepository
	activity     *stubActivitySvc
	service      portssvc.PermissionSvcFacade
}

func (suite *PermissionServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockPermRepo = new(MockPermissionRepository)
	suite.activity = &stubActivitySvc{}
	suite.service = services.NewPermissionService(suite.mockUserRepo, suite.mockPermRepo, suite.activity)
}

func (suite *PermissionServiceTestSuite) TestHasPermission_RoleDefaults() {
	ctx := context.Background()
	user := &domain.User{UserID: "u1", Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(user, nil)
	suite.mockPermRepo.On("FindOverrideByUserID", ctx, "u1").Return(nil, apperrors.ErrNotFound)

	canView, err := suite.service.HasPermission(ctx, "u1", domain.PermProjectsView)
	suite.Require().NoError(err)
	suite.True(canView)

	canDelete, err := suite.service.HasPermission(ctx, "u1", domain.PermProjectsDelete)
	suite.Require().NoError(err)
	suite.False(canDelete)
}

func (suite *PermissionServiceTestSuite) TestHasPermission_OverrideReplacesDefaults() {
	ctx := context.Background()
	user := &domain.User{UserID: "u1", Role: domain.RoleUser}
	override := &domain.PermissionOverride{
		UserID:      "u1",
		Permissions: []string{domain.PermProjectsView},
	}
	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(user, nil)
	suite.mockPermRepo.On("FindOverrideByUserID", ctx, "u1").Return(override, nil)

	canView, err := suite.service.HasPermission(ctx, "u1", domain.PermProjectsView)
	suite.Require().NoError(err)
	suite.True(canView)

	// project creation is a role default for regular users, but the
	// override replaced the whole set rather than merging with it
	canCreate, err := suite.service.HasPermission(ctx, "u1", domain.PermProjectsCreate)
	suite.Require().NoError(err)
	suite.False(canCreate)
}

func (suite *PermissionServiceTestSuite) TestHasPermission_UnknownUserGetsUserDefaults() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound)
	suite.mockPermRepo.On("FindOverrideByUserID", ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	canView, err := suite.service.HasPermission(ctx, "ghost", domain.PermProjectsView)
	suite.Require().NoError(err)
	suite.True(canView)

	canManage, err := suite.service.HasPermission(ctx, "ghost", domain.PermUsersManagePermissions)
	suite.Require().NoError(err)
	suite.False(canManage)
}

func (suite *PermissionServiceTestSuite) TestGetEffectiveLimits_AdminUnlimited() {
	ctx := context.Background()
	admin := &domain.User{UserID: "a1", Role: domain.RoleAdmin}
	suite.mockUserRepo.On("FindUserByID", ctx, "a1").Return(admin, nil)
	suite.mockPermRepo.On("FindOverrideByUserID", ctx, "a1").Return(nil, apperrors.ErrNotFound)

	limits, err := suite.service.GetEffectiveLimits(ctx, "a1")
	suite.Require().NoError(err)
	suite.Equal(-1, limits.MaxProjects)
	suite.True(limits.AllowsProjects(1_000_000))
}

func (suite *PermissionServiceTestSuite) TestSavePermissions_RequiresManagePermission() {
	ctx := context.Background()
	requester := &domain.User{UserID: "u2", Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByID", ctx, "u2").Return(requester, nil)
	suite.mockPermRepo.On("FindOverrideByUserID", ctx, "u2").Return(nil, apperrors.ErrNotFound)

	resp, err := suite.service.SavePermissions(ctx, "u1", dto.SavePermissionsRequest{
		Permissions: []string{domain.PermProjectsView},
	}, "u2")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPermRepo.AssertNotCalled(suite.T(), "SaveOverride", mock.Anything, mock.Anything)
}

func (suite *PermissionServiceTestSuite) TestSavePermissions_RejectsUnknownPermission() {
	ctx := context.Background()
	admin := &domain.User{UserID: "a1", Role: domain.RoleSuperAdmin}
	suite.mockUserRepo.On("FindUserByID", ctx, "a1").Return(admin, nil)
	suite.mockPermRepo.On("FindOverrideByUserID", ctx, "a1").Return(nil, apperrors.ErrNotFound)

	resp, err := suite.service.SavePermissions(ctx, "u1", dto.SavePermissionsRequest{
		Permissions: []string{"projects.fly"},
	}, "a1")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PermissionServiceTestSuite) TestSavePermissions_ReplacesOverrideForOneUser() {
	ctx := context.Background()
	admin := &domain.User{UserID: "a1", Role: domain.RoleAdmin}
	target := &domain.User{UserID: "u1", Role: domain.RoleUser}
	saved := &domain.PermissionOverride{
		UserID:      "u1",
		Permissions: []string{domain.PermProjectsView, domain.PermReportsView},
		Limits:      domain.CustomLimits{MaxProjects: 3},
	}

	suite.mockUserRepo.On("FindUserByID", ctx, "a1").Return(admin, nil)
	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(target, nil)
	suite.mockPermRepo.On("FindOverrideByUserID", ctx, "a1").Return(nil, apperrors.ErrNotFound)
	suite.mockPermRepo.On("SaveOverride", ctx, mock.MatchedBy(func(o domain.PermissionOverride) bool {
		return o.UserID == "u1" && len(o.Permissions) == 2 && o.Limits.MaxProjects == 3
	})).Return(nil).Once()
	suite.mockPermRepo.On("FindOverrideByUserID", ctx, "u1").Return(saved, nil)

	resp, err := suite.service.SavePermissions(ctx, "u1", dto.SavePermissionsRequest{
		Permissions: []string{domain.PermProjectsView, domain.PermReportsView},
		Limits:      domain.CustomLimits{MaxProjects: 3},
	}, "a1")

	suite.Require().NoError(err)
	suite.True(resp.HasOverride)
	suite.ElementsMatch([]string{domain.PermProjectsView, domain.PermReportsView}, resp.Permissions)
	suite.Equal(3, resp.Limits.MaxProjects)
	suite.Len(suite.activity.entries, 1)
	suite.Equal("permissions.updated", suite.activity.entries[0].Action)
	suite.mockPermRepo.AssertExpectations(suite.T())
}

func TestPermissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionServiceTestSuite))
}
