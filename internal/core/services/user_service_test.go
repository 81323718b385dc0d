package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/core/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/ProLedger/project_ledger_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	activity     *stubActivitySvc
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.activity = &stubActivitySvc{}
	suite.service = services.NewUserService(suite.mockUserRepo, allowAll(), suite.activity)
}

func (suite *UserServiceTestSuite) TestCreateUser_SelfRegistration() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "dana",
		Password: "password123",
		FullName: "Dana Levy",
		Email:    "dana@example.com",
		Role:     "admin", // ignored on self-registration
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "dana").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "dana@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "dana" &&
			user.Role == domain.RoleUser &&
			user.PasswordHash != "" &&
			user.PasswordHash != "password123"
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req, "")

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(domain.RoleUser, created.Role)
	suite.True(created.IsActive)
	suite.NotEmpty(created.UserID)
	suite.Len(suite.activity.entries, 1)
	suite.Equal("user.created", suite.activity.entries[0].Action)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_AdminAssignsRole() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "lead",
		Password: "password123",
		FullName: "Team Lead",
		Email:    "lead@example.com",
		Role:     "admin",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "lead").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "lead@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Role == domain.RoleAdmin
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, created.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "taken",
		Password: "password123",
		FullName: "Someone",
		Email:    "new@example.com",
	}

	existing := &domain.User{UserID: uuid.NewString(), Username: "taken"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "taken").Return(existing, nil).Once()

	created, err := suite.service.CreateUser(ctx, req, "")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_ForbiddenWithoutPermission() {
	ctx := context.Background()
	suite.service = services.NewUserService(suite.mockUserRepo, allowOnly(domain.PermProjectsView), suite.activity)

	req := dto.CreateUserRequest{
		Username: "newuser",
		Password: "password123",
		FullName: "New User",
		Email:    "new@example.com",
	}

	created, err := suite.service.CreateUser(ctx, req, "limited-user")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "dana",
		IsActive:     true,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "dana").Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "dana", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authed.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "dana",
		IsActive:     true,
		PasswordHash: hash,
	}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "dana").Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "dana", "battery-staple")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserMapsToUnauthorized() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_InactiveUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "dana",
		IsActive:     false,
		PasswordHash: hash,
	}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "dana").Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "dana", "correct-horse")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestListUsers_FiltersDeleted() {
	ctx := context.Background()
	deletedAt := time.Now()
	users := []domain.User{
		{UserID: "u1", Username: "alive"},
		{UserID: "u2", Username: "gone", DeletedAt: &deletedAt},
	}
	suite.mockUserRepo.On("ListUsers", ctx).Return(users, nil).Once()

	listed, err := suite.service.ListUsers(ctx)

	suite.Require().NoError(err)
	suite.Len(listed, 1)
	suite.Equal("u1", listed[0].UserID)
}

func (suite *UserServiceTestSuite) TestDeleteUser_CannotDeleteSelf() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, "u1", "u1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
