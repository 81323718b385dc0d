package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/ProLedger/project_ledger_app/internal/utils"
	"github.com/google/uuid"
)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo      portsrepo.UserRepositoryFacade
	permissionSvc portssvc.PermissionSvcFacade
	activitySvc   portssvc.ActivitySvcFacade
}

// NewUserService creates a new user service with the provided dependencies.
func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	permissionSvc portssvc.PermissionSvcFacade,
	activitySvc portssvc.ActivitySvcFacade,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:      userRepo,
		permissionSvc: permissionSvc,
		activitySvc:   activitySvc,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser creates a new user. An empty creatorUserID means
// self-registration, which always produces a regular user; otherwise the
// creator must hold the users.create permission.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	role := domain.RoleUser
	if creatorUserID == "" {
		// Self-registration never grants an elevated role.
	} else {
		allowed, err := s.permissionSvc.HasPermission(ctx, creatorUserID, domain.PermUsersCreate)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, apperrors.ErrForbidden
		}
		if req.Role != "" {
			parsed, err := domain.ParseRole(req.Role)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
			}
			role = parsed
		}
	}

	if err := s.ensureUserUnique(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	auditBy := creatorUserID
	newUserID := uuid.NewString()
	if auditBy == "" {
		auditBy = newUserID
	}

	user := domain.User{
		UserID:         newUserID,
		Username:       req.Username,
		FullName:       req.FullName,
		Email:          req.Email,
		Role:           role,
		OrganizationID: req.OrganizationID,
		IsActive:       true,
		PasswordHash:   passwordHash,
		AuthProvider:   domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     auditBy,
			LastUpdatedAt: now,
			LastUpdatedBy: auditBy,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, err
	}

	s.logActivity(ctx, auditBy, "user.created", domain.EntityUser, user.UserID, fmt.Sprintf("Created user %s", user.Username))
	s.LogInfo(ctx, "User created successfully", slog.String("user_id", user.UserID))
	return &user, nil
}

// CreateOAuthUser provisions a user from a verified Google identity.
func (s *userService) CreateOAuthUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	if info == nil || info.Email == "" {
		return nil, fmt.Errorf("%w: oauth profile is missing an email", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	now := time.Now()
	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       info.Email,
		FullName:       info.Name,
		Email:          info.Email,
		Role:           domain.RoleUser,
		IsActive:       true,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: info.ID,
		EmailVerified:  info.VerifiedEmail,
	}
	user.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     user.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: user.UserID,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save oauth user", slog.String("email", info.Email))
		return nil, err
	}

	s.logActivity(ctx, user.UserID, "user.created", domain.EntityUser, user.UserID, fmt.Sprintf("Provisioned user %s via Google", user.Username))
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	if user.DeletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by username", slog.String("username", username))
		}
		return nil, err
	}
	if user.DeletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// ListUsers retrieves all non-deleted users.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}

	active := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.DeletedAt == nil {
			active = append(active, u)
		}
	}
	return active, nil
}

// UpdateUser updates an existing user. Users may edit their own profile
// fields; changing another user, a role or the active flag requires the
// users.edit permission.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	needsEditPermission := requestingUserID != userID || req.Role != nil || req.IsActive != nil
	if needsEditPermission {
		allowed, err := s.permissionSvc.HasPermission(ctx, requestingUserID, domain.PermUsersEdit)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, apperrors.ErrForbidden
		}
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil && *req.Email != user.Email {
		other, err := s.userRepo.FindUserByEmail(ctx, *req.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if other != nil && other.UserID != userID {
			return nil, apperrors.ErrDuplicate
		}
		user.Email = *req.Email
	}
	if req.Role != nil {
		role, err := domain.ParseRole(*req.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		user.Role = role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "user.updated", domain.EntityUser, userID, fmt.Sprintf("Updated user %s", user.Username))
	return user, nil
}

// MarkLoginSuccess records a successful login timestamp for the user.
func (s *userService) MarkLoginSuccess(ctx context.Context, userID string) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	user.LastLoginAt = &now
	user.LastUpdatedAt = now
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to record login", slog.String("user_id", userID))
		return err
	}
	return nil
}

// UpdateRefreshToken updates the refresh token details for a user.
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	user.RefreshTokenHash = refreshTokenHash
	user.RefreshTokenExpiryTime = &refreshTokenExpiryTime

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}

// ClearRefreshToken clears the refresh token for a user.
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	user.RefreshTokenHash = ""
	user.RefreshTokenExpiryTime = nil

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}

// DeleteUser marks a user as deleted (soft delete). Deleting yourself is
// not allowed.
func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if userID == requestingUserID {
		return fmt.Errorf("%w: cannot delete your own account", apperrors.ErrValidation)
	}

	allowed, err := s.permissionSvc.HasPermission(ctx, requestingUserID, domain.PermUsersDelete)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return err
	}

	s.logActivity(ctx, requestingUserID, "user.deleted", domain.EntityUser, userID, fmt.Sprintf("Deleted user %s", user.Username))
	return nil
}

// AuthenticateUser authenticates a user with username and password.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if user.AuthProvider == domain.ProviderGoogle && user.PasswordHash == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Password mismatch on login", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, apperrors.ErrForbidden
	}

	return user, nil
}

func (s *userService) ensureUserUnique(ctx context.Context, username, email string) error {
	byUsername, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	if byUsername != nil {
		return apperrors.ErrDuplicate
	}

	byEmail, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	if byEmail != nil {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (s *userService) logActivity(ctx context.Context, actorID, action string, entityType domain.EntityType, entityID, details string) {
	if s.activitySvc == nil {
		return
	}
	s.activitySvc.Log(ctx, domain.ActivityLog{
		UserID:     actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	})
}
