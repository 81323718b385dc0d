package services_test

import (
	"context"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock ProjectRepository ---

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	var projects []domain.Project
	if args.Get(0) != nil {
		projects = args.Get(0).([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// --- Mock SupplierRepository ---

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	var suppliers []domain.Supplier
	if args.Get(0) != nil {
		suppliers = args.Get(0).([]domain.Supplier)
	}
	return suppliers, args.Error(1)
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	var supplier *domain.Supplier
	if args.Get(0) != nil {
		supplier = args.Get(0).(*domain.Supplier)
	}
	return supplier, args.Error(1)
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	args := m.Called(ctx, supplierID)
	return args.Error(0)
}

// --- Mock PermissionRepository ---

type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) FindOverrideByUserID(ctx context.Context, userID string) (*domain.PermissionOverride, error) {
	args := m.Called(ctx, userID)
	var override *domain.PermissionOverride
	if args.Get(0) != nil {
		override = args.Get(0).(*domain.PermissionOverride)
	}
	return override, args.Error(1)
}

func (m *MockPermissionRepository) SaveOverride(ctx context.Context, override domain.PermissionOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *MockPermissionRepository) ListOverrides(ctx context.Context) ([]domain.PermissionOverride, error) {
	args := m.Called(ctx)
	var overrides []domain.PermissionOverride
	if args.Get(0) != nil {
		overrides = args.Get(0).([]domain.PermissionOverride)
	}
	return overrides, args.Error(1)
}

// --- Mock ActivityRepository ---

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) AppendActivity(ctx context.Context, entry domain.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) ListActivity(ctx context.Context) ([]domain.ActivityLog, error) {
	args := m.Called(ctx)
	var entries []domain.ActivityLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ActivityLog)
	}
	return entries, args.Error(1)
}

// --- Stub permission service ---

// stubPermissionSvc grants a fixed permission set. It keeps service tests
// independent from the permission resolution logic, which has its own suite.
type stubPermissionSvc struct {
	perms  domain.PermissionSet
	limits domain.CustomLimits
}

func allowAll() *stubPermissionSvc {
	return &stubPermissionSvc{
		perms:  domain.FullPermissionSet(),
		limits: domain.DefaultLimits(domain.RoleAdmin),
	}
}

func allowOnly(ids ...string) *stubPermissionSvc {
	return &stubPermissionSvc{
		perms:  domain.NewPermissionSet(ids...),
		limits: domain.DefaultLimits(domain.RoleUser),
	}
}

func (s *stubPermissionSvc) GetEffectivePermissions(ctx context.Context, userID string) (*dto.EffectivePermissionsResponse, error) {
	return &dto.EffectivePermissionsResponse{
		UserID:      userID,
		Permissions: s.perms.IDs(),
		Limits:      s.limits,
	}, nil
}

func (s *stubPermissionSvc) HasPermission(ctx context.Context, userID string, permissionID string) (bool, error) {
	return s.perms.Has(permissionID), nil
}

func (s *stubPermissionSvc) GetEffectiveLimits(ctx context.Context, userID string) (*domain.CustomLimits, error) {
	limits := s.limits
	return &limits, nil
}

func (s *stubPermissionSvc) SavePermissions(ctx context.Context, userID string, req dto.SavePermissionsRequest, requestingUserID string) (*dto.EffectivePermissionsResponse, error) {
	return s.GetEffectivePermissions(ctx, userID)
}

// --- Stub activity service ---

// stubActivitySvc records every logged entry for assertion.
type stubActivitySvc struct {
	entries []domain.ActivityLog
}

func (s *stubActivitySvc) Log(ctx context.Context, entry domain.ActivityLog) {
	s.entries = append(s.entries, entry)
}

func (s *stubActivitySvc) ListActivity(ctx context.Context, params dto.ListActivityParams) ([]domain.ActivityLog, error) {
	return s.entries, nil
}
