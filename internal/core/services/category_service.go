package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/google/uuid"
)

// categoryService implements the CategorySvcFacade interface.
type categoryService struct {
	BaseService
	categoryRepo  portsrepo.CategoryRepositoryFacade
	permissionSvc portssvc.PermissionSvcFacade
	activitySvc   portssvc.ActivitySvcFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(
	categoryRepo portsrepo.CategoryRepositoryFacade,
	permissionSvc portssvc.PermissionSvcFacade,
	activitySvc portssvc.ActivitySvcFacade,
) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo:  categoryRepo,
		permissionSvc: permissionSvc,
		activitySvc:   activitySvc,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) requireManage(ctx context.Context, userID string) error {
	allowed, err := s.permissionSvc.HasPermission(ctx, userID, domain.PermSettingsManageCategories)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}
	return nil
}

// ListCategories retrieves all expense categories.
func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates an expense category. Names are unique
// case-insensitively.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	if err := s.requireManage(ctx, creatorUserID); err != nil {
		return nil, err
	}
	if err := s.ensureNameUnique(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:    uuid.NewString(),
		Name:          req.Name,
		Subcategories: req.Subcategories,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.logActivity(ctx, creatorUserID, "category.created", category.CategoryID, fmt.Sprintf("Created category %s", category.Name))
	return &category, nil
}

// UpdateCategory updates an existing category.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error) {
	if err := s.requireManage(ctx, requestingUserID); err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		if err := s.ensureNameUnique(ctx, *req.Name, categoryID); err != nil {
			return nil, err
		}
		category.Name = *req.Name
	}
	if req.Subcategories != nil {
		category.Subcategories = *req.Subcategories
	}

	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = requestingUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "category.updated", categoryID, fmt.Sprintf("Updated category %s", category.Name))
	return category, nil
}

// DeleteCategory removes a category from the catalog. Expenses already
// recorded against it keep their category string.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, requestingUserID string) error {
	if err := s.requireManage(ctx, requestingUserID); err != nil {
		return err
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}

	s.logActivity(ctx, requestingUserID, "category.deleted", categoryID, fmt.Sprintf("Deleted category %s", category.Name))
	return nil
}

func (s *categoryService) ensureNameUnique(ctx context.Context, name, excludeID string) error {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	for _, c := range categories {
		if c.CategoryID != excludeID && strings.EqualFold(c.Name, name) {
			return apperrors.ErrDuplicate
		}
	}
	return nil
}

func (s *categoryService) logActivity(ctx context.Context, actorID, action, categoryID, details string) {
	if s.activitySvc == nil {
		return
	}
	s.activitySvc.Log(ctx, domain.ActivityLog{
		UserID:     actorID,
		Action:     action,
		EntityType: domain.EntityCategory,
		EntityID:   categoryID,
		Details:    details,
	})
}
