package services

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/ProLedger/project_ledger_app/internal/dto"
)

// CategorySvcFacade manages the expense category catalog.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string, requestingUserID string) error
}

// SupplierSvcFacade manages the global supplier directory.
type SupplierSvcFacade interface {
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string, requestingUserID string) error
}
