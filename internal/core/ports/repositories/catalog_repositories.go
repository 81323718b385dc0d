package repositories

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
)

// CategoryRepositoryFacade defines operations for expense categories.
type CategoryRepositoryFacade interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// SupplierRepositoryFacade defines operations for the global supplier list.
type SupplierRepositoryFacade interface {
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}
