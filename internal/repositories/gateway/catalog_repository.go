package gateway

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
)

const (
	categoriesCollection = "categories"
	suppliersCollection  = "suppliers"
)

// categoryRepository stores expense categories in the gateway's categories
// collection.
type categoryRepository struct {
	store CollectionStore
}

// NewCategoryRepository creates a gateway-backed category repository.
func NewCategoryRepository(store CollectionStore) portsrepo.CategoryRepositoryFacade {
	return &categoryRepository{store: store}
}

var _ portsrepo.CategoryRepositoryFacade = (*categoryRepository)(nil)

func (r *categoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.store.GetCollection(ctx, categoriesCollection, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	categories, err := r.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	for idx := range categories {
		if categories[idx].CategoryID == categoryID {
			return &categories[idx], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *categoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	categories, err := r.ListCategories(ctx)
	if err != nil {
		return err
	}
	for _, existing := range categories {
		if existing.CategoryID == category.CategoryID {
			return apperrors.ErrDuplicate
		}
	}
	categories = append(categories, category)
	return r.store.ReplaceCollection(ctx, categoriesCollection, categories)
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	categories, err := r.ListCategories(ctx)
	if err != nil {
		return err
	}
	for idx := range categories {
		if categories[idx].CategoryID == category.CategoryID {
			categories[idx] = category
			return r.store.ReplaceCollection(ctx, categoriesCollection, categories)
		}
	}
	return apperrors.ErrNotFound
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	categories, err := r.ListCategories(ctx)
	if err != nil {
		return err
	}
	for idx := range categories {
		if categories[idx].CategoryID == categoryID {
			categories = append(categories[:idx], categories[idx+1:]...)
			return r.store.ReplaceCollection(ctx, categoriesCollection, categories)
		}
	}
	return apperrors.ErrNotFound
}

// supplierRepository stores the global supplier directory in the gateway's
// suppliers collection.
type supplierRepository struct {
	store CollectionStore
}

// NewSupplierRepository creates a gateway-backed supplier repository.
func NewSupplierRepository(store CollectionStore) portsrepo.SupplierRepositoryFacade {
	return &supplierRepository{store: store}
}

var _ portsrepo.SupplierRepositoryFacade = (*supplierRepository)(nil)

func (r *supplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := r.store.GetCollection(ctx, suppliersCollection, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *supplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	suppliers, err := r.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	for idx := range suppliers {
		if suppliers[idx].SupplierID == supplierID {
			return &suppliers[idx], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *supplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	suppliers, err := r.ListSuppliers(ctx)
	if err != nil {
		return err
	}
	for _, existing := range suppliers {
		if existing.SupplierID == supplier.SupplierID {
			return apperrors.ErrDuplicate
		}
	}
	suppliers = append(suppliers, supplier)
	return r.store.ReplaceCollection(ctx, suppliersCollection, suppliers)
}

func (r *supplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	suppliers, err := r.ListSuppliers(ctx)
	if err != nil {
		return err
	}
	for idx := range suppliers {
		if suppliers[idx].SupplierID == supplier.SupplierID {
			suppliers[idx] = supplier
			return r.store.ReplaceCollection(ctx, suppliersCollection, suppliers)
		}
	}
	return apperrors.ErrNotFound
}

func (r *supplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	suppliers, err := r.ListSuppliers(ctx)
	if err != nil {
		return err
	}
	for idx := range suppliers {
		if suppliers[idx].SupplierID == supplierID {
			suppliers = append(suppliers[:idx], suppliers[idx+1:]...)
			return r.store.ReplaceCollection(ctx, suppliersCollection, suppliers)
		}
	}
	return apperrors.ErrNotFound
}
