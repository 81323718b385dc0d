package dto

import "github.com/ProLedger/project_ledger_app/internal/core/domain"

// CreateCategoryRequest defines the data for creating an expense category.
type CreateCategoryRequest struct {
	Name          string   `json:"name" binding:"required"`
	Subcategories []string `json:"subcategories"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name          *string   `json:"name"`
	Subcategories *[]string `json:"subcategories"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// CreateSupplierRequest defines the data for creating a supplier.
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Notes         string `json:"notes"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Notes         *string `json:"notes"`
}

// ListSuppliersResponse wraps the list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []domain.Supplier `json:"suppliers"`
}
