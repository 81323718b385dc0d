package dto

import (
	"time"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest defines the data for creating a project.
type CreateProjectRequest struct {
	Name           string          `json:"name" binding:"required"`
	ContractAmount decimal.Decimal `json:"contractAmount"`
	OrganizationID string          `json:"organizationID"`
	OwnerID        string          `json:"ownerID"` // privileged callers may create on behalf of another owner
}

// UpdateProjectRequest defines the data allowed for updating a project.
type UpdateProjectRequest struct {
	Name           *string          `json:"name"`
	ContractAmount *decimal.Decimal `json:"contractAmount"`
	OwnerID        *string          `json:"ownerID"`
}

// ProjectResponse is the full representation of a project including its
// nested financial records.
type ProjectResponse struct {
	ProjectID      string                   `json:"projectID"`
	Name           string                   `json:"name"`
	OwnerID        string                   `json:"ownerID"`
	OrganizationID string                   `json:"organizationID,omitempty"`
	ContractAmount decimal.Decimal          `json:"contractAmount"`
	IsArchived     bool                     `json:"isArchived"`
	Incomes        []domain.Income          `json:"incomes"`
	Expenses       []domain.Expense         `json:"expenses"`
	Milestones     []domain.Milestone       `json:"milestones"`
	Suppliers      []domain.ProjectSupplier `json:"suppliers"`
	CreatedAt      time.Time                `json:"createdAt"`
}

// ToProjectResponse converts a domain.Project to its response DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:      p.ProjectID,
		Name:           p.Name,
		OwnerID:        p.OwnerID,
		OrganizationID: p.OrganizationID,
		ContractAmount: p.ContractAmount,
		IsArchived:     p.IsArchived,
		Incomes:        p.Incomes,
		Expenses:       p.Expenses,
		Milestones:     p.Milestones,
		Suppliers:      p.Suppliers,
		CreatedAt:      p.CreatedAt,
	}
}

// ListProjectsResponse wraps the list of projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToListProjectsResponse converts a slice of domain.Project.
func ToListProjectsResponse(projects []domain.Project) ListProjectsResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = ToProjectResponse(&projects[i])
	}
	return ListProjectsResponse{Projects: out}
}

// AddProjectSupplierRequest links a supplier to a project.
type AddProjectSupplierRequest struct {
	SupplierID     string          `json:"supplierID" binding:"required"`
	Role           string          `json:"role"`
	ContractAmount decimal.Decimal `json:"contractAmount"`
	Notes          string          `json:"notes"`
}
