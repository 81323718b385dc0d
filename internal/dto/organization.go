package dto

import (
	"time"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrganizationRequest defines the data for creating an organization.
type CreateOrganizationRequest struct {
	Name           string `json:"name" binding:"required"`
	ContactPerson  string `json:"contactPerson"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	VATNumber      string `json:"vatNumber"`
	BusinessNumber string `json:"businessNumber"`
}

// UpdateOrganizationRequest defines the data allowed for updating an organization.
type UpdateOrganizationRequest struct {
	Name           *string `json:"name"`
	ContactPerson  *string `json:"contactPerson"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone"`
	VATNumber      *string `json:"vatNumber"`
	BusinessNumber *string `json:"businessNumber"`
	LogoURL        *string `json:"logoUrl"`
}

// UpdateOrganizationSettingsRequest updates per-tenant financial defaults.
type UpdateOrganizationSettingsRequest struct {
	VATRate     *decimal.Decimal `json:"vatRate"`
	TaxRate     *decimal.Decimal `json:"taxRate"`
	Currency    *string          `json:"currency"`
	CompanyName *string          `json:"companyName"`
}

// OrganizationResponse is the public representation of an organization.
type OrganizationResponse struct {
	OrganizationID string                      `json:"organizationID"`
	Name           string                      `json:"name"`
	ContactPerson  string                      `json:"contactPerson,omitempty"`
	Email          string                      `json:"email,omitempty"`
	Phone          string                      `json:"phone,omitempty"`
	VATNumber      string                      `json:"vatNumber,omitempty"`
	BusinessNumber string                      `json:"businessNumber,omitempty"`
	LogoURL        string                      `json:"logoUrl,omitempty"`
	Settings       domain.OrganizationSettings `json:"settings"`
	IsActive       bool                        `json:"isActive"`
	CreatedAt      time.Time                   `json:"createdAt"`
}

// ToOrganizationResponse converts a domain.Organization to its response DTO.
func ToOrganizationResponse(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: org.OrganizationID,
		Name:           org.Name,
		ContactPerson:  org.ContactPerson,
		Email:          org.Email,
		Phone:          org.Phone,
		VATNumber:      org.VATNumber,
		BusinessNumber: org.BusinessNumber,
		LogoURL:        org.LogoURL,
		Settings:       org.Settings,
		IsActive:       org.IsActive,
		CreatedAt:      org.CreatedAt,
	}
}

// ListOrganizationsResponse wraps the list of organizations.
type ListOrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// ToListOrganizationsResponse converts a slice of domain.Organization.
func ToListOrganizationsResponse(orgs []domain.Organization) ListOrganizationsResponse {
	out := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		out[i] = ToOrganizationResponse(&orgs[i])
	}
	return ListOrganizationsResponse{Organizations: out}
}
