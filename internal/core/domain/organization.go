package domain

import "github.com/shopspring/decimal"

// OrganizationSettings holds per-tenant financial defaults.
type OrganizationSettings struct {
	VATRate     decimal.Decimal `json:"vatRate"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Currency    string          `json:"currency"`
	CompanyName string          `json:"companyName"`
}

// Organization is the tenant boundary grouping users, projects and settings.
type Organization struct {
	OrganizationID string               `json:"organizationID"`
	Name           string               `json:"name"`
	ContactPerson  string               `json:"contactPerson,omitempty"`
	Email          string               `json:"email,omitempty"`
	Phone          string               `json:"phone,omitempty"`
	VATNumber      string               `json:"vatNumber,omitempty"`
	BusinessNumber string               `json:"businessNumber,omitempty"`
	LogoURL        string               `json:"logoUrl,omitempty"`
	Settings       OrganizationSettings `json:"settings"`
	IsActive       bool                 `json:"isActive"`
	AuditFields
}
