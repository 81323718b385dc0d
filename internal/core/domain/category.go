package domain

// Category is an expense category with optional subcategories.
type Category struct {
	CategoryID    string   `json:"categoryID"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories,omitempty"`
	AuditFields
}

// Supplier is a vendor shared across projects within an organization.
type Supplier struct {
	SupplierID     string `json:"supplierID"`
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	ContactPerson  string `json:"contactPerson,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Notes          string `json:"notes,omitempty"`
	AuditFields
}
