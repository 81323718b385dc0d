package dto

import "github.com/shopspring/decimal"

// Dates in financial record payloads are YYYY-MM-DD strings, matching what
// the gateway stores; handlers parse them before calling services.

// CreateIncomeRequest defines the data for adding an income to a project.
type CreateIncomeRequest struct {
	Date              string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description       string          `json:"description" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	PaymentMethod     string          `json:"paymentMethod"`
	ActualPaymentDate string          `json:"actualPaymentDate" binding:"omitempty,datetime=2006-01-02"`
	Notes             string          `json:"notes"`
}

// UpdateIncomeRequest defines the data allowed for updating an income.
type UpdateIncomeRequest struct {
	Date              *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description       *string          `json:"description"`
	Amount            *decimal.Decimal `json:"amount"`
	PaidAmount        *decimal.Decimal `json:"paidAmount"`
	PaymentMethod     *string          `json:"paymentMethod"`
	ActualPaymentDate *string          `json:"actualPaymentDate" binding:"omitempty,datetime=2006-01-02"`
	Notes             *string          `json:"notes"`
}

// CreateExpenseRequest defines the data for adding an expense to a project.
// Amount is pre-VAT; the VAT-inclusive amount is derived server-side.
type CreateExpenseRequest struct {
	Category      string          `json:"category" binding:"required"`
	Subcategory   string          `json:"subcategory"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	SupplierID    string          `json:"supplierID"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	HasVAT        bool            `json:"hasVat"`
	HasInvoice    bool            `json:"hasInvoice"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ExpenseType   string          `json:"expenseType" binding:"omitempty,oneof=regular addition exception daily_worker"`
	Notes         string          `json:"notes"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
type UpdateExpenseRequest struct {
	Category      *string          `json:"category"`
	Subcategory   *string          `json:"subcategory"`
	Date          *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	SupplierID    *string          `json:"supplierID"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	HasVAT        *bool            `json:"hasVat"`
	HasInvoice    *bool            `json:"hasInvoice"`
	InvoiceNumber *string          `json:"invoiceNumber"`
	ExpenseType   *string          `json:"expenseType" binding:"omitempty,oneof=regular addition exception daily_worker"`
	Notes         *string          `json:"notes"`
}

// CreateMilestoneRequest defines the data for adding a milestone.
// Percentage is derived from the amount and the project's contract amount.
type CreateMilestoneRequest struct {
	Name       string          `json:"name" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	TargetDate string          `json:"targetDate" binding:"omitempty,datetime=2006-01-02"`
	Status     string          `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

// UpdateMilestoneRequest defines the data allowed for updating a milestone.
type UpdateMilestoneRequest struct {
	Name       *string          `json:"name"`
	Amount     *decimal.Decimal `json:"amount"`
	TargetDate *string          `json:"targetDate" binding:"omitempty,datetime=2006-01-02"`
	Status     *string          `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}
