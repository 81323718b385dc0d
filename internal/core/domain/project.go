package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// vatMultiplier is the fixed 18% VAT applied to expense amounts.
var vatMultiplier = decimal.NewFromFloat(1.18)

// PaymentStatus describes how much of an income has been collected.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
)

// ExpenseType classifies an expense line.
type ExpenseType string

const (
	ExpenseRegular     ExpenseType = "regular"
	ExpenseAddition    ExpenseType = "addition"
	ExpenseException   ExpenseType = "exception"
	ExpenseDailyWorker ExpenseType = "daily_worker"
)

// MilestoneStatus describes progress against a contractual milestone.
type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

// Project is the aggregate root: financial records are nested inside the
// project document, the way the gateway stores them.
type Project struct {
	ProjectID      string          `json:"projectID"`
	Name           string          `json:"name"`
	OwnerID        string          `json:"ownerID"`
	OrganizationID string          `json:"organizationID"`
	ContractAmount decimal.Decimal `json:"contractAmount"`
	IsArchived     bool            `json:"isArchived"`

	Incomes    []Income          `json:"incomes"`
	Expenses   []Expense         `json:"expenses"`
	Milestones []Milestone       `json:"milestones"`
	Suppliers  []ProjectSupplier `json:"suppliers"`

	AuditFields
}

// Income is a receivable against a project. RemainingAmount and
// PaymentStatus are derived from Amount and PaidAmount and are recomputed
// whenever either changes.
type Income struct {
	IncomeID          string          `json:"incomeID"`
	Date              time.Time       `json:"date"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	RemainingAmount   decimal.Decimal `json:"remainingAmount"`
	PaymentStatus     PaymentStatus   `json:"paymentStatus"`
	PaymentMethod     string          `json:"paymentMethod,omitempty"`
	ActualPaymentDate *time.Time      `json:"actualPaymentDate,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

// Recalculate refreshes the derived fields:
// remaining = max(0, amount - paid); paid iff paid >= amount,
// pending iff paid = 0, otherwise partially paid.
func (i *Income) Recalculate() {
	remaining := i.Amount.Sub(i.PaidAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	i.RemainingAmount = remaining

	switch {
	case i.PaidAmount.GreaterThanOrEqual(i.Amount):
		i.PaymentStatus = PaymentPaid
	case i.PaidAmount.IsZero():
		i.PaymentStatus = PaymentPending
	default:
		i.PaymentStatus = PaymentPartiallyPaid
	}
}

// Expense is a cost line against a project. Amount is pre-VAT.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Date          time.Time       `json:"date"`
	SupplierID    string          `json:"supplierID,omitempty"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	HasVAT        bool            `json:"hasVat"`
	AmountWithVAT decimal.Decimal `json:"amountWithVat"`
	HasInvoice    bool            `json:"hasInvoice"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	ExpenseType   ExpenseType     `json:"expenseType"`
	Notes         string          `json:"notes,omitempty"`
}

// Recalculate refreshes AmountWithVAT: amount x 1.18 rounded to 2 decimals
// when the expense carries VAT, otherwise equal to the net amount.
func (e *Expense) Recalculate() {
	if e.HasVAT {
		e.AmountWithVAT = e.Amount.Mul(vatMultiplier).Round(2)
	} else {
		e.AmountWithVAT = e.Amount
	}
}

// NetFromGross recovers the pre-VAT amount from a VAT-inclusive amount,
// rounded to 2 decimals.
func NetFromGross(gross decimal.Decimal) decimal.Decimal {
	return gross.Div(vatMultiplier).Round(2)
}

// Milestone is a contractual payment checkpoint tied to a share of the
// project's contract amount.
type Milestone struct {
	MilestoneID string          `json:"milestoneID"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Percentage  decimal.Decimal `json:"percentage"`
	TargetDate  *time.Time      `json:"targetDate,omitempty"`
	Status      MilestoneStatus `json:"status"`
}

// RecalculatePercentage refreshes the milestone's share of the contract:
// amount / contract x 100 rounded to 2 decimals, or 0 when the contract
// amount is not positive.
func (m *Milestone) RecalculatePercentage(contractAmount decimal.Decimal) {
	if contractAmount.IsPositive() {
		m.Percentage = m.Amount.Div(contractAmount).Mul(decimal.NewFromInt(100)).Round(2)
	} else {
		m.Percentage = decimal.Zero
	}
}

// ProjectSupplier links a global supplier to a project with a per-project
// role and contract amount.
type ProjectSupplier struct {
	SupplierID     string          `json:"supplierID"`
	Role           string          `json:"role,omitempty"`
	ContractAmount decimal.Decimal `json:"contractAmount"`
	Notes          string          `json:"notes,omitempty"`
}

// FindIncome returns a pointer to the income with the given id, or nil.
func (p *Project) FindIncome(incomeID string) *Income {
	for idx := range p.Incomes {
		if p.Incomes[idx].IncomeID == incomeID {
			return &p.Incomes[idx]
		}
	}
	return nil
}

// FindExpense returns a pointer to the expense with the given id, or nil.
func (p *Project) FindExpense(expenseID string) *Expense {
	for idx := range p.Expenses {
		if p.Expenses[idx].ExpenseID == expenseID {
			return &p.Expenses[idx]
		}
	}
	return nil
}

// FindMilestone returns a pointer to the milestone with the given id, or nil.
func (p *Project) FindMilestone(milestoneID string) *Milestone {
	for idx := range p.Milestones {
		if p.Milestones[idx].MilestoneID == milestoneID {
			return &p.Milestones[idx]
		}
	}
	return nil
}
