package domain_test

import (
	"testing"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIncome_Recalculate(t *testing.T) {
	tests := []struct {
		name          string
		amount        string
		paid          string
		wantRemaining string
		wantStatus    domain.PaymentStatus
	}{
		{
			name:          "nothing paid",
			amount:        "50000",
			paid:          "0",
			wantRemaining: "50000",
			wantStatus:    domain.PaymentPending,
		},
		{
			name:          "partially paid",
			amount:        "50000",
			paid:          "20000",
			wantRemaining: "30000",
			wantStatus:    domain.PaymentPartiallyPaid,
		},
		{
			name:          "fully paid",
			amount:        "50000",
			paid:          "50000",
			wantRemaining: "0",
			wantStatus:    domain.PaymentPaid,
		},
		{
			name:          "overpaid clamps remaining to zero",
			amount:        "50000",
			paid:          "60000",
			wantRemaining: "0",
			wantStatus:    domain.PaymentPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inc := domain.Income{
				Amount:     decimal.RequireFromString(tt.amount),
				PaidAmount: decimal.RequireFromString(tt.paid),
			}
			inc.Recalculate()
			assert.True(t, inc.RemainingAmount.Equal(decimal.RequireFromString(tt.wantRemaining)),
				"remaining = %s", inc.RemainingAmount)
			assert.Equal(t, tt.wantStatus, inc.PaymentStatus)
		})
	}
}

func TestExpense_Recalculate(t *testing.T) {
	exp := domain.Expense{
		Amount: decimal.RequireFromString("100"),
		HasVAT: true,
	}
	exp.Recalculate()
	assert.True(t, exp.AmountWithVAT.Equal(decimal.RequireFromString("118")), "got %s", exp.AmountWithVAT)

	exp.HasVAT = false
	exp.Recalculate()
	assert.True(t, exp.AmountWithVAT.Equal(exp.Amount))
}

func TestExpense_VATRoundTrip(t *testing.T) {
	// For a 2-decimal net amount, gross = round(net * 1.18, 2) must recover
	// the same net via round(gross / 1.18, 2).
	for _, amount := range []string{"20000", "99.99", "0.01", "1234.56", "3150.70"} {
		exp := domain.Expense{Amount: decimal.RequireFromString(amount), HasVAT: true}
		exp.Recalculate()
		net := domain.NetFromGross(exp.AmountWithVAT)
		assert.True(t, net.Equal(exp.Amount), "amount %s: gross %s -> net %s", amount, exp.AmountWithVAT, net)
	}
}

func TestMilestone_RecalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		contract string
		want     string
	}{
		{name: "quarter of contract", amount: "25000", contract: "100000", want: "25"},
		{name: "rounded to two decimals", amount: "1", contract: "3", want: "33.33"},
		{name: "zero contract yields zero", amount: "25000", contract: "0", want: "0"},
		{name: "negative contract yields zero", amount: "25000", contract: "-1", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := domain.Milestone{Amount: decimal.RequireFromString(tt.amount)}
			m.RecalculatePercentage(decimal.RequireFromString(tt.contract))
			assert.True(t, m.Percentage.Equal(decimal.RequireFromString(tt.want)), "got %s", m.Percentage)
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Role
		wantErr bool
	}{
		{in: "user", want: domain.RoleUser},
		{in: "User", want: domain.RoleUser},
		{in: "admin", want: domain.RoleAdmin},
		{in: "Admin", want: domain.RoleAdmin},
		{in: "superAdmin", want: domain.RoleSuperAdmin},
		{in: "SuperAdmin", want: domain.RoleSuperAdmin},
		{in: "super_admin", want: domain.RoleSuperAdmin},
		{in: " admin ", want: domain.RoleAdmin},
		{in: "owner", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := domain.ParseRole(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
