package domain_test

import (
	"testing"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func yearFilter(year int) domain.ReportFilter {
	return domain.ReportFilter{
		StartDate: date(year, time.January, 1),
		EndDate:   date(year, time.December, 31),
	}
}

func privileged(userID string) domain.ReportViewer {
	return domain.ReportViewer{UserID: userID, Privileged: true}
}

func TestBuildFinancialReport_SingleProject(t *testing.T) {
	// A contract of 100000 with one income of 50000 and one Materials
	// expense of 20000 in range.
	projects := []domain.Project{
		{
			ProjectID:      "p1",
			Name:           "Renovation",
			OwnerID:        "u1",
			ContractAmount: d("100000"),
			Incomes: []domain.Income{
				{IncomeID: "i1", Date: date(2024, time.March, 10), Amount: d("50000")},
			},
			Expenses: []domain.Expense{
				{ExpenseID: "e1", Date: date(2024, time.April, 2), Category: "Materials", Amount: d("20000")},
			},
		},
	}

	report := domain.BuildFinancialReport(projects, yearFilter(2024), privileged("u1"))

	assert.True(t, report.TotalRevenue.Equal(d("50000")))
	assert.True(t, report.TotalExpenses.Equal(d("20000")))
	assert.True(t, report.TotalProfit.Equal(d("30000")))
	assert.True(t, report.TotalProfitMargin.Equal(d("60")), "margin = %s", report.TotalProfitMargin)

	require.Len(t, report.Projects, 1)
	assert.True(t, report.Projects[0].Profit.Equal(d("30000")))
	assert.True(t, report.Projects[0].ProfitMargin.Equal(d("60")))

	require.Len(t, report.Categories, 1)
	assert.Equal(t, "Materials", report.Categories[0].Category)
	assert.True(t, report.Categories[0].Amount.Equal(d("20000")))
	assert.True(t, report.Categories[0].Percentage.Equal(d("100")))

	require.Len(t, report.Monthly, 2)
	assert.Equal(t, "2024-03", report.Monthly[0].Month)
	assert.True(t, report.Monthly[0].Revenue.Equal(d("50000")))
	assert.Equal(t, "2024-04", report.Monthly[1].Month)
	assert.True(t, report.Monthly[1].Expenses.Equal(d("20000")))
}

func TestBuildFinancialReport_EmptyInputs(t *testing.T) {
	report := domain.BuildFinancialReport(nil, yearFilter(2024), privileged("u1"))

	assert.True(t, report.TotalRevenue.IsZero())
	assert.True(t, report.TotalExpenses.IsZero())
	assert.True(t, report.TotalProfit.IsZero())
	assert.True(t, report.TotalProfitMargin.IsZero())
	assert.Empty(t, report.Projects)
	assert.Empty(t, report.Monthly)
	assert.Empty(t, report.Categories)
}

func TestBuildFinancialReport_EndDateInclusive(t *testing.T) {
	// A transaction dated exactly on the end date must be counted through
	// 23:59:59.999 of that day.
	projects := []domain.Project{
		{
			ProjectID: "p1",
			OwnerID:   "u1",
			Incomes: []domain.Income{
				{IncomeID: "i1", Date: date(2024, time.January, 31), Amount: d("100")},
				{IncomeID: "i2", Date: time.Date(2024, time.January, 31, 18, 30, 0, 0, time.UTC), Amount: d("50")},
				{IncomeID: "i3", Date: date(2024, time.February, 1), Amount: d("999")},
			},
		},
	}

	f := domain.ReportFilter{
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.January, 31),
	}
	report := domain.BuildFinancialReport(projects, f, privileged("u1"))
	assert.True(t, report.TotalRevenue.Equal(d("150")), "got %s", report.TotalRevenue)
}

func TestBuildFinancialReport_OwnershipRestriction(t *testing.T) {
	projects := []domain.Project{
		{ProjectID: "mine", OwnerID: "u1", Incomes: []domain.Income{{Date: date(2024, time.June, 1), Amount: d("10")}}},
		{ProjectID: "theirs", OwnerID: "u2", Incomes: []domain.Income{{Date: date(2024, time.June, 1), Amount: d("99")}}},
	}

	// A non-privileged caller never sees another owner's project, even when
	// explicitly asking for that owner.
	f := yearFilter(2024)
	f.OwnerIDs = []string{"u2"}
	report := domain.BuildFinancialReport(projects, f, domain.ReportViewer{UserID: "u1"})

	require.Len(t, report.Projects, 1)
	assert.Equal(t, "mine", report.Projects[0].ProjectID)
	assert.True(t, report.TotalRevenue.Equal(d("10")))

	// The same filter works for a privileged caller.
	report = domain.BuildFinancialReport(projects, f, privileged("u1"))
	require.Len(t, report.Projects, 1)
	assert.Equal(t, "theirs", report.Projects[0].ProjectID)
}

func TestBuildFinancialReport_ArchiveAndProjectFilter(t *testing.T) {
	projects := []domain.Project{
		{ProjectID: "a", OwnerID: "u1"},
		{ProjectID: "b", OwnerID: "u1", IsArchived: true},
		{ProjectID: "c", OwnerID: "u1"},
	}

	f := yearFilter(2024)
	report := domain.BuildFinancialReport(projects, f, privileged("u1"))
	assert.Len(t, report.Projects, 2)

	f.IncludeArchived = true
	report = domain.BuildFinancialReport(projects, f, privileged("u1"))
	assert.Len(t, report.Projects, 3)

	f.ProjectIDs = []string{"b"}
	report = domain.BuildFinancialReport(projects, f, privileged("u1"))
	require.Len(t, report.Projects, 1)
	assert.Equal(t, "b", report.Projects[0].ProjectID)
}

func TestBuildFinancialReport_TotalsExactAndBreakdownSorted(t *testing.T) {
	projects := []domain.Project{
		{
			ProjectID: "p1", OwnerID: "u1",
			Incomes: []domain.Income{{Date: date(2024, time.May, 5), Amount: d("1000.10")}},
			Expenses: []domain.Expense{
				{Date: date(2024, time.May, 6), Category: "Materials", Amount: d("300.05")},
				{Date: date(2024, time.May, 7), Category: "Labor", Amount: d("450.15")},
			},
		},
		{
			ProjectID: "p2", OwnerID: "u2",
			Incomes:  []domain.Income{{Date: date(2024, time.May, 8), Amount: d("2000.33")}},
			Expenses: []domain.Expense{{Date: date(2024, time.May, 9), Category: "Materials", Amount: d("100.20")}},
		},
	}

	report := domain.BuildFinancialReport(projects, yearFilter(2024), privileged("u1"))

	// No rounding drift: totals relate exactly.
	assert.True(t, report.TotalProfit.Equal(report.TotalRevenue.Sub(report.TotalExpenses)))

	// Categories descend by amount and percentages sum to ~100.
	require.Len(t, report.Categories, 2)
	assert.Equal(t, "Labor", report.Categories[0].Category)
	assert.Equal(t, "Materials", report.Categories[1].Category)
	pctSum := report.Categories[0].Percentage.Add(report.Categories[1].Percentage)
	diff := pctSum.Sub(d("100")).Abs()
	assert.True(t, diff.LessThanOrEqual(d("0.02")), "percentages sum to %s", pctSum)

	// Projects descend by profit.
	require.Len(t, report.Projects, 2)
	assert.Equal(t, "p2", report.Projects[0].ProjectID)
}

func TestBuildDashboardStats(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	recentLogin := now.Add(-2 * time.Minute)
	staleLogin := now.Add(-2 * time.Hour)

	projects := []domain.Project{
		{
			ProjectID: "p1", OwnerID: "u1", Name: "Tower", ContractAmount: d("100000"),
			Incomes:     []domain.Income{{Amount: d("60000")}},
			Expenses:    []domain.Expense{{Amount: d("10000"), Category: "Materials"}},
			AuditFields: domain.AuditFields{CreatedAt: now.Add(-24 * time.Hour)},
		},
		{
			ProjectID: "p2", OwnerID: "u2", Name: "Bridge", ContractAmount: d("50000"),
			Incomes:     []domain.Income{{Amount: d("10000")}},
			Expenses:    []domain.Expense{{Amount: d("15000"), Category: "Labor"}},
			IsArchived:  true,
			AuditFields: domain.AuditFields{CreatedAt: now.Add(-200 * 24 * time.Hour)},
		},
	}
	users := []domain.User{
		{UserID: "u1", Username: "dana", IsActive: true, LastLoginAt: &recentLogin, AuditFields: domain.AuditFields{CreatedAt: now.Add(-48 * time.Hour)}},
		{UserID: "u2", Username: "omer", IsActive: false, LastLoginAt: &staleLogin, AuditFields: domain.AuditFields{CreatedAt: now.Add(-400 * 24 * time.Hour)}},
	}
	activity := []domain.ActivityLog{
		{ActivityID: "a1", Timestamp: now.Add(-time.Hour)},
		{ActivityID: "a2", Timestamp: now.Add(-40 * 24 * time.Hour)},
	}

	stats := domain.BuildDashboardStats(projects, users, activity, domain.Window30Days, now)

	assert.Equal(t, 2, stats.TotalProjects)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 1, stats.ArchivedProjects)
	assert.Equal(t, 1, stats.RecentProjects)

	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveUsers)
	assert.Equal(t, 1, stats.RecentUsers)
	assert.Equal(t, 1, stats.OnlineUsers)

	assert.Equal(t, 2, stats.TotalActivity)
	assert.Equal(t, 1, stats.RecentActivity)
	assert.Equal(t, 1, stats.TodayActivity)

	require.Len(t, stats.TopUsers, 2)
	assert.Equal(t, "u1", stats.TopUsers[0].UserID)
	assert.True(t, stats.TopUsers[0].Profit.Equal(d("50000")))
	assert.Equal(t, "u2", stats.TopUsers[1].UserID)
	assert.True(t, stats.TopUsers[1].Profit.Equal(d("-5000")))

	// Profitability rate divides by contract amount, not revenue.
	require.Len(t, stats.Profitability, 2)
	assert.Equal(t, "p1", stats.Profitability[0].ProjectID)
	assert.True(t, stats.Profitability[0].ProfitabilityRate.Equal(d("50")), "got %s", stats.Profitability[0].ProfitabilityRate)
}

func TestBuildDashboardStats_TopUsersCappedAtFive(t *testing.T) {
	var projects []domain.Project
	for i := 0; i < 8; i++ {
		projects = append(projects, domain.Project{
			ProjectID: string(rune('a' + i)),
			OwnerID:   string(rune('A' + i)),
			Incomes:   []domain.Income{{Amount: decimal.NewFromInt(int64(100 * (i + 1)))}},
		})
	}
	stats := domain.BuildDashboardStats(projects, nil, nil, domain.Window7Days, time.Now())
	require.Len(t, stats.TopUsers, 5)
	assert.True(t, stats.TopUsers[0].Profit.Equal(d("800")))
}
