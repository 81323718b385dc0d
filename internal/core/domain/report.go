package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ReportFilter is the configuration record for the financial report.
// The end date is inclusive through 23:59:59.999 of that day.
type ReportFilter struct {
	StartDate       time.Time
	EndDate         time.Time
	ProjectIDs      []string // empty = all
	OwnerIDs        []string // ignored for non-privileged callers
	IncludeArchived bool
}

// ReportViewer identifies the caller for visibility purposes. A
// non-privileged viewer only ever sees projects they own; that restriction
// is applied before any caller-supplied filter and cannot be overridden.
type ReportViewer struct {
	UserID     string
	Privileged bool
}

// ProjectSummary is the per-project slice of a financial report.
type ProjectSummary struct {
	ProjectID      string          `json:"projectID"`
	Name           string          `json:"name"`
	OwnerID        string          `json:"ownerID"`
	ContractAmount decimal.Decimal `json:"contractAmount"`
	Revenue        decimal.Decimal `json:"revenue"`
	Expenses       decimal.Decimal `json:"expenses"`
	Profit         decimal.Decimal `json:"profit"`
	// ProfitMargin is profit relative to revenue (percent). This is
	// deliberately a different ratio from the dashboard's profitability
	// rate, which divides by contract amount.
	ProfitMargin decimal.Decimal `json:"profitMargin"`
}

// MonthlyPoint is one calendar month of the report series, keyed YYYY-MM.
type MonthlyPoint struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategoryBreakdown is one expense category's share of total expenses.
type CategoryBreakdown struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// FinancialReport is the read-only output of the aggregation engine.
type FinancialReport struct {
	TotalRevenue      decimal.Decimal     `json:"totalRevenue"`
	TotalExpenses     decimal.Decimal     `json:"totalExpenses"`
	TotalProfit       decimal.Decimal     `json:"totalProfit"`
	TotalProfitMargin decimal.Decimal     `json:"totalProfitMargin"`
	Projects          []ProjectSummary    `json:"projects"`
	Monthly           []MonthlyPoint      `json:"monthly"`
	Categories        []CategoryBreakdown `json:"categories"`
}

// DefaultReportRange is the standing advanced-report window: January 1st of
// the current year through today.
func DefaultReportRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return start, now
}

// endOfDay pushes a date to 23:59:59.999 so end-date comparisons are
// inclusive for the whole day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

func inRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

func stringSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// visibleProjects applies, in order: the archive flag, the ownership
// visibility rule, the explicit project-id set and the explicit owner-id
// set. Inputs are not mutated.
func visibleProjects(projects []Project, f ReportFilter, viewer ReportViewer) []Project {
	projectIDs := stringSet(f.ProjectIDs)
	ownerIDs := stringSet(f.OwnerIDs)

	var out []Project
	for _, p := range projects {
		if p.IsArchived && !f.IncludeArchived {
			continue
		}
		// Ownership restriction comes before any caller-supplied filter;
		// a non-privileged owner filter is ignored entirely.
		if !viewer.Privileged {
			if p.OwnerID != viewer.UserID {
				continue
			}
		} else if ownerIDs != nil {
			if _, ok := ownerIDs[p.OwnerID]; !ok {
				continue
			}
		}
		if projectIDs != nil {
			if _, ok := projectIDs[p.ProjectID]; !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// BuildFinancialReport derives the financial report from a raw project
// snapshot. It is a pure function of its inputs: no I/O, no mutation, and
// empty inputs produce a report with all sums at zero.
func BuildFinancialReport(projects []Project, f ReportFilter, viewer ReportViewer) FinancialReport {
	start := f.StartDate
	end := endOfDay(f.EndDate)

	report := FinancialReport{
		TotalRevenue:      decimal.Zero,
		TotalExpenses:     decimal.Zero,
		TotalProfit:       decimal.Zero,
		TotalProfitMargin: decimal.Zero,
	}

	type monthAgg struct {
		revenue  decimal.Decimal
		expenses decimal.Decimal
	}
	months := map[string]*monthAgg{}
	categories := map[string]decimal.Decimal{}

	for _, p := range visibleProjects(projects, f, viewer) {
		revenue := decimal.Zero
		for _, inc := range p.Incomes {
			if !inRange(inc.Date, start, end) {
				continue
			}
			revenue = revenue.Add(inc.Amount)
			key := inc.Date.Format("2006-01")
			agg, ok := months[key]
			if !ok {
				agg = &monthAgg{revenue: decimal.Zero, expenses: decimal.Zero}
				months[key] = agg
			}
			agg.revenue = agg.revenue.Add(inc.Amount)
		}

		expenses := decimal.Zero
		for _, exp := range p.Expenses {
			if !inRange(exp.Date, start, end) {
				continue
			}
			expenses = expenses.Add(exp.Amount)
			key := exp.Date.Format("2006-01")
			agg, ok := months[key]
			if !ok {
				agg = &monthAgg{revenue: decimal.Zero, expenses: decimal.Zero}
				months[key] = agg
			}
			agg.expenses = agg.expenses.Add(exp.Amount)
			categories[exp.Category] = categories[exp.Category].Add(exp.Amount)
		}

		profit := revenue.Sub(expenses)
		margin := decimal.Zero
		if revenue.IsPositive() {
			margin = profit.Div(revenue).Mul(hundred).Round(2)
		}

		report.Projects = append(report.Projects, ProjectSummary{
			ProjectID:      p.ProjectID,
			Name:           p.Name,
			OwnerID:        p.OwnerID,
			ContractAmount: p.ContractAmount,
			Revenue:        revenue,
			Expenses:       expenses,
			Profit:         profit,
			ProfitMargin:   margin,
		})

		report.TotalRevenue = report.TotalRevenue.Add(revenue)
		report.TotalExpenses = report.TotalExpenses.Add(expenses)
	}

	report.TotalProfit = report.TotalRevenue.Sub(report.TotalExpenses)
	if report.TotalRevenue.IsPositive() {
		report.TotalProfitMargin = report.TotalProfit.Div(report.TotalRevenue).Mul(hundred).Round(2)
	}

	// Project breakdown: most profitable first.
	sort.SliceStable(report.Projects, func(i, j int) bool {
		return report.Projects[i].Profit.GreaterThan(report.Projects[j].Profit)
	})

	// Monthly series: ascending by YYYY-MM key.
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		report.Monthly = append(report.Monthly, MonthlyPoint{
			Month:    k,
			Revenue:  months[k].revenue,
			Expenses: months[k].expenses,
		})
	}

	// Category breakdown: descending by amount, share of total expenses.
	for cat, amount := range categories {
		pct := decimal.Zero
		if report.TotalExpenses.IsPositive() {
			pct = amount.Div(report.TotalExpenses).Mul(hundred).Round(2)
		}
		report.Categories = append(report.Categories, CategoryBreakdown{
			Category:   cat,
			Amount:     amount,
			Percentage: pct,
		})
	}
	sort.SliceStable(report.Categories, func(i, j int) bool {
		if !report.Categories[i].Amount.Equal(report.Categories[j].Amount) {
			return report.Categories[i].Amount.GreaterThan(report.Categories[j].Amount)
		}
		return report.Categories[i].Category < report.Categories[j].Category
	})

	return report
}
