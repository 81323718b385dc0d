package dto

// FinancialReportParams holds the query filters for the financial report.
// Dates use YYYY-MM-DD; the end date is inclusive.
type FinancialReportParams struct {
	StartDate       string   `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate         string   `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	ProjectIDs      []string `form:"projectId"`
	OwnerIDs        []string `form:"ownerId"`
	IncludeArchived bool     `form:"includeArchived"`
}

// DashboardParams selects the rolling window for dashboard statistics.
type DashboardParams struct {
	Window string `form:"window" binding:"omitempty,oneof=7d 30d 90d 1y"`
}
