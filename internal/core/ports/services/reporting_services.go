package services

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/ProLedger/project_ledger_app/internal/dto"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// FinancialReport builds the financial report for the given filters,
	// restricted to the projects the requesting user may see.
	FinancialReport(ctx context.Context, params dto.FinancialReportParams, requestingUserID string) (*domain.FinancialReport, error)

	// Dashboard builds the dashboard statistics for a rolling window.
	Dashboard(ctx context.Context, params dto.DashboardParams, requestingUserID string) (*domain.DashboardStats, error)
}
