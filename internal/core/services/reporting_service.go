package services

import (
	"context"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
)

// reportingService implements the ReportingService interface. The report
// math itself lives in the domain package; this service resolves the
// caller's visibility and feeds the pure builders.
type reportingService struct {
	BaseService
	projectRepo   portsrepo.ProjectReader
	userRepo      portsrepo.UserReader
	activityRepo  portsrepo.ActivityRepositoryFacade
	permissionSvc portssvc.PermissionSvcFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	projectRepo portsrepo.ProjectReader,
	userRepo portsrepo.UserReader,
	activityRepo portsrepo.ActivityRepositoryFacade,
	permissionSvc portssvc.PermissionSvcFacade,
) portssvc.ReportingService {
	return &reportingService{
		projectRepo:   projectRepo,
		userRepo:      userRepo,
		activityRepo:  activityRepo,
		permissionSvc: permissionSvc,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// viewer resolves whether the user may see projects beyond their own.
func (s *reportingService) viewer(ctx context.Context, userID string) (domain.ReportViewer, error) {
	hasViewOthers, err := s.permissionSvc.HasPermission(ctx, userID, domain.PermProjectsViewOthers)
	if err != nil {
		return domain.ReportViewer{}, err
	}
	if !hasViewOthers {
		limits, err := s.permissionSvc.GetEffectiveLimits(ctx, userID)
		if err != nil {
			return domain.ReportViewer{}, err
		}
		hasViewOthers = limits.CanViewOthersProjects
	}
	return domain.ReportViewer{UserID: userID, Privileged: hasViewOthers}, nil
}

// FinancialReport builds the financial report for the given filters.
func (s *reportingService) FinancialReport(ctx context.Context, params dto.FinancialReportParams, requestingUserID string) (*domain.FinancialReport, error) {
	allowed, err := s.permissionSvc.HasPermission(ctx, requestingUserID, domain.PermReportsView)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	filter, err := toReportFilter(params)
	if err != nil {
		return nil, err
	}

	viewer, err := s.viewer(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects for report")
		return nil, err
	}

	report := domain.BuildFinancialReport(projects, filter, viewer)
	return &report, nil
}

// Dashboard builds the dashboard statistics for a rolling window.
func (s *reportingService) Dashboard(ctx context.Context, params dto.DashboardParams, requestingUserID string) (*domain.DashboardStats, error) {
	allowed, err := s.permissionSvc.HasPermission(ctx, requestingUserID, domain.PermReportsDashboard)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects for dashboard")
		return nil, err
	}
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users for dashboard")
		return nil, err
	}
	activity, err := s.activityRepo.ListActivity(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list activity for dashboard")
		return nil, err
	}

	stats := domain.BuildDashboardStats(projects, users, activity, domain.DashboardWindow(params.Window), time.Now())
	return &stats, nil
}

// toReportFilter parses the date strings and falls back to the default
// range (January 1st of the current year through today) when absent.
func toReportFilter(params dto.FinancialReportParams) (domain.ReportFilter, error) {
	filter := domain.ReportFilter{
		ProjectIDs:      params.ProjectIDs,
		OwnerIDs:        params.OwnerIDs,
		IncludeArchived: params.IncludeArchived,
	}

	defaultStart, defaultEnd := domain.DefaultReportRange(time.Now())
	filter.StartDate = defaultStart
	filter.EndDate = defaultEnd

	if params.StartDate != "" {
		start, err := time.Parse("2006-01-02", params.StartDate)
		if err != nil {
			return filter, apperrors.NewBadRequestError("invalid startDate")
		}
		filter.StartDate = start
	}
	if params.EndDate != "" {
		end, err := time.Parse("2006-01-02", params.EndDate)
		if err != nil {
			return filter, apperrors.NewBadRequestError("invalid endDate")
		}
		filter.EndDate = end
	}
	if filter.EndDate.Before(filter.StartDate) {
		return filter, apperrors.NewBadRequestError("endDate precedes startDate")
	}
	return filter, nil
}
