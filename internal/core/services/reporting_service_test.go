package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/core/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockProjectRepo  *MockProjectRepository
	mockUserRepo     *MockUserRepository
	mockActivityRepo *MockActivityRepository
}

func (suite *ReportingServiceTestSuite) newService(perms *stubPermissionSvc) portssvc.ReportingService {
	return services.NewReportingService(suite.mockProjectRepo, suite.mockUserRepo, suite.mockActivityRepo, perms)
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockActivityRepo = new(MockActivityRepository)
}

func (suite *ReportingServiceTestSuite) TestFinancialReport_RequiresReportsView() {
	ctx := context.Background()
	service := suite.newService(allowOnly(domain.PermProjectsView))

	report, err := service.FinancialReport(ctx, dto.FinancialReportParams{}, "u1")

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReportingServiceTestSuite) TestFinancialReport_RestrictsToOwnProjects() {
	ctx := context.Background()
	service := suite.newService(&stubPermissionSvc{
		perms:  domain.NewPermissionSet(domain.PermReportsView),
		limits: domain.CustomLimits{MaxProjects: 10},
	})

	entryDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	projects := []domain.Project{
		{
			ProjectID: "mine", OwnerID: "u1", Name: "Mine",
			Incomes: []domain.Income{{Date: entryDate, Amount: decimal.NewFromInt(100)}},
		},
		{
			ProjectID: "theirs", OwnerID: "u2", Name: "Theirs",
			Incomes: []domain.Income{{Date: entryDate, Amount: decimal.NewFromInt(900)}},
		},
	}
	suite.mockProjectRepo.On("ListProjects", ctx).Return(projects, nil).Once()

	report, err := service.FinancialReport(ctx, dto.FinancialReportParams{
		StartDate: "2000-01-01",
		EndDate:   "2100-01-01",
	}, "u1")

	suite.Require().NoError(err)
	suite.Len(report.Projects, 1)
	suite.Equal("mine", report.Projects[0].ProjectID)
	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(100)))
}

func (suite *ReportingServiceTestSuite) TestFinancialReport_RejectsInvertedRange() {
	ctx := context.Background()
	service := suite.newService(allowAll())

	report, err := service.FinancialReport(ctx, dto.FinancialReportParams{
		StartDate: "2024-06-01",
		EndDate:   "2024-05-01",
	}, "u1")

	suite.Require().Error(err)
	suite.Nil(report)
}

func (suite *ReportingServiceTestSuite) TestDashboard_RequiresDashboardPermission() {
	ctx := context.Background()
	service := suite.newService(allowOnly(domain.PermReportsView))

	stats, err := service.Dashboard(ctx, dto.DashboardParams{}, "u1")

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReportingServiceTestSuite) TestDashboard_Success() {
	ctx := context.Background()
	service := suite.newService(allowAll())

	suite.mockProjectRepo.On("ListProjects", ctx).Return([]domain.Project{{ProjectID: "p1", OwnerID: "u1"}}, nil).Once()
	suite.mockUserRepo.On("ListUsers", ctx).Return([]domain.User{{UserID: "u1", IsActive: true}}, nil).Once()
	suite.mockActivityRepo.On("ListActivity", ctx).Return([]domain.ActivityLog{}, nil).Once()

	stats, err := service.Dashboard(ctx, dto.DashboardParams{Window: "30d"}, "u1")

	suite.Require().NoError(err)
	suite.Equal(1, stats.TotalProjects)
	suite.Equal(1, stats.TotalUsers)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
