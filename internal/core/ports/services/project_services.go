package services

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/ProLedger/project_ledger_app/internal/dto"
)

// ProjectReaderSvc defines read operations for projects.
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a project, enforcing ownership visibility.
	GetProjectByID(ctx context.Context, projectID string, requestingUserID string) (*domain.Project, error)

	// ListProjects retrieves the projects visible to the requesting user.
	// Non-privileged users without the view-others permission only see their own.
	ListProjects(ctx context.Context, requestingUserID string, includeArchived bool) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations for projects.
type ProjectWriterSvc interface {
	// CreateProject creates a new project, enforcing the creator's project limit.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)

	// UpdateProject updates an existing project.
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error)

	// SetProjectArchived toggles the archived flag of a project.
	SetProjectArchived(ctx context.Context, projectID string, archived bool, requestingUserID string) (*domain.Project, error)

	// DeleteProject removes a project and its nested records.
	DeleteProject(ctx context.Context, projectID string, requestingUserID string) error
}

// ProjectIncomeSvc manages income entries nested under a project.
type ProjectIncomeSvc interface {
	AddIncome(ctx context.Context, projectID string, req dto.CreateIncomeRequest, requestingUserID string) (*domain.Income, error)
	UpdateIncome(ctx context.Context, projectID, incomeID string, req dto.UpdateIncomeRequest, requestingUserID string) (*domain.Income, error)
	DeleteIncome(ctx context.Context, projectID, incomeID string, requestingUserID string) error
}

// ProjectExpenseSvc manages expense entries nested under a project.
type ProjectExpenseSvc interface {
	AddExpense(ctx context.Context, projectID string, req dto.CreateExpenseRequest, requestingUserID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, projectID, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, projectID, expenseID string, requestingUserID string) error
}

// ProjectMilestoneSvc manages milestones nested under a project.
type ProjectMilestoneSvc interface {
	AddMilestone(ctx context.Context, projectID string, req dto.CreateMilestoneRequest, requestingUserID string) (*domain.Milestone, error)
	UpdateMilestone(ctx context.Context, projectID, milestoneID string, req dto.UpdateMilestoneRequest, requestingUserID string) (*domain.Milestone, error)
	DeleteMilestone(ctx context.Context, projectID, milestoneID string, requestingUserID string) error
}

// ProjectSupplierSvc manages supplier assignments on a project.
type ProjectSupplierSvc interface {
	AddProjectSupplier(ctx context.Context, projectID string, req dto.AddProjectSupplierRequest, requestingUserID string) (*domain.ProjectSupplier, error)
	RemoveProjectSupplier(ctx context.Context, projectID, supplierID string, requestingUserID string) error
}

// ProjectSvcFacade combines all project-related service interfaces.
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
	ProjectIncomeSvc
	ProjectExpenseSvc
	ProjectMilestoneSvc
	ProjectSupplierSvc
}
