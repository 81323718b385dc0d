package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/google/uuid"
)

// projectService implements the ProjectSvcFacade interface. Projects are
// whole documents in the backing store, so nested records are always
// persisted by updating their project.
type projectService struct {
	BaseService
	projectRepo   portsrepo.ProjectRepositoryFacade
	supplierRepo  portsrepo.SupplierRepositoryFacade
	permissionSvc portssvc.PermissionSvcFacade
	activitySvc   portssvc.ActivitySvcFacade
}

// NewProjectService creates a new project service with the provided dependencies.
func NewProjectService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	supplierRepo portsrepo.SupplierRepositoryFacade,
	permissionSvc portssvc.PermissionSvcFacade,
	activitySvc portssvc.ActivitySvcFacade,
) portssvc.ProjectSvcFacade {
	return &projectService{
		projectRepo:   projectRepo,
		supplierRepo:  supplierRepo,
		permissionSvc: permissionSvc,
		activitySvc:   activitySvc,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// canSeeOthers reports whether the user may see projects they do not own.
func (s *projectService) canSeeOthers(ctx context.Context, userID string) (bool, error) {
	hasPerm, err := s.permissionSvc.HasPermission(ctx, userID, domain.PermProjectsViewOthers)
	if err != nil {
		return false, err
	}
	if hasPerm {
		return true, nil
	}
	limits, err := s.permissionSvc.GetEffectiveLimits(ctx, userID)
	if err != nil {
		return false, err
	}
	return limits.CanViewOthersProjects, nil
}

// requirePermission returns ErrForbidden unless the user holds the permission.
func (s *projectService) requirePermission(ctx context.Context, userID, permissionID string) error {
	allowed, err := s.permissionSvc.HasPermission(ctx, userID, permissionID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}
	return nil
}

// loadVisibleProject fetches a project and enforces ownership visibility.
// A project hidden from the user is reported as not found rather than
// forbidden so its existence is not leaked.
func (s *projectService) loadVisibleProject(ctx context.Context, projectID, requestingUserID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != requestingUserID {
		seeOthers, err := s.canSeeOthers(ctx, requestingUserID)
		if err != nil {
			return nil, err
		}
		if !seeOthers {
			return nil, apperrors.ErrNotFound
		}
	}
	return project, nil
}

// GetProjectByID retrieves a project, enforcing ownership visibility.
func (s *projectService) GetProjectByID(ctx context.Context, projectID string, requestingUserID string) (*domain.Project, error) {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsView); err != nil {
		return nil, err
	}
	return s.loadVisibleProject(ctx, projectID, requestingUserID)
}

// ListProjects retrieves the projects visible to the requesting user.
func (s *projectService) ListProjects(ctx context.Context, requestingUserID string, includeArchived bool) ([]domain.Project, error) {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsView); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, err
	}

	seeOthers, err := s.canSeeOthers(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.IsArchived && !includeArchived {
			continue
		}
		if !seeOthers && p.OwnerID != requestingUserID {
			continue
		}
		visible = append(visible, p)
	}
	return visible, nil
}

// CreateProject creates a new project, enforcing the creator's project limit.
func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	if err := s.requirePermission(ctx, creatorUserID, domain.PermProjectsCreate); err != nil {
		return nil, err
	}

	ownerID := creatorUserID
	if req.OwnerID != "" && req.OwnerID != creatorUserID {
		seeOthers, err := s.canSeeOthers(ctx, creatorUserID)
		if err != nil {
			return nil, err
		}
		if !seeOthers {
			return nil, apperrors.ErrForbidden
		}
		ownerID = req.OwnerID
	}

	limits, err := s.permissionSvc.GetEffectiveLimits(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	owned, err := s.countOwnedProjects(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !limits.AllowsProjects(owned) {
		return nil, fmt.Errorf("%w: project limit of %d reached", apperrors.ErrForbidden, limits.MaxProjects)
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:      uuid.NewString(),
		Name:           req.Name,
		OwnerID:        ownerID,
		OrganizationID: req.OrganizationID,
		ContractAmount: req.ContractAmount,
		Incomes:        []domain.Income{},
		Expenses:       []domain.Expense{},
		Milestones:     []domain.Milestone{},
		Suppliers:      []domain.ProjectSupplier{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("project_id", project.ProjectID))
		return nil, err
	}

	s.logActivity(ctx, creatorUserID, "project.created", domain.EntityProject, project.ProjectID, fmt.Sprintf("Created project %s", project.Name))
	s.LogInfo(ctx, "Project created successfully", slog.String("project_id", project.ProjectID))
	return &project, nil
}

// UpdateProject updates an existing project.
func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error) {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsEdit); err != nil {
		return nil, err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.OwnerID != nil {
		project.OwnerID = *req.OwnerID
	}
	if req.ContractAmount != nil {
		project.ContractAmount = *req.ContractAmount
		// Milestone shares are derived from the contract amount, so they
		// all shift when it changes.
		for idx := range project.Milestones {
			project.Milestones[idx].RecalculatePercentage(project.ContractAmount)
		}
	}

	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "project.updated", domain.EntityProject, projectID, fmt.Sprintf("Updated project %s", project.Name))
	return project, nil
}

// SetProjectArchived toggles the archived flag of a project.
func (s *projectService) SetProjectArchived(ctx context.Context, projectID string, archived bool, requestingUserID string) (*domain.Project, error) {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsArchive); err != nil {
		return nil, err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return nil, err
	}

	project.IsArchived = archived
	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return nil, err
	}

	action := "project.archived"
	if !archived {
		action = "project.unarchived"
	}
	s.logActivity(ctx, requestingUserID, action, domain.EntityProject, projectID, fmt.Sprintf("Set archived=%t on project %s", archived, project.Name))
	return project, nil
}

// DeleteProject removes a project and its nested records.
func (s *projectService) DeleteProject(ctx context.Context, projectID string, requestingUserID string) error {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsDelete); err != nil {
		return err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return err
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}

	s.logActivity(ctx, requestingUserID, "project.deleted", domain.EntityProject, projectID, fmt.Sprintf("Deleted project %s", project.Name))
	return nil
}

// AddIncome appends an income entry to a project.
func (s *projectService) AddIncome(ctx context.Context, projectID string, req dto.CreateIncomeRequest, requestingUserID string) (*domain.Income, error) {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsEdit); err != nil {
		return nil, err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return nil, err
	}

	date, err := parseRecordDate(req.Date)
	if err != nil {
		return nil, err
	}

	income := domain.Income{
		IncomeID:      uuid.NewString(),
		Date:          date,
		Description:   req.Description,
		Amount:        req.Amount,
		PaidAmount:    req.PaidAmount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if req.ActualPaymentDate != "" {
		paid, err := parseRecordDate(req.ActualPaymentDate)
		if err != nil {
			return nil, err
		}
		income.ActualPaymentDate = &paid
	}
	income.Recalculate()

	project.Incomes = append(project.Incomes, income)
	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "income.created", domain.EntityIncome, income.IncomeID, fmt.Sprintf("Added income %s to project %s", income.Description, project.Name))
	return &income, nil
}

// UpdateIncome updates an income entry and refreshes its derived fields.
func (s *projectService) UpdateIncome(ctx context.Context, projectID, incomeID string, req dto.UpdateIncomeRequest, requestingUserID string) (*domain.Income, error) {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsEdit); err != nil {
		return nil, err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return nil, err
	}

	income := project.FindIncome(incomeID)
	if income == nil {
		return nil, apperrors.ErrNotFound
	}

	if req.Date != nil {
		date, err := parseRecordDate(*req.Date)
		if err != nil {
			return nil, err
		}
		income.Date = date
	}
	if req.Description != nil {
		income.Description = *req.Description
	}
	if req.Amount != nil {
		income.Amount = *req.Amount
	}
	if req.PaidAmount != nil {
		income.PaidAmount = *req.PaidAmount
	}
	if req.PaymentMethod != nil {
		income.PaymentMethod = *req.PaymentMethod
	}
	if req.ActualPaymentDate != nil {
		if *req.ActualPaymentDate == "" {
			income.ActualPaymentDate = nil
		} else {
			paid, err := parseRecordDate(*req.ActualPaymentDate)
			if err != nil {
				return nil, err
			}
			income.ActualPaymentDate = &paid
		}
	}
	if req.Notes != nil {
		income.Notes = *req.Notes
	}
	income.Recalculate()

	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "income.updated", domain.EntityIncome, incomeID, fmt.Sprintf("Updated income on project %s", project.Name))
	return income, nil
}

// DeleteIncome removes an income entry from a project.
func (s *projectService) DeleteIncome(ctx context.Context, projectID, incomeID string, requestingUserID string) error {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsEdit); err != nil {
		return err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range project.Incomes {
		if project.Incomes[i].IncomeID == incomeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	project.Incomes = append(project.Incomes[:idx], project.Incomes[idx+1:]...)

	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return err
	}

	s.logActivity(ctx, requestingUserID, "income.deleted", domain.EntityIncome, incomeID, fmt.Sprintf("Deleted income from project %s", project.Name))
	return nil
}

// AddExpense appends an expense entry to a project. The VAT-inclusive
// amount is always derived server-side.
func (s *projectService) AddExpense(ctx context.Context, projectID string, req dto.CreateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsEdit); err != nil {
		return nil, err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return nil, err
	}

	date, err := parseRecordDate(req.Date)
	if err != nil {
		return nil, err
	}

	expenseType := domain.ExpenseType(req.ExpenseType)
	if expenseType == "" {
		expenseType = domain.ExpenseRegular
	}

	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Date:          date,
		SupplierID:    req.SupplierID,
		Description:   req.Description,
		Amount:        req.Amount,
		HasVAT:        req.HasVAT,
		HasInvoice:    req.HasInvoice,
		InvoiceNumber: req.InvoiceNumber,
		ExpenseType:   expenseType,
		Notes:         req.Notes,
	}
	expense.Recalculate()

	project.Expenses = append(project.Expenses, expense)
	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "expense.created", domain.EntityExpense, expense.ExpenseID, fmt.Sprintf("Added expense %s to project %s", expense.Description, project.Name))
	return &expense, nil
}

// UpdateExpense updates an expense entry and refreshes its derived fields.
func (s *projectService) UpdateExpense(ctx context.Context, projectID, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsEdit); err != nil {
		return nil, err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return nil, err
	}

	expense := project.FindExpense(expenseID)
	if expense == nil {
		return nil, apperrors.ErrNotFound
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Subcategory != nil {
		expense.Subcategory = *req.Subcategory
	}
	if req.Date != nil {
		date, err := parseRecordDate(*req.Date)
		if err != nil {
			return nil, err
		}
		expense.Date = date
	}
	if req.SupplierID != nil {
		expense.SupplierID = *req.SupplierID
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.HasVAT != nil {
		expense.HasVAT = *req.HasVAT
	}
	if req.HasInvoice != nil {
		expense.HasInvoice = *req.HasInvoice
	}
	if req.InvoiceNumber != nil {
		expense.InvoiceNumber = *req.InvoiceNumber
	}
	if req.ExpenseType != nil {
		expense.ExpenseType = domain.ExpenseType(*req.ExpenseType)
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.Recalculate()

	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "expense.updated", domain.EntityExpense, expenseID, fmt.Sprintf("Updated expense on project %s", project.Name))
	return expense, nil
}

// DeleteExpense removes an expense entry from a project.
func (s *projectService) DeleteExpense(ctx context.Context, projectID, expenseID string, requestingUserID string) error {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsEdit); err != nil {
		return err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range project.Expenses {
		if project.Expenses[i].ExpenseID == expenseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	project.Expenses = append(project.Expenses[:idx], project.Expenses[idx+1:]...)

	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return err
	}

	s.logActivity(ctx, requestingUserID, "expense.deleted", domain.EntityExpense, expenseID, fmt.Sprintf("Deleted expense from project %s", project.Name))
	return nil
}

// AddMilestone appends a milestone to a project. Its contract share is
// derived from the amount.
func (s *projectService) AddMilestone(ctx context.Context, projectID string, req dto.CreateMilestoneRequest, requestingUserID string) (*domain.Milestone, error) {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsEdit); err != nil {
		return nil, err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return nil, err
	}

	status := domain.MilestoneStatus(req.Status)
	if status == "" {
		status = domain.MilestonePending
	}

	milestone := domain.Milestone{
		MilestoneID: uuid.NewString(),
		Name:        req.Name,
		Amount:      req.Amount,
		Status:      status,
	}
	if req.TargetDate != "" {
		target, err := parseRecordDate(req.TargetDate)
		if err != nil {
			return nil, err
		}
		milestone.TargetDate = &target
	}
	milestone.RecalculatePercentage(project.ContractAmount)

	project.Milestones = append(project.Milestones, milestone)
	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "milestone.created", domain.EntityMilestone, milestone.MilestoneID, fmt.Sprintf("Added milestone %s to project %s", milestone.Name, project.Name))
	return &milestone, nil
}

// UpdateMilestone updates a milestone and refreshes its contract share.
func (s *projectService) UpdateMilestone(ctx context.Context, projectID, milestoneID string, req dto.UpdateMilestoneRequest, requestingUserID string) (*domain.Milestone, error) {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsEdit); err != nil {
		return nil, err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return nil, err
	}

	milestone := project.FindMilestone(milestoneID)
	if milestone == nil {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		milestone.Name = *req.Name
	}
	if req.Amount != nil {
		milestone.Amount = *req.Amount
	}
	if req.TargetDate != nil {
		if *req.TargetDate == "" {
			milestone.TargetDate = nil
		} else {
			target, err := parseRecordDate(*req.TargetDate)
			if err != nil {
				return nil, err
			}
			milestone.TargetDate = &target
		}
	}
	if req.Status != nil {
		milestone.Status = domain.MilestoneStatus(*req.Status)
	}
	milestone.RecalculatePercentage(project.ContractAmount)

	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "milestone.updated", domain.EntityMilestone, milestoneID, fmt.Sprintf("Updated milestone on project %s", project.Name))
	return milestone, nil
}

// DeleteMilestone removes a milestone from a project.
func (s *projectService) DeleteMilestone(ctx context.Context, projectID, milestoneID string, requestingUserID string) error {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsEdit); err != nil {
		return err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range project.Milestones {
		if project.Milestones[i].MilestoneID == milestoneID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	project.Milestones = append(project.Milestones[:idx], project.Milestones[idx+1:]...)

	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return err
	}

	s.logActivity(ctx, requestingUserID, "milestone.deleted", domain.EntityMilestone, milestoneID, fmt.Sprintf("Deleted milestone from project %s", project.Name))
	return nil
}

// AddProjectSupplier links a global supplier to a project.
func (s *projectService) AddProjectSupplier(ctx context.Context, projectID string, req dto.AddProjectSupplierRequest, requestingUserID string) (*domain.ProjectSupplier, error) {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsManageSuppliers); err != nil {
		return nil, err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return nil, err
	}

	// The supplier must exist in the global directory.
	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}
	for _, existing := range project.Suppliers {
		if existing.SupplierID == req.SupplierID {
			return nil, apperrors.ErrDuplicate
		}
	}

	link := domain.ProjectSupplier{
		SupplierID:     req.SupplierID,
		Role:           req.Role,
		ContractAmount: req.ContractAmount,
		Notes:          req.Notes,
	}
	project.Suppliers = append(project.Suppliers, link)

	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "project.supplier_added", domain.EntitySupplier, req.SupplierID, fmt.Sprintf("Linked supplier to project %s", project.Name))
	return &link, nil
}

// RemoveProjectSupplier unlinks a supplier from a project.
func (s *projectService) RemoveProjectSupplier(ctx context.Context, projectID, supplierID string, requestingUserID string) error {
	if err := s.requirePermission(ctx, requestingUserID, domain.PermProjectsManageSuppliers); err != nil {
		return err
	}
	project, err := s.loadVisibleProject(ctx, projectID, requestingUserID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range project.Suppliers {
		if project.Suppliers[i].SupplierID == supplierID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	project.Suppliers = append(project.Suppliers[:idx], project.Suppliers[idx+1:]...)

	if err := s.persist(ctx, project, requestingUserID); err != nil {
		return err
	}

	s.logActivity(ctx, requestingUserID, "project.supplier_removed", domain.EntitySupplier, supplierID, fmt.Sprintf("Unlinked supplier from project %s", project.Name))
	return nil
}

// persist stamps the audit fields and writes the whole project document.
func (s *projectService) persist(ctx context.Context, project *domain.Project, requestingUserID string) error {
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", project.ProjectID))
		return err
	}
	return nil
}

func (s *projectService) countOwnedProjects(ctx context.Context, ownerID string) (int, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range projects {
		if p.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (s *projectService) logActivity(ctx context.Context, actorID, action string, entityType domain.EntityType, entityID, details string) {
	if s.activitySvc == nil {
		return
	}
	s.activitySvc.Log(ctx, domain.ActivityLog{
		UserID:     actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	})
}

// parseRecordDate parses the YYYY-MM-DD dates used in financial record payloads.
func parseRecordDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return date, nil
}
