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

// supplierService implements the SupplierSvcFacade interface for the global
// supplier directory. Per-project supplier links live on the project service.
type supplierService struct {
	BaseService
	supplierRepo  portsrepo.SupplierRepositoryFacade
	projectRepo   portsrepo.ProjectReader
	permissionSvc portssvc.PermissionSvcFacade
	activitySvc   portssvc.ActivitySvcFacade
}

// NewSupplierService creates a new supplier service.
func NewSupplierService(
	supplierRepo portsrepo.SupplierRepositoryFacade,
	projectRepo portsrepo.ProjectReader,
	permissionSvc portssvc.PermissionSvcFacade,
	activitySvc portssvc.ActivitySvcFacade,
) portssvc.SupplierSvcFacade {
	return &supplierService{
		supplierRepo:  supplierRepo,
		projectRepo:   projectRepo,
		permissionSvc: permissionSvc,
		activitySvc:   activitySvc,
	}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) requireManage(ctx context.Context, userID string) error {
	allowed, err := s.permissionSvc.HasPermission(ctx, userID, domain.PermProjectsManageSuppliers)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}
	return nil
}

// ListSuppliers retrieves the whole supplier directory.
func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, err
	}
	return suppliers, nil
}

// GetSupplierByID retrieves a supplier by its ID.
func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, supplierID)
}

// CreateSupplier creates a supplier in the global directory.
func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error) {
	if err := s.requireManage(ctx, creatorUserID); err != nil {
		return nil, err
	}

	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:    uuid.NewString(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	s.logActivity(ctx, creatorUserID, "supplier.created", supplier.SupplierID, fmt.Sprintf("Created supplier %s", supplier.Name))
	return &supplier, nil
}

// UpdateSupplier updates an existing supplier.
func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error) {
	if err := s.requireManage(ctx, requestingUserID); err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}

	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = requestingUserID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}

	s.logActivity(ctx, requestingUserID, "supplier.updated", supplierID, fmt.Sprintf("Updated supplier %s", supplier.Name))
	return supplier, nil
}

// DeleteSupplier removes a supplier from the directory. A supplier still
// linked to a project cannot be deleted.
func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string, requestingUserID string) error {
	if err := s.requireManage(ctx, requestingUserID); err != nil {
		return err
	}
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return err
	}

	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return err
	}
	for _, p := range projects {
		for _, link := range p.Suppliers {
			if link.SupplierID == supplierID {
				return fmt.Errorf("%w: supplier is linked to project %s", apperrors.ErrValidation, p.Name)
			}
		}
	}

	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		s.LogError(ctx, err, "Failed to delete supplier", slog.String("supplier_id", supplierID))
		return err
	}

	s.logActivity(ctx, requestingUserID, "supplier.deleted", supplierID, fmt.Sprintf("Deleted supplier %s", supplier.Name))
	return nil
}

func (s *supplierService) logActivity(ctx context.Context, actorID, action, supplierID, details string) {
	if s.activitySvc == nil {
		return
	}
	s.activitySvc.Log(ctx, domain.ActivityLog{
		UserID:     actorID,
		Action:     action,
		EntityType: domain.EntitySupplier,
		EntityID:   supplierID,
		Details:    details,
	})
}
