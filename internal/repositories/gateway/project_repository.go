package gateway

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
)

const projectsCollection = "projects"

// projectRepository stores projects in the gateway's projects collection.
// Every write is a read-modify-write of the whole collection.
type projectRepository struct {
	store CollectionStore
}

// NewProjectRepository creates a gateway-backed project repository.
func NewProjectRepository(store CollectionStore) portsrepo.ProjectRepositoryFacade {
	return &projectRepository{store: store}
}

var _ portsrepo.ProjectRepositoryFacade = (*projectRepository)(nil)

func (r *projectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := r.store.GetCollection(ctx, projectsCollection, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	projects, err := r.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	for idx := range projects {
		if projects[idx].ProjectID == projectID {
			return &projects[idx], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *projectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	projects, err := r.ListProjects(ctx)
	if err != nil {
		return err
	}
	for _, existing := range projects {
		if existing.ProjectID == project.ProjectID {
			return apperrors.ErrDuplicate
		}
	}
	projects = append(projects, project)
	return r.store.ReplaceCollection(ctx, projectsCollection, projects)
}

func (r *projectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	projects, err := r.ListProjects(ctx)
	if err != nil {
		return err
	}
	for idx := range projects {
		if projects[idx].ProjectID == project.ProjectID {
			projects[idx] = project
			return r.store.ReplaceCollection(ctx, projectsCollection, projects)
		}
	}
	return apperrors.ErrNotFound
}

func (r *projectRepository) DeleteProject(ctx context.Context, projectID string) error {
	projects, err := r.ListProjects(ctx)
	if err != nil {
		return err
	}
	for idx := range projects {
		if projects[idx].ProjectID == projectID {
			projects = append(projects[:idx], projects[idx+1:]...)
			return r.store.ReplaceCollection(ctx, projectsCollection, projects)
		}
	}
	return apperrors.ErrNotFound
}
