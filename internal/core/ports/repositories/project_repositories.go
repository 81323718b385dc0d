package repositories

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
)

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// ListProjects retrieves the whole project collection.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// FindProjectByID retrieves a specific project by its ID.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
}

// ProjectWriter defines write operations for project data. The backing
// store holds whole project documents, so nested financial records are
// persisted by updating their project.
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject replaces an existing project document.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes a project.
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
