package repositories

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
)

// ActivityRepositoryFacade defines operations for the append-only activity
// log. There is deliberately no update or delete: entries are immutable
// once written.
type ActivityRepositoryFacade interface {
	// AppendActivity appends one entry to the log.
	AppendActivity(ctx context.Context, entry domain.ActivityLog) error

	// ListActivity retrieves the whole activity collection.
	ListActivity(ctx context.Context) ([]domain.ActivityLog, error)
}
