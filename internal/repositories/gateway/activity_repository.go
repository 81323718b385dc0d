package gateway

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
)

const activityCollection = "activity"

// activityRepository stores the append-only activity log in the gateway's
// activity collection. Appending still rewrites the whole collection; the
// append-only guarantee is that no code path edits or removes entries.
type activityRepository struct {
	store CollectionStore
}

// NewActivityRepository creates a gateway-backed activity repository.
func NewActivityRepository(store CollectionStore) portsrepo.ActivityRepositoryFacade {
	return &activityRepository{store: store}
}

var _ portsrepo.ActivityRepositoryFacade = (*activityRepository)(nil)

func (r *activityRepository) AppendActivity(ctx context.Context, entry domain.ActivityLog) error {
	entries, err := r.ListActivity(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return r.store.ReplaceCollection(ctx, activityCollection, entries)
}

func (r *activityRepository) ListActivity(ctx context.Context) ([]domain.ActivityLog, error) {
	var entries []domain.ActivityLog
	if err := r.store.GetCollection(ctx, activityCollection, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
