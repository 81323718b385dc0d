package services

import (
	"context"

	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	"github.com/ProLedger/project_ledger_app/internal/dto"
)

// ActivitySvcFacade records and queries the append-only activity log.
type ActivitySvcFacade interface {
	// Log records an activity entry. Logging is best effort: failures are
	// reported to the caller's logger but never fail the originating operation.
	Log(ctx context.Context, entry domain.ActivityLog)

	// ListActivity returns entries matching the filter, newest first.
	ListActivity(ctx context.Context, params dto.ListActivityParams) ([]domain.ActivityLog, error)
}
