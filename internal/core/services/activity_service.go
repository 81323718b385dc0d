package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/ProLedger/project_ledger_app/internal/core/domain"
	portsrepo "github.com/ProLedger/project_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ProLedger/project_ledger_app/internal/core/ports/services"
	"github.com/ProLedger/project_ledger_app/internal/dto"
	"github.com/google/uuid"
)

const defaultActivityLimit = 100

// activityService implements the ActivitySvcFacade interface.
type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
}

// NewActivityService creates a new activity service.
func NewActivityService(
	activityRepo portsrepo.ActivityRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
) portssvc.ActivitySvcFacade {
	return &activityService{
		activityRepo: activityRepo,
		userRepo:     userRepo,
	}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

// Log records an activity entry. A failure to write the log never fails
// the operation that triggered it; the error is logged and dropped.
func (s *activityService) Log(ctx context.Context, entry domain.ActivityLog) {
	if entry.ActivityID == "" {
		entry.ActivityID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.Username == "" && entry.UserID != "" {
		if user, err := s.userRepo.FindUserByID(ctx, entry.UserID); err == nil {
			entry.Username = user.Username
		}
	}

	if err := s.activityRepo.AppendActivity(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append activity entry",
			slog.String("action", entry.Action),
			slog.String("entity_type", string(entry.EntityType)),
			slog.String("entity_id", entry.EntityID))
	}
}

// ListActivity returns entries matching the filter, newest first.
func (s *activityService) ListActivity(ctx context.Context, params dto.ListActivityParams) ([]domain.ActivityLog, error) {
	filter, err := toActivityFilter(params)
	if err != nil {
		return nil, err
	}

	entries, err := s.activityRepo.ListActivity(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list activity entries")
		return nil, err
	}

	matched := make([]domain.ActivityLog, 0, len(entries))
	for _, e := range entries {
		if filter.Matches(e) {
			matched = append(matched, e)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	limit := params.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// toActivityFilter parses the date strings and widens the end date to the
// last instant of its day so the window stays inclusive.
func toActivityFilter(params dto.ListActivityParams) (domain.ActivityFilter, error) {
	filter := domain.ActivityFilter{
		UserID:     params.UserID,
		EntityType: domain.EntityType(params.EntityType),
		EntityID:   params.EntityID,
		Search:     params.Search,
	}

	if params.From != "" {
		from, err := time.Parse("2006-01-02", params.From)
		if err != nil {
			return filter, apperrors.NewBadRequestError("invalid from date")
		}
		filter.From = from
	}
	if params.To != "" {
		to, err := time.Parse("2006-01-02", params.To)
		if err != nil {
			return filter, apperrors.NewBadRequestError("invalid to date")
		}
		filter.To = to.Add(24*time.Hour - time.Millisecond)
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return filter, apperrors.NewBadRequestError("to date precedes from date")
	}
	return filter, nil
}
