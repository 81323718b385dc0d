package dto

import "github.com/ProLedger/project_ledger_app/internal/core/domain"

// ListActivityParams holds the query filters for the activity log listing.
type ListActivityParams struct {
	UserID     string `form:"userId"`
	EntityType string `form:"entityType"`
	EntityID   string `form:"entityId"`
	Search     string `form:"search"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// ListActivityResponse wraps the filtered activity entries, newest first.
type ListActivityResponse struct {
	Entries []domain.ActivityLog `json:"entries"`
	Total   int                  `json:"total"`
}
