package domain

import (
	"strings"
	"time"
)

// EntityType names the kind of entity an activity entry refers to.
type EntityType string

const (
	EntityProject      EntityType = "project"
	EntityIncome       EntityType = "income"
	EntityExpense      EntityType = "expense"
	EntityUser         EntityType = "user"
	EntityCategory     EntityType = "category"
	EntitySupplier     EntityType = "supplier"
	EntityMilestone    EntityType = "milestone"
	EntityOrganization EntityType = "organization"
	EntityPermission   EntityType = "permission"
)

// ActivityLog is one append-only audit entry. Entries are never edited or
// deleted once written; consumers may only filter and sort them.
type ActivityLog struct {
	ActivityID string     `json:"activityID"`
	UserID     string     `json:"userID"`
	Username   string     `json:"username"`
	Action     string     `json:"action"`
	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityID"`
	Details    string     `json:"details,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// ActivityFilter narrows an activity listing. Zero values mean "no
// restriction" for that dimension.
type ActivityFilter struct {
	UserID     string
	EntityType EntityType
	EntityID   string
	Search     string // matched case-insensitively against action, details and username
	From       time.Time
	To         time.Time
}

// Matches reports whether the entry satisfies every set dimension of the
// filter. The end of the time window is inclusive.
func (f ActivityFilter) Matches(e ActivityLog) bool {
	if f.UserID != "" && e.UserID != f.UserID {
		return false
	}
	if f.EntityType != "" && e.EntityType != f.EntityType {
		return false
	}
	if f.EntityID != "" && e.EntityID != f.EntityID {
		return false
	}
	if !f.From.IsZero() && e.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.Timestamp.After(f.To) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Action), needle) &&
			!strings.Contains(strings.ToLower(e.Details), needle) &&
			!strings.Contains(strings.ToLower(e.Username), needle) {
			return false
		}
	}
	return true
}
