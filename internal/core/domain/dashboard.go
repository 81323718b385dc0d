package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardWindow is the rolling period for "recent" dashboard counts.
type DashboardWindow string

const (
	Window7Days  DashboardWindow = "7d"
	Window30Days DashboardWindow = "30d"
	Window90Days DashboardWindow = "90d"
	Window1Year  DashboardWindow = "1y"
)

// Duration converts the window to a duration; unknown values default to
// 30 days.
func (w DashboardWindow) Duration() time.Duration {
	switch w {
	case Window7Days:
		return 7 * 24 * time.Hour
	case Window90Days:
		return 90 * 24 * time.Hour
	case Window1Year:
		return 365 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

// TopUser is one entry of the dashboard "top users" ranking.
type TopUser struct {
	UserID   string          `json:"userID"`
	Username string          `json:"username"`
	Profit   decimal.Decimal `json:"profit"`
	Projects int             `json:"projects"`
}

// ProjectProfitability pairs a project with its profitability rate: profit
// relative to the contract amount (percent). Not the same ratio as the
// report's profit margin, which divides by revenue.
type ProjectProfitability struct {
	ProjectID         string          `json:"projectID"`
	Name              string          `json:"name"`
	Profit            decimal.Decimal `json:"profit"`
	ProfitabilityRate decimal.Decimal `json:"profitabilityRate"`
	ContractAmount    decimal.Decimal `json:"contractAmount"`
}

// DashboardStats is the dashboard variant of the reporting output.
type DashboardStats struct {
	TotalProjects    int `json:"totalProjects"`
	ActiveProjects   int `json:"activeProjects"`
	ArchivedProjects int `json:"archivedProjects"`
	RecentProjects   int `json:"recentProjects"`

	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
	RecentUsers int `json:"recentUsers"`
	OnlineUsers int `json:"onlineUsers"`

	TotalActivity  int `json:"totalActivity"`
	RecentActivity int `json:"recentActivity"`
	TodayActivity  int `json:"todayActivity"`

	TopUsers      []TopUser              `json:"topUsers"`
	Profitability []ProjectProfitability `json:"profitability"`
}

// projectProfit is total income minus total expenses over the project's
// whole lifetime (the dashboard is not date-filtered per project).
func projectProfit(p Project) decimal.Decimal {
	revenue := decimal.Zero
	for _, inc := range p.Incomes {
		revenue = revenue.Add(inc.Amount)
	}
	expenses := decimal.Zero
	for _, exp := range p.Expenses {
		expenses = expenses.Add(exp.Amount)
	}
	return revenue.Sub(expenses)
}

// BuildDashboardStats computes dashboard counters and rankings from raw
// snapshots. "Recent" means created at or after now minus the window;
// "online" means a login within the last five minutes. Pure function,
// no I/O, empty inputs yield all-zero stats.
func BuildDashboardStats(projects []Project, users []User, activity []ActivityLog, window DashboardWindow, now time.Time) DashboardStats {
	cutoff := now.Add(-window.Duration())
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := DashboardStats{}

	profitByOwner := map[string]decimal.Decimal{}
	projectsByOwner := map[string]int{}

	for _, p := range projects {
		stats.TotalProjects++
		if p.IsArchived {
			stats.ArchivedProjects++
		} else {
			stats.ActiveProjects++
		}
		if !p.CreatedAt.Before(cutoff) {
			stats.RecentProjects++
		}

		profit := projectProfit(p)
		profitByOwner[p.OwnerID] = profitByOwner[p.OwnerID].Add(profit)
		projectsByOwner[p.OwnerID]++

		rate := decimal.Zero
		if p.ContractAmount.IsPositive() {
			rate = profit.Div(p.ContractAmount).Mul(hundred).Round(2)
		}
		stats.Profitability = append(stats.Profitability, ProjectProfitability{
			ProjectID:         p.ProjectID,
			Name:              p.Name,
			Profit:            profit,
			ProfitabilityRate: rate,
			ContractAmount:    p.ContractAmount,
		})
	}
	sort.SliceStable(stats.Profitability, func(i, j int) bool {
		return stats.Profitability[i].ProfitabilityRate.GreaterThan(stats.Profitability[j].ProfitabilityRate)
	})

	usernames := map[string]string{}
	for _, u := range users {
		stats.TotalUsers++
		if u.IsActive {
			stats.ActiveUsers++
		}
		if !u.CreatedAt.Before(cutoff) {
			stats.RecentUsers++
		}
		if u.IsOnline(now) {
			stats.OnlineUsers++
		}
		usernames[u.UserID] = u.Username
	}

	for _, e := range activity {
		stats.TotalActivity++
		if !e.Timestamp.Before(cutoff) {
			stats.RecentActivity++
		}
		if !e.Timestamp.Before(startOfToday) {
			stats.TodayActivity++
		}
	}

	// Top users: profit summed over owned projects, best five.
	for ownerID, profit := range profitByOwner {
		stats.TopUsers = append(stats.TopUsers, TopUser{
			UserID:   ownerID,
			Username: usernames[ownerID],
			Profit:   profit,
			Projects: projectsByOwner[ownerID],
		})
	}
	sort.SliceStable(stats.TopUsers, func(i, j int) bool {
		if !stats.TopUsers[i].Profit.Equal(stats.TopUsers[j].Profit) {
			return stats.TopUsers[i].Profit.GreaterThan(stats.TopUsers[j].Profit)
		}
		return stats.TopUsers[i].UserID < stats.TopUsers[j].UserID
	})
	if len(stats.TopUsers) > 5 {
		stats.TopUsers = stats.TopUsers[:5]
	}

	return stats
}
