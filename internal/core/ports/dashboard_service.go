package ports

import "context"

// DashboardSummary is the read-only rollup shown on the dashboard. Hour and
// money figures are rounded to two decimals for display.
type DashboardSummary struct {
	TotalJobs     int64
	TotalHours    float64
	TotalEarnings float64
	WeekEarnings  float64
}

// DashboardService computes aggregates over the user's jobs and shifts. It
// holds no state of its own; the week boundary is recomputed on every call.
type DashboardService interface {
	Summary(ctx context.Context, userID string) (*DashboardSummary, error)
}
