package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/avinash2017colab/part-time-tracker/internal/api/metrics"
	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

// DashboardService computes the read-only dashboard rollup. It never mutates
// anything and caches nothing; the week boundary is derived from the clock on
// every call.
type DashboardService struct {
	jobs   ports.JobRepository
	shifts ports.ShiftRepository
	loc    *time.Location
	now    func() time.Time
	log    zerolog.Logger
}

// NewDashboardService builds a DashboardService computing week boundaries in
// loc. A nil loc falls back to the process-local zone.
func NewDashboardService(jobs ports.JobRepository, shifts ports.ShiftRepository, loc *time.Location, log zerolog.Logger) *DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{jobs: jobs, shifts: shifts, loc: loc, now: time.Now, log: log}
}

// Summary aggregates the user's jobs and shifts. Shifts without a derived
// duration are skipped entirely, earnings included. A read failure aborts the
// whole computation; there is no partial-aggregate state.
func (s *DashboardService) Summary(ctx context.Context, userID string) (*ports.DashboardSummary, error) {
	started := time.Now()

	totalJobs, err := s.jobs.Count(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("dashboard job count failed")
		return nil, err
	}

	shifts, err := s.shifts.List(ctx, userID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("dashboard shift read failed")
		return nil, err
	}

	weekStart := domain.WeekStart(s.now().In(s.loc))

	var hours, earnings, weekEarnings float64
	for _, shift := range shifts {
		if shift.DurationHours == 0 {
			continue
		}
		hours += shift.DurationHours
		earnings += shift.Earnings
		if !shift.StartTime.Before(weekStart) {
			weekEarnings += shift.Earnings
		}
	}

	metrics.DashboardComputeDuration.Observe(time.Since(started).Seconds())

	return &ports.DashboardSummary{
		TotalJobs:     totalJobs,
		TotalHours:    domain.Round2(hours),
		TotalEarnings: domain.Round2(earnings),
		WeekEarnings:  domain.Round2(weekEarnings),
	}, nil
}
