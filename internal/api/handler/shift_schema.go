package handler

import (
	"time"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

// shiftRequest is shared by create and update. Timestamps are RFC 3339.
// duration_hours and earnings are never accepted from the client; the service
// derives them from the referenced job's current rate.
type shiftRequest struct {
	JobID     string    `json:"job_id"     validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time"   validate:"required"`
	Notes     string    `json:"notes"`
}

type shiftResponse struct {
	ID            string    `json:"id"`
	JobID         string    `json:"job_id"`
	JobName       string    `json:"job_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	Earnings      float64   `json:"earnings"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// listShiftsResponse preserves the repository order: newest start time first.
type listShiftsResponse struct {
	Data []shiftResponse `json:"data"`
}

type dashboardResponse struct {
	TotalJobs     int64   `json:"total_jobs"`
	TotalHours    float64 `json:"total_hours"`
	TotalEarnings float64 `json:"total_earnings"`
	WeekEarnings  float64 `json:"week_earnings"`
}

func toShiftResponse(s *domain.Shift) shiftResponse {
	return shiftResponse{
		ID:            s.ID,
		JobID:         s.JobID,
		JobName:       s.JobName,
		StartTime:     s.StartTime.UTC(),
		EndTime:       s.EndTime.UTC(),
		DurationHours: s.DurationHours,
		Earnings:      s.Earnings,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt.UTC(),
	}
}

func toDashboardResponse(s *ports.DashboardSummary) dashboardResponse {
	return dashboardResponse{
		TotalJobs:     s.TotalJobs,
		TotalHours:    s.TotalHours,
		TotalEarnings: s.TotalEarnings,
		WeekEarnings:  s.WeekEarnings,
	}
}
