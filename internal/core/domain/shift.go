package domain

import (
	"errors"
	"math"
	"time"
)

var ErrShiftNotFound = errors.New("shift not found")
var ErrInvalidShift = errors.New("job, start time and end time are required")
var ErrEndBeforeStart = errors.New("end time must be after start time")

// Shift is a single logged work interval against a Job.
//
// JobName and Earnings are denormalized at write time: the shift records the
// job's name and rate as they were at the moment of creation or edit. Later
// changes to the job, including deletion, never touch existing shifts.
type Shift struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"`
	JobID         string    `json:"job_id"`
	JobName       string    `json:"job_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	Earnings      float64   `json:"earnings"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Round2 rounds a monetary or hour figure to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DeriveShiftFigures computes the duration in hours between start and end and
// the earnings at the given hourly rate, both rounded to two decimals.
// Derived figures are always recomputed from scratch, never adjusted.
func DeriveShiftFigures(start, end time.Time, hourlyRate float64) (durationHours, earnings float64) {
	durationHours = Round2(end.Sub(start).Hours())
	earnings = Round2(end.Sub(start).Hours() * hourlyRate)
	return durationHours, earnings
}

// WeekStart returns the most recent Monday 00:00:00 in t's location.
// On a Sunday this is the Monday six days prior, not the next day.
func WeekStart(t time.Time) time.Time {
	daysBack := (int(t.Weekday()) + 6) % 7 // Monday=0 … Sunday=6
	y, m, d := t.AddDate(0, 0, -daysBack).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
