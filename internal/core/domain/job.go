package domain

import (
	"errors"
	"time"
)

// DefaultJobColor is applied when a job is created without an explicit color.
const DefaultJobColor = "#4f46e5"

var ErrJobNotFound = errors.New("job not found")
var ErrInvalidJob = errors.New("job name and hourly rate are required")

// Job is a user-defined employer/rate profile. A job is owned by exactly one
// user and every query against it is scoped by UserID.
type Job struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	JobName    string    `json:"job_name"`
	HourlyRate float64   `json:"hourly_rate"`
	Location   string    `json:"location,omitempty"`
	Color      string    `json:"color"`
	CreatedAt  time.Time `json:"created_at"`
}
