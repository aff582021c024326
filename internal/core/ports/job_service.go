package ports

import (
	"context"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
)

// CreateJobInput carries the data needed to register a new job.
type CreateJobInput struct {
	JobName    string
	HourlyRate float64
	Location   string
	Color      string // empty = domain.DefaultJobColor
}

// UpdateJobInput carries the full replacement set of mutable job fields.
type UpdateJobInput struct {
	JobName    string
	HourlyRate float64
	Location   string
	Color      string
}

// JobService defines the job-registry use cases.
type JobService interface {
	ListJobs(ctx context.Context, userID string) ([]*domain.Job, error)
	CreateJob(ctx context.Context, userID string, input CreateJobInput) (*domain.Job, error)
	UpdateJob(ctx context.Context, userID, jobID string, input UpdateJobInput) error
	DeleteJob(ctx context.Context, userID, jobID string) error
}
