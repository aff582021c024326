package ports

import (
	"context"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
)

// JobFields carries the four mutable job fields. Updates overwrite all of
// them; there is no partial-field diffing.
type JobFields struct {
	JobName    string
	HourlyRate float64
	Location   string
	Color      string
}

// JobRepository defines persistence operations for jobs. Every call is scoped
// by the owning user's id; a job belonging to another user is indistinguishable
// from one that does not exist.
type JobRepository interface {
	Insert(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// List returns the user's full job set with no ordering guarantee.
	List(ctx context.Context, userID string) ([]*domain.Job, error)
	FindByID(ctx context.Context, userID, jobID string) (*domain.Job, error)
	Update(ctx context.Context, userID, jobID string, fields JobFields) error
	// Delete is unconditional and performs no referential check against shifts.
	Delete(ctx context.Context, userID, jobID string) error
	Count(ctx context.Context, userID string) (int64, error)
}
