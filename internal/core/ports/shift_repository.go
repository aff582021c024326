package ports

import (
	"context"
	"time"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
)

// ShiftFields carries the full replacement document written on an edit. The
// derived duration and earnings are included because edits always recompute
// and overwrite them.
type ShiftFields struct {
	JobID         string
	JobName       string
	StartTime     time.Time
	EndTime       time.Time
	DurationHours float64
	Earnings      float64
	Notes         string
}

// ShiftRepository defines persistence operations for shifts, scoped by the
// owning user's id.
type ShiftRepository interface {
	Insert(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	// List returns all of the user's shifts ordered by start time descending.
	// Ties are broken arbitrarily.
	List(ctx context.Context, userID string) ([]*domain.Shift, error)
	Update(ctx context.Context, userID, shiftID string, fields ShiftFields) error
	Delete(ctx context.Context, userID, shiftID string) error
}
