package ports

import (
	"context"
	"time"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
)

// CreateShiftInput carries the data needed to log a shift. Duration and
// earnings are never supplied by the caller; the service derives them from
// the referenced job's current rate.
type CreateShiftInput struct {
	JobID     string
	StartTime time.Time
	EndTime   time.Time
	Notes     string
}

// UpdateShiftInput is the full replacement set for an edit. The referenced
// job may differ from the one the shift was originally logged against, in
// which case the new job's current rate applies.
type UpdateShiftInput struct {
	JobID     string
	StartTime time.Time
	EndTime   time.Time
	Notes     string
}

// ShiftService defines the shift-ledger use cases.
type ShiftService interface {
	ListShifts(ctx context.Context, userID string) ([]*domain.Shift, error)
	CreateShift(ctx context.Context, userID string, input CreateShiftInput) (*domain.Shift, error)
	UpdateShift(ctx context.Context, userID, shiftID string, input UpdateShiftInput) error
	DeleteShift(ctx context.Context, userID, shiftID string) error
}
