package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/avinash2017colab/part-time-tracker/internal/api/metrics"
	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

// ShiftService implements the shift ledger. It reads the job registry to
// snapshot the job's name and rate into each shift at write time.
type ShiftService struct {
	repo ports.ShiftRepository
	jobs ports.JobRepository
	log  zerolog.Logger
}

func NewShiftService(repo ports.ShiftRepository, jobs ports.JobRepository, log zerolog.Logger) *ShiftService {
	return &ShiftService{repo: repo, jobs: jobs, log: log}
}

// ListShifts returns the user's shifts newest start time first.
func (s *ShiftService) ListShifts(ctx context.Context, userID string) ([]*domain.Shift, error) {
	return s.repo.List(ctx, userID)
}

// CreateShift validates, derives duration and earnings from the referenced
// job's current rate, and persists the shift. Nothing is written when
// validation fails.
func (s *ShiftService) CreateShift(ctx context.Context, userID string, input ports.CreateShiftInput) (*domain.Shift, error) {
	if input.JobID == "" || input.StartTime.IsZero() || input.EndTime.IsZero() {
		return nil, domain.ErrInvalidShift
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, domain.ErrEndBeforeStart
	}

	job, err := s.jobs.FindByID(ctx, userID, input.JobID)
	if err != nil {
		return nil, err
	}

	duration, earnings := domain.DeriveShiftFigures(input.StartTime, input.EndTime, job.HourlyRate)

	shift := &domain.Shift{
		UserID:        userID,
		JobID:         job.ID,
		JobName:       job.JobName,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		DurationHours: duration,
		Earnings:      earnings,
		Notes:         input.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, shift)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to log shift")
		return nil, err
	}

	metrics.ShiftsLoggedTotal.Inc()
	s.log.Info().
		Str("user_id", userID).
		Str("shift_id", created.ID).
		Str("job_name", created.JobName).
		Float64("duration_hours", created.DurationHours).
		Msg("shift logged")

	return created, nil
}

// UpdateShift applies the same validation as create and overwrites the whole
// shift. The snapshot is refreshed: earnings come from the current rate of
// the (possibly different) referenced job, not the rate stored at creation.
func (s *ShiftService) UpdateShift(ctx context.Context, userID, shiftID string, input ports.UpdateShiftInput) error {
	if input.JobID == "" || input.StartTime.IsZero() || input.EndTime.IsZero() {
		return domain.ErrInvalidShift
	}
	if !input.EndTime.After(input.StartTime) {
		return domain.ErrEndBeforeStart
	}

	job, err := s.jobs.FindByID(ctx, userID, input.JobID)
	if err != nil {
		return err
	}

	duration, earnings := domain.DeriveShiftFigures(input.StartTime, input.EndTime, job.HourlyRate)

	err = s.repo.Update(ctx, userID, shiftID, ports.ShiftFields{
		JobID:         job.ID,
		JobName:       job.JobName,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		DurationHours: duration,
		Earnings:      earnings,
		Notes:         input.Notes,
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Str("shift_id", shiftID).Msg("shift updated")
	return nil
}

func (s *ShiftService) DeleteShift(ctx context.Context, userID, shiftID string) error {
	if err := s.repo.Delete(ctx, userID, shiftID); err != nil {
		return err
	}

	metrics.ShiftsDeletedTotal.Inc()
	s.log.Info().Str("user_id", userID).Str("shift_id", shiftID).Msg("shift deleted")
	return nil
}
