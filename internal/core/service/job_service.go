package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/avinash2017colab/part-time-tracker/internal/api/metrics"
	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

// JobService implements the job registry.
type JobService struct {
	repo ports.JobRepository
	log  zerolog.Logger
}

func NewJobService(repo ports.JobRepository, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, log: log}
}

func (s *JobService) ListJobs(ctx context.Context, userID string) ([]*domain.Job, error) {
	return s.repo.List(ctx, userID)
}

// CreateJob validates and inserts a new job. Validation happens before any
// write; a rejected job leaves no trace in the store.
func (s *JobService) CreateJob(ctx context.Context, userID string, input ports.CreateJobInput) (*domain.Job, error) {
	if input.JobName == "" || input.HourlyRate == 0 {
		return nil, domain.ErrInvalidJob
	}

	color := input.Color
	if color == "" {
		color = domain.DefaultJobColor
	}

	job := &domain.Job{
		UserID:     userID,
		JobName:    input.JobName,
		HourlyRate: input.HourlyRate,
		Location:   input.Location,
		Color:      color,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, job)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.Inc()
	s.log.Info().Str("user_id", userID).Str("job_id", created.ID).Str("job_name", created.JobName).Msg("job created")

	return created, nil
}

// UpdateJob overwrites all four mutable fields.
func (s *JobService) UpdateJob(ctx context.Context, userID, jobID string, input ports.UpdateJobInput) error {
	if input.JobName == "" || input.HourlyRate == 0 {
		return domain.ErrInvalidJob
	}

	err := s.repo.Update(ctx, userID, jobID, ports.JobFields{
		JobName:    input.JobName,
		HourlyRate: input.HourlyRate,
		Location:   input.Location,
		Color:      input.Color,
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Str("job_id", jobID).Msg("job updated")
	return nil
}

// DeleteJob removes the job unconditionally. Shifts that reference it keep
// their snapshotted job name and dangling job id; that is the record-at-time-
// of-entry contract, not a cascade bug.
func (s *JobService) DeleteJob(ctx context.Context, userID, jobID string) error {
	if err := s.repo.Delete(ctx, userID, jobID); err != nil {
		return err
	}

	metrics.JobsDeletedTotal.Inc()
	s.log.Info().Str("user_id", userID).Str("job_id", jobID).Msg("job deleted")
	return nil
}
