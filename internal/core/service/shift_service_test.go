package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

const testUser = "user-1"

func seedJob(t *testing.T, repo *stubJobRepo, name string, rate float64) *domain.Job {
	t.Helper()
	job, err := repo.Insert(context.Background(), &domain.Job{
		UserID:     testUser,
		JobName:    name,
		HourlyRate: rate,
		Color:      domain.DefaultJobColor,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func TestShiftService_CreateShift_DerivesFigures(t *testing.T) {
	jobRepo := newStubJobRepo()
	shiftRepo := newStubShiftRepo()
	svc := NewShiftService(shiftRepo, jobRepo, zerolog.Nop())

	cafe := seedJob(t, jobRepo, "Cafe", 20)

	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	shift, err := svc.CreateShift(context.Background(), testUser, ports.CreateShiftInput{
		JobID:     cafe.ID,
		StartTime: start,
		EndTime:   start.Add(4 * time.Hour),
		Notes:     "morning rush",
	})
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}

	if shift.DurationHours != 4.00 {
		t.Errorf("duration = %v, want 4.00", shift.DurationHours)
	}
	if shift.Earnings != 80.00 {
		t.Errorf("earnings = %v, want 80.00", shift.Earnings)
	}
	if shift.JobName != "Cafe" {
		t.Errorf("job name snapshot = %q, want Cafe", shift.JobName)
	}
	if shift.Notes != "morning rush" {
		t.Errorf("notes = %q", shift.Notes)
	}
}

func TestShiftService_CreateShift_RejectsEndBeforeStart(t *testing.T) {
	jobRepo := newStubJobRepo()
	shiftRepo := newStubShiftRepo()
	svc := NewShiftService(shiftRepo, jobRepo, zerolog.Nop())

	job := seedJob(t, jobRepo, "Cafe", 20)
	start := time.Date(2026, 1, 5, 13, 0, 0, 0, time.UTC)

	for _, end := range []time.Time{start.Add(-time.Hour), start} {
		_, err := svc.CreateShift(context.Background(), testUser, ports.CreateShiftInput{
			JobID:     job.ID,
			StartTime: start,
			EndTime:   end,
		})
		if !errors.Is(err, domain.ErrEndBeforeStart) {
			t.Errorf("end=%v: err = %v, want ErrEndBeforeStart", end, err)
		}
	}

	// Nothing may be persisted by a rejected create.
	if len(shiftRepo.shifts) != 0 {
		t.Errorf("repo has %d shifts, want 0", len(shiftRepo.shifts))
	}
}

func TestShiftService_CreateShift_RequiresFields(t *testing.T) {
	jobRepo := newStubJobRepo()
	shiftRepo := newStubShiftRepo()
	svc := NewShiftService(shiftRepo, jobRepo, zerolog.Nop())

	job := seedJob(t, jobRepo, "Cafe", 20)
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input ports.CreateShiftInput
	}{
		{"missing job", ports.CreateShiftInput{StartTime: start, EndTime: start.Add(time.Hour)}},
		{"missing start", ports.CreateShiftInput{JobID: job.ID, EndTime: start.Add(time.Hour)}},
		{"missing end", ports.CreateShiftInput{JobID: job.ID, StartTime: start}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateShift(context.Background(), testUser, tt.input)
			if !errors.Is(err, domain.ErrInvalidShift) {
				t.Errorf("err = %v, want ErrInvalidShift", err)
			}
		})
	}

	if len(shiftRepo.shifts) != 0 {
		t.Errorf("repo has %d shifts, want 0", len(shiftRepo.shifts))
	}
}

func TestShiftService_CreateShift_UnknownJob(t *testing.T) {
	jobRepo := newStubJobRepo()
	shiftRepo := newStubShiftRepo()
	svc := NewShiftService(shiftRepo, jobRepo, zerolog.Nop())

	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	_, err := svc.CreateShift(context.Background(), testUser, ports.CreateShiftInput{
		JobID:     "job-404",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Errorf("err = %v, want ErrJobNotFound", err)
	}
}

func TestShiftService_ListShifts_OrderedByStartDesc(t *testing.T) {
	jobRepo := newStubJobRepo()
	shiftRepo := newStubShiftRepo()
	svc := NewShiftService(shiftRepo, jobRepo, zerolog.Nop())

	job := seedJob(t, jobRepo, "Cafe", 20)

	// Insert out of order: Jan 1, Jan 3, Jan 2.
	for _, day := range []int{1, 3, 2} {
		start := time.Date(2026, 1, day, 9, 0, 0, 0, time.UTC)
		if _, err := svc.CreateShift(context.Background(), testUser, ports.CreateShiftInput{
			JobID:     job.ID,
			StartTime: start,
			EndTime:   start.Add(2 * time.Hour),
		}); err != nil {
			t.Fatalf("CreateShift day %d: %v", day, err)
		}
	}

	shifts, err := svc.ListShifts(context.Background(), testUser)
	if err != nil {
		t.Fatalf("ListShifts: %v", err)
	}

	if len(shifts) != 3 {
		t.Fatalf("got %d shifts, want 3", len(shifts))
	}
	for i, wantDay := range []int{3, 2, 1} {
		if got := shifts[i].StartTime.Day(); got != wantDay {
			t.Errorf("shifts[%d] day = %d, want %d", i, got, wantDay)
		}
	}
}

func TestShiftService_UpdateShift_ResnapshotsCurrentRate(t *testing.T) {
	jobRepo := newStubJobRepo()
	shiftRepo := newStubShiftRepo()
	svc := NewShiftService(shiftRepo, jobRepo, zerolog.Nop())

	cafe := seedJob(t, jobRepo, "Cafe", 20)
	bar := seedJob(t, jobRepo, "Bar", 30)

	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	shift, err := svc.CreateShift(context.Background(), testUser, ports.CreateShiftInput{
		JobID:     cafe.ID,
		StartTime: start,
		EndTime:   start.Add(4 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}

	// Re-point the shift at the bar job: earnings must use the bar's current
	// rate, not the cafe rate captured at creation.
	err = svc.UpdateShift(context.Background(), testUser, shift.ID, ports.UpdateShiftInput{
		JobID:     bar.ID,
		StartTime: start,
		EndTime:   start.Add(4 * time.Hour),
		Notes:     "switched job",
	})
	if err != nil {
		t.Fatalf("UpdateShift: %v", err)
	}

	updated := shiftRepo.shifts[shift.ID]
	if updated.Earnings != 120.00 {
		t.Errorf("earnings = %v, want 120.00", updated.Earnings)
	}
	if updated.JobName != "Bar" {
		t.Errorf("job name = %q, want Bar", updated.JobName)
	}
	if updated.JobID != bar.ID {
		t.Errorf("job id = %q, want %q", updated.JobID, bar.ID)
	}
}

func TestShiftService_UpdateShift_UsesRateAtEditTime(t *testing.T) {
	jobRepo := newStubJobRepo()
	shiftRepo := newStubShiftRepo()
	svc := NewShiftService(shiftRepo, jobRepo, zerolog.Nop())

	cafe := seedJob(t, jobRepo, "Cafe", 20)
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	shift, err := svc.CreateShift(context.Background(), testUser, ports.CreateShiftInput{
		JobID:     cafe.ID,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}

	// Raise the cafe rate after the fact. Existing shifts keep their figures
	// until edited; an edit picks up the new rate.
	jobRepo.jobs[cafe.ID].HourlyRate = 25

	if got := shiftRepo.shifts[shift.ID].Earnings; got != 40.00 {
		t.Fatalf("pre-edit earnings = %v, want 40.00", got)
	}

	err = svc.UpdateShift(context.Background(), testUser, shift.ID, ports.UpdateShiftInput{
		JobID:     cafe.ID,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("UpdateShift: %v", err)
	}

	if got := shiftRepo.shifts[shift.ID].Earnings; got != 50.00 {
		t.Errorf("post-edit earnings = %v, want 50.00", got)
	}
}

func TestShiftService_JobDeletionLeavesShiftsIntact(t *testing.T) {
	jobRepo := newStubJobRepo()
	shiftRepo := newStubShiftRepo()
	shiftSvc := NewShiftService(shiftRepo, jobRepo, zerolog.Nop())
	jobSvc := NewJobService(jobRepo, zerolog.Nop())

	cafe := seedJob(t, jobRepo, "Cafe", 20)
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	shift, err := shiftSvc.CreateShift(context.Background(), testUser, ports.CreateShiftInput{
		JobID:     cafe.ID,
		StartTime: start,
		EndTime:   start.Add(3 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}

	if err := jobSvc.DeleteJob(context.Background(), testUser, cafe.ID); err != nil {
		t.Fatalf("DeleteJob: %v", err)
	}

	shifts, err := shiftSvc.ListShifts(context.Background(), testUser)
	if err != nil {
		t.Fatalf("ListShifts: %v", err)
	}
	if len(shifts) != 1 {
		t.Fatalf("got %d shifts after job deletion, want 1", len(shifts))
	}

	orphan := shifts[0]
	if orphan.ID != shift.ID {
		t.Errorf("shift id changed: %q -> %q", shift.ID, orphan.ID)
	}
	if orphan.JobName != "Cafe" {
		t.Errorf("snapshotted job name = %q, want Cafe", orphan.JobName)
	}
	if orphan.JobID != cafe.ID {
		t.Errorf("dangling job id = %q, want %q", orphan.JobID, cafe.ID)
	}
	if math.Abs(orphan.Earnings-60.00) > 0.01 {
		t.Errorf("earnings = %v, want 60.00", orphan.Earnings)
	}
}

func TestShiftService_DeleteShift(t *testing.T) {
	jobRepo := newStubJobRepo()
	shiftRepo := newStubShiftRepo()
	svc := NewShiftService(shiftRepo, jobRepo, zerolog.Nop())

	job := seedJob(t, jobRepo, "Cafe", 20)
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	shift, err := svc.CreateShift(context.Background(), testUser, ports.CreateShiftInput{
		JobID:     job.ID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}

	if err := svc.DeleteShift(context.Background(), testUser, shift.ID); err != nil {
		t.Fatalf("DeleteShift: %v", err)
	}
	if err := svc.DeleteShift(context.Background(), testUser, shift.ID); !errors.Is(err, domain.ErrShiftNotFound) {
		t.Errorf("second delete err = %v, want ErrShiftNotFound", err)
	}
}
