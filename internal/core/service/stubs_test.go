package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared across the service tests
// ---------------------------------------------------------------------------

type stubJobRepo struct {
	jobs    map[string]*domain.Job
	nextID  int
	failErr error // if set, every call returns this error
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Insert(_ context.Context, job *domain.Job) (*domain.Job, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	r.nextID++
	clone := *job
	clone.ID = fmt.Sprintf("job-%d", r.nextID)
	r.jobs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubJobRepo) List(_ context.Context, userID string) ([]*domain.Job, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	var out []*domain.Job
	for _, j := range r.jobs {
		if j.UserID == userID {
			clone := *j
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, userID, jobID string) (*domain.Job, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	j, ok := r.jobs[jobID]
	if !ok || j.UserID != userID {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) Update(_ context.Context, userID, jobID string, fields ports.JobFields) error {
	if r.failErr != nil {
		return r.failErr
	}
	j, ok := r.jobs[jobID]
	if !ok || j.UserID != userID {
		return domain.ErrJobNotFound
	}
	j.JobName = fields.JobName
	j.HourlyRate = fields.HourlyRate
	j.Location = fields.Location
	j.Color = fields.Color
	return nil
}

func (r *stubJobRepo) Delete(_ context.Context, userID, jobID string) error {
	if r.failErr != nil {
		return r.failErr
	}
	j, ok := r.jobs[jobID]
	if !ok || j.UserID != userID {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, jobID)
	return nil
}

func (r *stubJobRepo) Count(_ context.Context, userID string) (int64, error) {
	if r.failErr != nil {
		return 0, r.failErr
	}
	var n int64
	for _, j := range r.jobs {
		if j.UserID == userID {
			n++
		}
	}
	return n, nil
}

type stubShiftRepo struct {
	shifts  map[string]*domain.Shift
	nextID  int
	failErr error
}

func newStubShiftRepo() *stubShiftRepo {
	return &stubShiftRepo{shifts: make(map[string]*domain.Shift)}
}

func (r *stubShiftRepo) Insert(_ context.Context, shift *domain.Shift) (*domain.Shift, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	r.nextID++
	clone := *shift
	clone.ID = fmt.Sprintf("shift-%d", r.nextID)
	r.shifts[clone.ID] = &clone
	out := clone
	return &out, nil
}

// List mirrors the real repository's sort: start time descending.
func (r *stubShiftRepo) List(_ context.Context, userID string) ([]*domain.Shift, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	var out []*domain.Shift
	for _, s := range r.shifts {
		if s.UserID == userID {
			clone := *s
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out, nil
}

func (r *stubShiftRepo) Update(_ context.Context, userID, shiftID string, fields ports.ShiftFields) error {
	if r.failErr != nil {
		return r.failErr
	}
	s, ok := r.shifts[shiftID]
	if !ok || s.UserID != userID {
		return domain.ErrShiftNotFound
	}
	s.JobID = fields.JobID
	s.JobName = fields.JobName
	s.StartTime = fields.StartTime
	s.EndTime = fields.EndTime
	s.DurationHours = fields.DurationHours
	s.Earnings = fields.Earnings
	s.Notes = fields.Notes
	return nil
}

func (r *stubShiftRepo) Delete(_ context.Context, userID, shiftID string) error {
	if r.failErr != nil {
		return r.failErr
	}
	s, ok := r.shifts[shiftID]
	if !ok || s.UserID != userID {
		return domain.ErrShiftNotFound
	}
	delete(r.shifts, shiftID)
	return nil
}

type stubAuthRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	nextID  int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", r.nextID)
	r.byEmail[clone.Email] = &clone
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAuthRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type stubTokenStore struct {
	resetTokens map[string]string
	revoked     map[string]time.Time
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{
		resetTokens: make(map[string]string),
		revoked:     make(map[string]time.Time),
	}
}

func (t *stubTokenStore) SaveResetToken(_ context.Context, token, userID string, _ time.Duration) error {
	t.resetTokens[token] = userID
	return nil
}

func (t *stubTokenStore) ConsumeResetToken(_ context.Context, token string) (string, error) {
	userID, ok := t.resetTokens[token]
	if !ok {
		return "", domain.ErrInvalidToken
	}
	delete(t.resetTokens, token)
	return userID, nil
}

func (t *stubTokenStore) Revoke(_ context.Context, token string, until time.Time) error {
	t.revoked[token] = until
	return nil
}

func (t *stubTokenStore) IsRevoked(_ context.Context, token string) (bool, error) {
	_, ok := t.revoked[token]
	return ok, nil
}
