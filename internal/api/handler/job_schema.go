package handler

import (
	"time"

	"github.com/avinash2017colab/part-time-tracker/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// jobRequest is shared by create and update: an update is a full overwrite of
// the four mutable fields.
type jobRequest struct {
	JobName    string  `json:"job_name"    validate:"required"`
	HourlyRate float64 `json:"hourly_rate" validate:"required"`
	Location   string  `json:"location"`
	Color      string  `json:"color"       validate:"omitempty,hexcolor"`
}

type jobResponse struct {
	ID         string    `json:"id"`
	JobName    string    `json:"job_name"`
	HourlyRate float64   `json:"hourly_rate"`
	Location   string    `json:"location,omitempty"`
	Color      string    `json:"color"`
	CreatedAt  time.Time `json:"created_at"`
}

type listJobsResponse struct {
	Data []jobResponse `json:"data"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:         j.ID,
		JobName:    j.JobName,
		HourlyRate: j.HourlyRate,
		Location:   j.Location,
		Color:      j.Color,
		CreatedAt:  j.CreatedAt.UTC(),
	}
}
