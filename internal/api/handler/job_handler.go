package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

// JobHandler handles HTTP requests for the job registry.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /v1/jobs.
//
// @Summary      List the user's jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listJobsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.ListJobs(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	data := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		data = append(data, toJobResponse(j))
	}
	return c.JSON(http.StatusOK, listJobsResponse{Data: data})
}

// Create handles POST /v1/jobs.
//
// @Summary      Register a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.CreateJob(c.Request().Context(), userID, ports.CreateJobInput{
		JobName:    req.JobName,
		HourlyRate: req.HourlyRate,
		Location:   req.Location,
		Color:      req.Color,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// Update handles PUT /v1/jobs/:id as a full overwrite of the mutable fields.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      string      true  "Job id"
// @Param        body  body      jobRequest  true  "Replacement job fields"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.UpdateJob(c.Request().Context(), userID, c.Param("id"), ports.UpdateJobInput{
		JobName:    req.JobName,
		HourlyRate: req.HourlyRate,
		Location:   req.Location,
		Color:      req.Color,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/jobs/:id. Deletion never cascades: shifts logged
// against the job keep their snapshotted name and rate-derived earnings.
//
// @Summary      Delete a job
// @Tags         jobs
// @Security     BearerAuth
// @Param        id  path  string  true  "Job id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteJob(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
