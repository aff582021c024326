package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

// ShiftHandler handles HTTP requests for the shift ledger.
type ShiftHandler struct {
	service ports.ShiftService
}

func NewShiftHandler(service ports.ShiftService) *ShiftHandler {
	return &ShiftHandler{service: service}
}

// List handles GET /v1/shifts, newest start time first.
//
// @Summary      List the user's shifts
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listShiftsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/shifts [get]
func (h *ShiftHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	shifts, err := h.service.ListShifts(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	data := make([]shiftResponse, 0, len(shifts))
	for _, s := range shifts {
		data = append(data, toShiftResponse(s))
	}
	return c.JSON(http.StatusOK, listShiftsResponse{Data: data})
}

// Create handles POST /v1/shifts.
//
// @Summary      Log a shift
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      shiftRequest  true  "Shift details"
// @Success      201   {object}  shiftResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/shifts [post]
func (h *ShiftHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req shiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shift, err := h.service.CreateShift(c.Request().Context(), userID, ports.CreateShiftInput{
		JobID:     req.JobID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toShiftResponse(shift))
}

// Update handles PUT /v1/shifts/:id. Duration and earnings are recomputed
// from the referenced job's current rate; the snapshotted job name is
// refreshed too.
//
// @Summary      Edit a shift
// @Tags         shifts
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      string        true  "Shift id"
// @Param        body  body      shiftRequest  true  "Replacement shift fields"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/shifts/{id} [put]
func (h *ShiftHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req shiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.UpdateShift(c.Request().Context(), userID, c.Param("id"), ports.UpdateShiftInput{
		JobID:     req.JobID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/shifts/:id. The confirmation dialog lives in the
// client; the API deletes unconditionally.
//
// @Summary      Delete a shift
// @Tags         shifts
// @Security     BearerAuth
// @Param        id  path  string  true  "Shift id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/shifts/{id} [delete]
func (h *ShiftHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteShift(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
