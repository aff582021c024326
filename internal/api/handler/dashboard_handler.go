package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avinash2017colab/part-time-tracker/internal/core/ports"
)

// DashboardHandler serves the read-only aggregation view.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /v1/dashboard.
//
// @Summary      Dashboard totals
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(summary))
}
