package handler

import (
	"github.com/gin-gonic/gin"
	appbilling "github.com/vozip/billing/internal/application/billing"
	"github.com/vozip/billing/internal/interfaces/http/middleware"
)

// DashboardHandler serves the operational summary
type DashboardHandler struct {
	BaseHandler
	service *appbilling.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *appbilling.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /api/v1/dashboard/summary?year=YYYY
func (h *DashboardHandler) Summary(c *gin.Context) {
	var req appbilling.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
