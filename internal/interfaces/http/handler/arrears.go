package handler

import (
	"github.com/gin-gonic/gin"
	appbilling "github.com/vozip/billing/internal/application/billing"
	"github.com/vozip/billing/internal/interfaces/http/middleware"
)

// ArrearsHandler serves arrears reports
type ArrearsHandler struct {
	BaseHandler
	service *appbilling.ArrearsService
}

// NewArrearsHandler creates a new ArrearsHandler
func NewArrearsHandler(service *appbilling.ArrearsService) *ArrearsHandler {
	return &ArrearsHandler{service: service}
}

// Report handles GET /api/v1/arrears?min_months=N
func (h *ArrearsHandler) Report(c *gin.Context) {
	var req appbilling.ArrearsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	report, err := h.service.Report(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}
