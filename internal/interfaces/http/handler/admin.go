package handler

import (
	appreport "github.com/alimenta/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin dashboard
type AdminHandler struct {
	BaseHandler
	reportService *appreport.ReportService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(reportService *appreport.ReportService) *AdminHandler {
	return &AdminHandler{reportService: reportService}
}

// Dashboard handles GET /dashboard/admin: platform-wide entity counts,
// recent activity and the delivered-donation rankings
func (h *AdminHandler) Dashboard(c *gin.Context) {
	resp, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
