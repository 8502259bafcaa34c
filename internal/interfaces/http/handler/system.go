package handler

import (
	"net/http"

	appreport "github.com/alimenta/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// SystemHandler serves the unauthenticated health and status endpoints
type SystemHandler struct {
	BaseHandler
	reportService *appreport.ReportService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(reportService *appreport.ReportService) *SystemHandler {
	return &SystemHandler{reportService: reportService}
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Status handles GET /api/status, a lightweight public snapshot of the
// platform
func (h *SystemHandler) Status(c *gin.Context) {
	h.Success(c, h.reportService.Status(c.Request.Context()))
}
