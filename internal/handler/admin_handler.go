package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samScriptt/novapress/internal/middleware"
	"github.com/samScriptt/novapress/internal/service"
)

// AdminHandler serves the operator dashboard snapshot.
type AdminHandler struct {
	adminService service.AdminServiceInterface
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Metrics handles GET /api/v1/admin/metrics
func (h *AdminHandler) Metrics(c *gin.Context) {
	metrics, err := h.adminService.Metrics(c.Request.Context())
	if err != nil {
		log.Printf("[request_id=%s] Failed to assemble admin metrics: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assemble metrics"})
		return
	}

	c.JSON(http.StatusOK, metrics)
}
