package handler

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/middleware"
	"github.com/samScriptt/novapress/internal/service"
)

// CronHandler exposes the ingestion trigger called by the external
// scheduler.
type CronHandler struct {
	ingestService service.IngestServiceInterface
	cronSecret    string
}

// NewCronHandler creates a new CronHandler.
func NewCronHandler(ingestService service.IngestServiceInterface, cronSecret string) *CronHandler {
	return &CronHandler{
		ingestService: ingestService,
		cronSecret:    cronSecret,
	}
}

// Ingest handles GET /api/cron/ingest. The scheduler authenticates
// with a shared bearer secret. Normal terminal outcomes are 200; an
// overlapping run is 409; pipeline failures are 500.
func (h *CronHandler) Ingest(c *gin.Context) {
	if !h.authorized(c.GetHeader("Authorization")) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	requestID := middleware.GetRequestID(c)
	result, err := h.ingestService.Run(c.Request.Context(), requestID)
	if err != nil {
		log.Printf("[request_id=%s] Ingestion run failed: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if result.Status == domain.IngestBusy {
		c.JSON(http.StatusConflict, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CronHandler) authorized(header string) bool {
	const prefix = "Bearer "
	if h.cronSecret == "" || !strings.HasPrefix(header, prefix) {
		return false
	}
	token := header[len(prefix):]
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.cronSecret)) == 1
}
