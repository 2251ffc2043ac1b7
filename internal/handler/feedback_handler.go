package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/middleware"
	"github.com/samScriptt/novapress/internal/service"
)

// FeedbackHandler handles the site feedback widget HTTP requests.
type FeedbackHandler struct {
	feedbackService service.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService service.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

type feedbackRequest struct {
	PreferredTopics []string `json:"preferred_topics"`
	TopicSuggestion string   `json:"new_topic_suggestion"`
	Rating          int      `json:"rating"`
}

// Submit handles POST /api/v1/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	feedback := &domain.Feedback{
		UserID:          middleware.GetUserID(c),
		UserEmail:       middleware.GetUserEmail(c),
		PreferredTopics: req.PreferredTopics,
		TopicSuggestion: req.TopicSuggestion,
		Rating:          req.Rating,
	}

	if err := h.feedbackService.Submit(c.Request.Context(), feedback); err != nil {
		var limitErr *service.FeedbackLimitError
		switch {
		case errors.As(err, &limitErr):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":         limitErr.Error(),
				"next_eligible": limitErr.NextEligible.Format(TimeFormat),
			})
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[request_id=%s] Failed to store feedback: %v", middleware.GetRequestID(c), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store feedback"})
		}
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// Status handles GET /api/v1/feedback/status
func (h *FeedbackHandler) Status(c *gin.Context) {
	status, err := h.feedbackService.Status(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		log.Printf("[request_id=%s] Failed to check feedback status: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check feedback status"})
		return
	}

	c.JSON(http.StatusOK, status)
}
