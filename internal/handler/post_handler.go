package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/middleware"
	"github.com/samScriptt/novapress/internal/service"
)

// PostHandler handles the public feed and engagement HTTP requests.
type PostHandler struct {
	postService service.PostServiceInterface
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostServiceInterface) *PostHandler {
	return &PostHandler{postService: postService}
}

// List handles GET /api/v1/posts
func (h *PostHandler) List(c *gin.Context) {
	filter := domain.PostFilter{
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "page_size", 10),
		Search:   c.Query("q"),
		Category: c.Query("category"),
	}

	if filter.Category != "" && !domain.IsValidCategory(filter.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	page, err := h.postService.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[request_id=%s] Failed to list posts: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get handles GET /api/v1/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	detail, err := h.postService.GetDetail(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		log.Printf("[request_id=%s] Failed to get post %s: %v", middleware.GetRequestID(c), id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve post"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ListComments handles GET /api/v1/posts/:id/comments
func (h *PostHandler) ListComments(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	comments, err := h.postService.ListComments(c.Request.Context(), id)
	if err != nil {
		log.Printf("[request_id=%s] Failed to list comments for %s: %v", middleware.GetRequestID(c), id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type createCommentRequest struct {
	Content  string `json:"content"`
	Username string `json:"username"`
}

// CreateComment handles POST /api/v1/posts/:id/comments
func (h *PostHandler) CreateComment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.postService.AddComment(c.Request.Context(), id,
		middleware.GetUserID(c), req.Username, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[request_id=%s] Failed to create comment on %s: %v", middleware.GetRequestID(c), id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

type voteRequest struct {
	VoteType string `json:"vote_type"`
}

// Vote handles POST /api/v1/posts/:id/vote
func (h *PostHandler) Vote(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	counts, userVote, err := h.postService.Vote(c.Request.Context(), id,
		middleware.GetUserID(c), req.VoteType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVote):
			c.JSON(http.StatusBadRequest, gin.H{"error": "vote_type must be like or dislike"})
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		default:
			log.Printf("[request_id=%s] Failed to vote on %s: %v", middleware.GetRequestID(c), id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply vote"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"votes": counts, "user_vote": userVote})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
