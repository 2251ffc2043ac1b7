package service

import (
	"context"

	"github.com/samScriptt/novapress/internal/domain"
)

// IngestServiceInterface defines the interface for the ingestion pipeline.
// Used for dependency injection and mocking in tests.
type IngestServiceInterface interface {
	// Run executes one ingestion run end to end.
	Run(ctx context.Context, requestID string) (domain.IngestResult, error)
}

// PostServiceInterface defines the interface for the public feed and
// engagement operations.
type PostServiceInterface interface {
	// List returns one page of the feed.
	List(ctx context.Context, filter domain.PostFilter) (*domain.PostPage, error)
	// GetDetail returns a post with its access verdict for the viewer.
	GetDetail(ctx context.Context, postID, userID string) (*PostDetail, error)
	// AddComment validates and stores a comment.
	AddComment(ctx context.Context, postID, userID, username, content string) (*domain.Comment, error)
	// ListComments returns all comments on a post.
	ListComments(ctx context.Context, postID string) ([]domain.Comment, error)
	// Vote applies the reaction toggle and returns the new counts.
	Vote(ctx context.Context, postID, userID, voteType string) (domain.VoteCounts, string, error)
}

// FeedbackServiceInterface defines the interface for the site feedback widget.
type FeedbackServiceInterface interface {
	// Submit validates and stores one feedback entry.
	Submit(ctx context.Context, feedback *domain.Feedback) error
	// Status reports whether the user may submit feedback now.
	Status(ctx context.Context, userID string) (FeedbackStatus, error)
}

// AdminServiceInterface defines the interface for the dashboard snapshot.
type AdminServiceInterface interface {
	// Metrics assembles the full dashboard snapshot.
	Metrics(ctx context.Context) (*domain.AdminMetrics, error)
}
