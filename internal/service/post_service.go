package service

import (
	"context"
	"fmt"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/metrics"
	"github.com/samScriptt/novapress/internal/repository"
	"github.com/samScriptt/novapress/internal/validator"
)

// ErrPostNotFound is returned when an operation targets a post that
// does not exist.
var ErrPostNotFound = fmt.Errorf("post not found")

// ErrInvalidVote is returned for a vote type outside like/dislike.
var ErrInvalidVote = fmt.Errorf("invalid vote type")

// PostDetail is a post plus the viewer-specific state around it. When
// the view is locked the article body is withheld.
type PostDetail struct {
	Post     domain.Post       `json:"post"`
	Access   domain.PostAccess `json:"access"`
	Votes    domain.VoteCounts `json:"votes"`
	UserVote string            `json:"user_vote,omitempty"`
}

// PostService serves the public feed and the engagement widgets.
type PostService struct {
	posts      repository.PostRepository
	engagement repository.EngagementRepository
	accessLogs repository.AccessLogRepository
	access     *AccessService
	validator  *validator.Validator
}

// NewPostService creates a new PostService.
func NewPostService(
	posts repository.PostRepository,
	engagement repository.EngagementRepository,
	accessLogs repository.AccessLogRepository,
	access *AccessService,
) *PostService {
	return &PostService{
		posts:      posts,
		engagement: engagement,
		accessLogs: accessLogs,
		access:     access,
		validator:  validator.NewValidator(),
	}
}

// List returns one page of the feed. Listing is free; gating applies
// only to the full article body on the detail view.
func (s *PostService) List(ctx context.Context, filter domain.PostFilter) (*domain.PostPage, error) {
	page, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// The feed shows teasers only.
	for i := range page.Posts {
		page.Posts[i].Content = ""
	}
	return page, nil
}

// GetDetail returns one post with the viewer's access verdict, vote
// counts, and own vote. A locked verdict strips the article body. The
// view is recorded in the audit trail best-effort.
func (s *PostService) GetDetail(ctx context.Context, postID, userID string) (*PostDetail, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	access, err := s.access.Authorize(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	detail := &PostDetail{Post: *post, Access: access}
	if access.Locked {
		detail.Post.Content = ""
		metrics.PostViewsTotal.WithLabelValues("locked").Inc()
	} else {
		metrics.PostViewsTotal.WithLabelValues("granted").Inc()
	}

	votes, err := s.engagement.GetVoteCounts(ctx, postID)
	if err != nil {
		return nil, err
	}
	detail.Votes = votes

	if userID != "" {
		vote, err := s.engagement.GetUserVote(ctx, postID, userID)
		if err != nil {
			return nil, err
		}
		detail.UserVote = vote
	}

	s.recordView(ctx, postID, userID, access)

	return detail, nil
}

// AddComment validates and stores a comment from a signed-in reader.
func (s *PostService) AddComment(ctx context.Context, postID, userID, username, content string) (*domain.Comment, error) {
	if err := s.validator.ValidateComment(content); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &domain.Comment{
		PostID:   postID,
		UserID:   userID,
		Username: username,
		Content:  content,
	}
	if err := s.engagement.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns all comments on a post, newest first.
func (s *PostService) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	return s.engagement.ListComments(ctx, postID)
}

// Vote applies the reaction toggle and returns the updated counts plus
// the viewer's resulting vote (empty when the toggle removed it).
func (s *PostService) Vote(ctx context.Context, postID, userID, voteType string) (domain.VoteCounts, string, error) {
	if !domain.IsValidVoteType(voteType) {
		return domain.VoteCounts{}, "", ErrInvalidVote
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return domain.VoteCounts{}, "", err
	}
	if post == nil {
		return domain.VoteCounts{}, "", ErrPostNotFound
	}

	if err := s.engagement.ToggleVote(ctx, postID, userID, voteType); err != nil {
		return domain.VoteCounts{}, "", err
	}

	counts, err := s.engagement.GetVoteCounts(ctx, postID)
	if err != nil {
		return domain.VoteCounts{}, "", err
	}
	userVote, err := s.engagement.GetUserVote(ctx, postID, userID)
	if err != nil {
		return domain.VoteCounts{}, "", err
	}
	return counts, userVote, nil
}

func (s *PostService) recordView(ctx context.Context, postID, userID string, access domain.PostAccess) {
	event := domain.AccessEvent{
		EventType: domain.EventViewPost,
		EventData: map[string]any{
			"post_id": postID,
			"locked":  access.Locked,
		},
	}
	if userID != "" {
		event.UserID = &userID
	}
	s.accessLogs.Record(ctx, event)
}
