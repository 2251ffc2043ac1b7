package repository

import (
	"context"
	"errors"
	"time"

	"github.com/samScriptt/novapress/internal/domain"
)

// ErrDuplicateOriginalURL is returned when an insert loses the dedup
// race on posts.original_url. Callers treat it as a benign outcome.
var ErrDuplicateOriginalURL = errors.New("post with this original URL already exists")

// PostRepository defines methods for post data access.
type PostRepository interface {
	Insert(ctx context.Context, post *domain.Post) error
	ExistsByOriginalURL(ctx context.Context, originalURL string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, filter domain.PostFilter) (*domain.PostPage, error)
	Count(ctx context.Context) (int, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
}

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	SetSubscriber(ctx context.Context, userID string, subscribed bool, stripeCustomerID *string) error
	RecordFreeView(ctx context.Context, userID, postID, viewDate string) error
	CountUsers(ctx context.Context) (int, error)
	CountSubscribers(ctx context.Context) (int, error)
}

// EngagementRepository defines methods for comments and votes.
type EngagementRepository interface {
	CreateComment(ctx context.Context, comment *domain.Comment) error
	ListComments(ctx context.Context, postID string) ([]domain.Comment, error)
	ToggleVote(ctx context.Context, postID, userID, voteType string) error
	GetVoteCounts(ctx context.Context, postID string) (domain.VoteCounts, error)
	GetUserVote(ctx context.Context, postID, userID string) (string, error)
}

// FeedbackRepository defines methods for site feedback data access.
type FeedbackRepository interface {
	Insert(ctx context.Context, feedback *domain.Feedback) error
	LastFeedbackAt(ctx context.Context, userID string) (*time.Time, error)
	Stats(ctx context.Context) (count int, averageRating float64, err error)
	Recent(ctx context.Context, limit int) ([]domain.Feedback, error)
}

// AccessLogRepository defines methods for the best-effort audit trail.
type AccessLogRepository interface {
	Record(ctx context.Context, event domain.AccessEvent)
	TopViewedPosts(ctx context.Context, limit int) ([]domain.PostViewCount, error)
	ActivityPerDay(ctx context.Context, days int) ([]domain.DailyActivity, error)
}
