package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/images"
	"github.com/samScriptt/novapress/internal/social"
)

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Insert(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	if args.Error(0) == nil && post.ID == "" {
		post.ID = "post-1"
		post.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *mockPostRepo) ExistsByOriginalURL(ctx context.Context, originalURL string) (bool, error) {
	args := m.Called(ctx, originalURL)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) List(ctx context.Context, filter domain.PostFilter) (*domain.PostPage, error) {
	args := m.Called(ctx, filter)
	if p := args.Get(0); p != nil {
		return p.(*domain.PostPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockPostRepo) CountByCategory(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.(map[string]int), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) SetSubscriber(ctx context.Context, userID string, subscribed bool, stripeCustomerID *string) error {
	args := m.Called(ctx, userID, subscribed, stripeCustomerID)
	return args.Error(0)
}

func (m *mockProfileRepo) RecordFreeView(ctx context.Context, userID, postID, viewDate string) error {
	args := m.Called(ctx, userID, postID, viewDate)
	return args.Error(0)
}

func (m *mockProfileRepo) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockProfileRepo) CountSubscribers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockEngagementRepo struct {
	mock.Mock
}

func (m *mockEngagementRepo) CreateComment(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	if args.Error(0) == nil && comment.ID == "" {
		comment.ID = "comment-1"
		comment.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *mockEngagementRepo) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	args := m.Called(ctx, postID)
	if c := args.Get(0); c != nil {
		return c.([]domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEngagementRepo) ToggleVote(ctx context.Context, postID, userID, voteType string) error {
	args := m.Called(ctx, postID, userID, voteType)
	return args.Error(0)
}

func (m *mockEngagementRepo) GetVoteCounts(ctx context.Context, postID string) (domain.VoteCounts, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(domain.VoteCounts), args.Error(1)
}

func (m *mockEngagementRepo) GetUserVote(ctx context.Context, postID, userID string) (string, error) {
	args := m.Called(ctx, postID, userID)
	return args.String(0), args.Error(1)
}

type mockFeedbackRepo struct {
	mock.Mock
}

func (m *mockFeedbackRepo) Insert(ctx context.Context, feedback *domain.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *mockFeedbackRepo) LastFeedbackAt(ctx context.Context, userID string) (*time.Time, error) {
	args := m.Called(ctx, userID)
	if t := args.Get(0); t != nil {
		return t.(*time.Time), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFeedbackRepo) Stats(ctx context.Context) (int, float64, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Get(1).(float64), args.Error(2)
}

func (m *mockFeedbackRepo) Recent(ctx context.Context, limit int) ([]domain.Feedback, error) {
	args := m.Called(ctx, limit)
	if f := args.Get(0); f != nil {
		return f.([]domain.Feedback), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAccessLogRepo struct {
	mock.Mock
}

func (m *mockAccessLogRepo) Record(ctx context.Context, event domain.AccessEvent) {
	m.Called(ctx, event)
}

func (m *mockAccessLogRepo) TopViewedPosts(ctx context.Context, limit int) ([]domain.PostViewCount, error) {
	args := m.Called(ctx, limit)
	if t := args.Get(0); t != nil {
		return t.([]domain.PostViewCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccessLogRepo) ActivityPerDay(ctx context.Context, days int) ([]domain.DailyActivity, error) {
	args := m.Called(ctx, days)
	if a := args.Get(0); a != nil {
		return a.([]domain.DailyActivity), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNewsFetcher struct {
	mock.Mock
}

func (m *mockNewsFetcher) Everything(ctx context.Context, query string) ([]domain.Candidate, error) {
	args := m.Called(ctx, query)
	if c := args.Get(0); c != nil {
		return c.([]domain.Candidate), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRewriter struct {
	mock.Mock
}

func (m *mockRewriter) Rewrite(ctx context.Context, candidate domain.Candidate) (domain.Classification, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(domain.Classification), args.Error(1)
}

type mockRehoster struct {
	mock.Mock
}

func (m *mockRehoster) Rehost(ctx context.Context, imageURL string) images.Outcome {
	args := m.Called(ctx, imageURL)
	return args.Get(0).(images.Outcome)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *mockPublisher) PublishPost(ctx context.Context, summary, link string, media *social.Media) error {
	args := m.Called(ctx, summary, link, media)
	return args.Error(0)
}
