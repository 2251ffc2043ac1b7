package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/service"
)

type mockIngestService struct {
	mock.Mock
}

func (m *mockIngestService) Run(ctx context.Context, requestID string) (domain.IngestResult, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(domain.IngestResult), args.Error(1)
}

type mockPostService struct {
	mock.Mock
}

func (m *mockPostService) List(ctx context.Context, filter domain.PostFilter) (*domain.PostPage, error) {
	args := m.Called(ctx, filter)
	if p := args.Get(0); p != nil {
		return p.(*domain.PostPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostService) GetDetail(ctx context.Context, postID, userID string) (*service.PostDetail, error) {
	args := m.Called(ctx, postID, userID)
	if d := args.Get(0); d != nil {
		return d.(*service.PostDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostService) AddComment(ctx context.Context, postID, userID, username, content string) (*domain.Comment, error) {
	args := m.Called(ctx, postID, userID, username, content)
	if c := args.Get(0); c != nil {
		return c.(*domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostService) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	args := m.Called(ctx, postID)
	if c := args.Get(0); c != nil {
		return c.([]domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostService) Vote(ctx context.Context, postID, userID, voteType string) (domain.VoteCounts, string, error) {
	args := m.Called(ctx, postID, userID, voteType)
	return args.Get(0).(domain.VoteCounts), args.String(1), args.Error(2)
}

type mockFeedbackService struct {
	mock.Mock
}

func (m *mockFeedbackService) Submit(ctx context.Context, feedback *domain.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *mockFeedbackService) Status(ctx context.Context, userID string) (service.FeedbackStatus, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(service.FeedbackStatus), args.Error(1)
}

type mockAdminService struct {
	mock.Mock
}

func (m *mockAdminService) Metrics(ctx context.Context) (*domain.AdminMetrics, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.(*domain.AdminMetrics), args.Error(1)
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
