package service

import (
	"context"
	"fmt"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/repository"
)

// Dashboard window sizes.
const (
	topPostsLimit      = 5
	activityWindowDays = 7
	recentFeedbackSize = 20
)

// AdminService assembles the operator dashboard snapshot. All
// aggregation happens in SQL; this layer only stitches the pieces
// together.
type AdminService struct {
	posts      repository.PostRepository
	profiles   repository.ProfileRepository
	feedback   repository.FeedbackRepository
	accessLogs repository.AccessLogRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	posts repository.PostRepository,
	profiles repository.ProfileRepository,
	feedback repository.FeedbackRepository,
	accessLogs repository.AccessLogRepository,
) *AdminService {
	return &AdminService{
		posts:      posts,
		profiles:   profiles,
		feedback:   feedback,
		accessLogs: accessLogs,
	}
}

// Metrics assembles the full dashboard snapshot.
func (s *AdminService) Metrics(ctx context.Context) (*domain.AdminMetrics, error) {
	totalUsers, err := s.profiles.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	subscribers, err := s.profiles.CountSubscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}

	totalPosts, err := s.posts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	byCategory, err := s.posts.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts by category: %w", err)
	}

	topPosts, err := s.accessLogs.TopViewedPosts(ctx, topPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("top viewed posts: %w", err)
	}

	activity, err := s.accessLogs.ActivityPerDay(ctx, activityWindowDays)
	if err != nil {
		return nil, fmt.Errorf("activity per day: %w", err)
	}

	feedbackCount, averageRating, err := s.feedback.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("feedback stats: %w", err)
	}

	recent, err := s.feedback.Recent(ctx, recentFeedbackSize)
	if err != nil {
		return nil, fmt.Errorf("recent feedback: %w", err)
	}

	return &domain.AdminMetrics{
		TotalUsers:      totalUsers,
		Subscribers:     subscribers,
		TotalPosts:      totalPosts,
		PostsByCategory: byCategory,
		TopPosts:        topPosts,
		ActivityPerDay:  activity,
		FeedbackCount:   feedbackCount,
		AverageRating:   averageRating,
		RecentFeedback:  recent,
	}, nil
}
