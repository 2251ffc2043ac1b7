package service

import (
	"context"
	"time"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/logger"
	"github.com/samScriptt/novapress/internal/repository"
	"github.com/samScriptt/novapress/internal/validator"
)

// feedbackCooldown is the minimum gap between two submissions from the
// same user.
const feedbackCooldown = 30 * 24 * time.Hour

// FeedbackLimitError is returned when a user submits feedback within
// the cooldown window. It carries the next date they may submit again.
type FeedbackLimitError struct {
	NextEligible time.Time
}

func (e *FeedbackLimitError) Error() string {
	return "feedback already submitted in the last 30 days"
}

// FeedbackStatus reports whether the user may submit feedback now.
type FeedbackStatus struct {
	CanVote      bool       `json:"can_vote"`
	NextEligible *time.Time `json:"next_eligible,omitempty"`
}

// FeedbackService handles the site feedback widget.
type FeedbackService struct {
	feedback repository.FeedbackRepository
	validate *validator.Validator
	now      func() time.Time
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(feedback repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		validate: validator.NewValidator(),
		now:      time.Now,
	}
}

// Submit validates and stores one feedback entry, enforcing the
// 30-day per-user limit.
func (s *FeedbackService) Submit(ctx context.Context, feedback *domain.Feedback) error {
	if err := s.validate.ValidateFeedback(feedback); err != nil {
		return err
	}

	last, err := s.feedback.LastFeedbackAt(ctx, feedback.UserID)
	if err != nil {
		return err
	}
	if last != nil {
		nextEligible := last.Add(feedbackCooldown)
		if s.now().Before(nextEligible) {
			return &FeedbackLimitError{NextEligible: nextEligible}
		}
	}

	return s.feedback.Insert(ctx, feedback)
}

// Status reports whether the user may submit feedback now. A failed
// lookup fails open so a database hiccup never hides the widget.
func (s *FeedbackService) Status(ctx context.Context, userID string) (FeedbackStatus, error) {
	last, err := s.feedback.LastFeedbackAt(ctx, userID)
	if err != nil {
		logger.Warn("feedback status lookup failed, failing open",
			"user_id", userID,
			"error", err.Error())
		return FeedbackStatus{CanVote: true}, nil
	}
	if last == nil {
		return FeedbackStatus{CanVote: true}, nil
	}

	nextEligible := last.Add(feedbackCooldown)
	if s.now().Before(nextEligible) {
		return FeedbackStatus{CanVote: false, NextEligible: &nextEligible}, nil
	}
	return FeedbackStatus{CanVote: true}, nil
}
