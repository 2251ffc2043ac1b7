package service

import (
	"context"
	"fmt"
	"time"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/repository"
)

// AccessService decides whether a viewer may read a full post.
// Subscribers always may; signed-in readers get one free post per UTC
// calendar day, with free re-reads of that same post; anonymous
// visitors are locked out of full articles.
type AccessService struct {
	profiles repository.ProfileRepository
	now      func() time.Time
}

// NewAccessService creates a new AccessService.
func NewAccessService(profiles repository.ProfileRepository) *AccessService {
	return &AccessService{
		profiles: profiles,
		now:      time.Now,
	}
}

// Authorize returns the gating verdict for one post view. Granting a
// fresh free view persists it, so the decision is durable across
// requests and devices.
func (s *AccessService) Authorize(ctx context.Context, userID, postID string) (domain.PostAccess, error) {
	if userID == "" {
		return domain.PostAccess{Locked: true, Reason: domain.LockLoginRequired}, nil
	}

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return domain.PostAccess{}, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return domain.PostAccess{Locked: true, Reason: domain.LockLoginRequired}, nil
	}

	if profile.IsSubscriber {
		return domain.PostAccess{Access: domain.AccessSubscriber}, nil
	}

	today := s.now().UTC().Format("2006-01-02")
	if profile.LastFreeViewDate != nil && *profile.LastFreeViewDate == today {
		if profile.LastFreeViewPostID != nil && *profile.LastFreeViewPostID == postID {
			return domain.PostAccess{Access: domain.AccessRevisit}, nil
		}
		return domain.PostAccess{Locked: true, Reason: domain.LockDailyLimit}, nil
	}

	if err := s.profiles.RecordFreeView(ctx, userID, postID, today); err != nil {
		return domain.PostAccess{}, fmt.Errorf("record free view: %w", err)
	}
	return domain.PostAccess{Access: domain.AccessFreeView}, nil
}
