package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync/atomic"

	"github.com/samScriptt/novapress/internal/domain"
	"github.com/samScriptt/novapress/internal/images"
	"github.com/samScriptt/novapress/internal/logger"
	"github.com/samScriptt/novapress/internal/metrics"
	"github.com/samScriptt/novapress/internal/repository"
	"github.com/samScriptt/novapress/internal/social"
)

// NewsFetcher fetches candidate articles for a keyword query.
type NewsFetcher interface {
	Everything(ctx context.Context, query string) ([]domain.Candidate, error)
}

// ArticleRewriter turns one candidate into an editorial verdict.
type ArticleRewriter interface {
	Rewrite(ctx context.Context, candidate domain.Candidate) (domain.Classification, error)
}

// ImageRehoster moves a remote image into first-party storage, falling
// back to the original URL on any failure.
type ImageRehoster interface {
	Rehost(ctx context.Context, imageURL string) images.Outcome
}

// SocialPublisher posts one tweet per published post.
type SocialPublisher interface {
	Enabled() bool
	PublishPost(ctx context.Context, summary, link string, media *social.Media) error
}

// IngestService runs the ingestion pipeline: fetch, filter, dedup,
// rewrite, persist, and best-effort publish. At most one run executes
// at a time.
type IngestService struct {
	posts    repository.PostRepository
	news     NewsFetcher
	rewriter ArticleRewriter
	images   ImageRehoster
	social   SocialPublisher
	siteURL  string

	rng     *rand.Rand
	running atomic.Bool
}

// NewIngestService creates a new IngestService. The random source picks
// the topic for each run; tests inject a seeded one.
func NewIngestService(
	posts repository.PostRepository,
	news NewsFetcher,
	rewriter ArticleRewriter,
	imageRehoster ImageRehoster,
	socialPublisher SocialPublisher,
	siteURL string,
	rng *rand.Rand,
) *IngestService {
	return &IngestService{
		posts:    posts,
		news:     news,
		rewriter: rewriter,
		images:   imageRehoster,
		social:   socialPublisher,
		siteURL:  siteURL,
		rng:      rng,
	}
}

// Run executes one ingestion run end to end. A run that overlaps an
// in-flight one returns the busy outcome without side effects. Fatal
// failures (news fetch, AI parse, insert) return an error; editorial
// rejection, nothing-new, and losing the insert race are normal
// terminal outcomes.
func (s *IngestService) Run(ctx context.Context, requestID string) (domain.IngestResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return domain.IngestResult{
			Status:  domain.IngestBusy,
			Message: "another ingestion run is in progress",
		}, nil
	}
	defer s.running.Store(false)

	timer := metrics.NewTimer()
	log := logger.WithRequestID(requestID)

	category := domain.ValidCategories[s.rng.Intn(len(domain.ValidCategories))]
	query := domain.CategoryKeywords[category]
	log.Info("ingestion run started", "topic", category)

	candidates, err := s.news.Everything(ctx, query)
	if err != nil {
		metrics.ObserveIngestRun("error", timer.Seconds())
		return domain.IngestResult{}, fmt.Errorf("fetch news: %w", err)
	}

	candidate, found, err := s.pickCandidate(ctx, candidates)
	if err != nil {
		metrics.ObserveIngestRun("error", timer.Seconds())
		return domain.IngestResult{}, err
	}
	if !found {
		log.Info("no eligible unseen candidate", "topic", category, "fetched", len(candidates))
		metrics.ObserveIngestRun(string(domain.IngestNothingNew), timer.Seconds())
		return domain.IngestResult{
			Status:  domain.IngestNothingNew,
			Message: "no eligible unseen article for topic " + category,
		}, nil
	}

	classification, err := s.rewriter.Rewrite(ctx, candidate)
	if err != nil {
		metrics.ObserveIngestRun("error", timer.Seconds())
		return domain.IngestResult{}, fmt.Errorf("rewrite candidate: %w", err)
	}
	if !classification.Valid {
		log.Info("candidate rejected by editorial review", "title", candidate.Title)
		metrics.ObserveIngestRun(string(domain.IngestRejected), timer.Seconds())
		return domain.IngestResult{
			Status:  domain.IngestRejected,
			Title:   candidate.Title,
			Message: "candidate did not pass editorial review",
		}, nil
	}

	imageOutcome := s.images.Rehost(ctx, candidate.ImageURL)

	post := &domain.Post{
		Title:       classification.Title,
		Content:     classification.HTMLContent,
		Summary:     summaryFor(classification, candidate),
		OriginalURL: candidate.URL,
		ImageURL:    imageOutcome.URL,
		Category:    classification.Category,
		Tags:        classification.Tags,
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicateOriginalURL) {
			log.Info("candidate already ingested by a concurrent run", "original_url", candidate.URL)
			metrics.ObserveIngestRun(string(domain.IngestAlreadyExists), timer.Seconds())
			return domain.IngestResult{
				Status:  domain.IngestAlreadyExists,
				Title:   post.Title,
				Message: "article was already ingested",
			}, nil
		}
		metrics.ObserveIngestRun("error", timer.Seconds())
		return domain.IngestResult{}, fmt.Errorf("insert post: %w", err)
	}

	tweetStatus := s.publish(ctx, log, post, imageOutcome)

	log.Info("post published",
		"post_id", post.ID,
		"category", post.Category,
		"image_rehosted", imageOutcome.Rehosted,
		"twitter", tweetStatus)
	metrics.ObserveIngestRun(string(domain.IngestPublished), timer.Seconds())
	metrics.ObservePublished(post.Category, tweetStatus)

	return domain.IngestResult{
		Success:     true,
		Status:      domain.IngestPublished,
		PostID:      post.ID,
		Title:       post.Title,
		Category:    post.Category,
		TweetStatus: tweetStatus,
	}, nil
}

// pickCandidate returns the first eligible candidate not already in the
// posts table, preserving upstream order (newest first).
func (s *IngestService) pickCandidate(ctx context.Context, candidates []domain.Candidate) (domain.Candidate, bool, error) {
	for _, c := range candidates {
		if !c.Eligible() {
			continue
		}
		exists, err := s.posts.ExistsByOriginalURL(ctx, c.URL)
		if err != nil {
			return domain.Candidate{}, false, fmt.Errorf("check duplicate: %w", err)
		}
		if !exists {
			return c, true, nil
		}
	}
	return domain.Candidate{}, false, nil
}

// publish sends the tweet for a new post. Failures never propagate;
// they surface only as the run's tweet status.
func (s *IngestService) publish(ctx context.Context, log *slog.Logger, post *domain.Post, imageOutcome images.Outcome) string {
	if s.social == nil || !s.social.Enabled() {
		return domain.TweetSkipped
	}

	var media *social.Media
	if len(imageOutcome.Data) > 0 {
		media = &social.Media{Data: imageOutcome.Data, ContentType: imageOutcome.ContentType}
	}

	link := s.siteURL + "/post/" + post.ID
	if err := s.social.PublishPost(ctx, post.Summary, link, media); err != nil {
		log.Warn("tweet failed", "post_id", post.ID, "error", err.Error())
		return domain.TweetFailed
	}
	return domain.TweetSuccess
}

// summaryFor applies the summary fallback chain: the model's teaser,
// else the source description, else the source title.
func summaryFor(classification domain.Classification, candidate domain.Candidate) string {
	if classification.TwitterSummary != "" {
		return classification.TwitterSummary
	}
	if candidate.Description != "" {
		return candidate.Description
	}
	return candidate.Title
}
