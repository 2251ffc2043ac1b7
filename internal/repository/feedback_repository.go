package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samScriptt/novapress/internal/domain"
)

// PostgresFeedbackRepository implements FeedbackRepository using PostgreSQL.
type PostgresFeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFeedbackRepository creates a new PostgresFeedbackRepository.
func NewPostgresFeedbackRepository(pool *pgxpool.Pool) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{pool: pool}
}

// Insert stores one feedback entry.
func (r *PostgresFeedbackRepository) Insert(ctx context.Context, feedback *domain.Feedback) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO site_feedback (user_id, user_email, preferred_topics, new_topic_suggestion, rating)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5)
		RETURNING id, created_at
	`, feedback.UserID, feedback.UserEmail, feedback.PreferredTopics,
		feedback.TopicSuggestion, feedback.Rating).
		Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// LastFeedbackAt returns when the user last submitted feedback, or nil
// when they never have.
func (r *PostgresFeedbackRepository) LastFeedbackAt(ctx context.Context, userID string) (*time.Time, error) {
	var last time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT created_at FROM site_feedback
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID).Scan(&last)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last feedback: %w", err)
	}
	return &last, nil
}

// Recent returns the most recent feedback entries, newest first.
func (r *PostgresFeedbackRepository) Recent(ctx context.Context, limit int) ([]domain.Feedback, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, user_email, preferred_topics, new_topic_suggestion, rating, created_at
		FROM site_feedback
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent feedback: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.Feedback, 0, limit)
	for rows.Next() {
		var f domain.Feedback
		var email, suggestion *string
		if err := rows.Scan(&f.ID, &f.UserID, &email, &f.PreferredTopics,
			&suggestion, &f.Rating, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		if email != nil {
			f.UserEmail = *email
		}
		if suggestion != nil {
			f.TopicSuggestion = *suggestion
		}
		entries = append(entries, f)
	}
	return entries, rows.Err()
}

// Stats returns the total entry count and the average rating across
// all feedback. An empty table yields a zero average.
func (r *PostgresFeedbackRepository) Stats(ctx context.Context) (int, float64, error) {
	var count int
	var average float64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(rating), 0) FROM site_feedback
	`).Scan(&count, &average)
	if err != nil {
		return 0, 0, fmt.Errorf("feedback stats: %w", err)
	}
	return count, average, nil
}
