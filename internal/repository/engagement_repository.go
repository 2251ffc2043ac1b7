package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samScriptt/novapress/internal/domain"
)

// PostgresEngagementRepository implements EngagementRepository using PostgreSQL.
type PostgresEngagementRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEngagementRepository creates a new PostgresEngagementRepository.
func NewPostgresEngagementRepository(pool *pgxpool.Pool) *PostgresEngagementRepository {
	return &PostgresEngagementRepository{pool: pool}
}

// CreateComment stores a new comment on a post.
func (r *PostgresEngagementRepository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (post_id, user_id, username, content)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id, created_at
	`, comment.PostID, comment.UserID, comment.Username, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListComments returns all comments on a post, newest first.
func (r *PostgresEngagementRepository) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, post_id, user_id, username, content, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at DESC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		var username *string
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &username, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		if username != nil {
			c.Username = *username
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// ToggleVote applies the reaction toggle: a repeated vote removes the
// existing one, a different vote replaces it, and no prior vote inserts
// a fresh row. One row per (post, user) is enforced by a unique index.
func (r *PostgresEngagementRepository) ToggleVote(ctx context.Context, postID, userID, voteType string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin vote transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current string
	err = tx.QueryRow(ctx, `
		SELECT vote_type FROM likes
		WHERE post_id = $1 AND user_id = $2
		FOR UPDATE
	`, postID, userID).Scan(&current)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		_, err = tx.Exec(ctx, `
			INSERT INTO likes (post_id, user_id, vote_type)
			VALUES ($1, $2, $3)
		`, postID, userID, voteType)
	case err != nil:
		return fmt.Errorf("read current vote: %w", err)
	case current == voteType:
		_, err = tx.Exec(ctx, `
			DELETE FROM likes WHERE post_id = $1 AND user_id = $2
		`, postID, userID)
	default:
		_, err = tx.Exec(ctx, `
			UPDATE likes SET vote_type = $3, created_at = NOW()
			WHERE post_id = $1 AND user_id = $2
		`, postID, userID, voteType)
	}
	if err != nil {
		return fmt.Errorf("apply vote: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit vote: %w", err)
	}
	return nil
}

// GetVoteCounts returns the aggregated reactions on a post.
func (r *PostgresEngagementRepository) GetVoteCounts(ctx context.Context, postID string) (domain.VoteCounts, error) {
	var counts domain.VoteCounts
	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE vote_type = 'like'),
			COUNT(*) FILTER (WHERE vote_type = 'dislike')
		FROM likes
		WHERE post_id = $1
	`, postID).Scan(&counts.Likes, &counts.Dislikes)
	if err != nil {
		return domain.VoteCounts{}, fmt.Errorf("count votes: %w", err)
	}
	return counts, nil
}

// GetUserVote returns the user's current vote on a post, or empty when
// they have none.
func (r *PostgresEngagementRepository) GetUserVote(ctx context.Context, postID, userID string) (string, error) {
	var voteType string
	err := r.pool.QueryRow(ctx, `
		SELECT vote_type FROM likes
		WHERE post_id = $1 AND user_id = $2
	`, postID, userID).Scan(&voteType)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get user vote: %w", err)
	}
	return voteType, nil
}
