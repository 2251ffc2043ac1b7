package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samScriptt/novapress/internal/domain"
)

// PostgresProfileRepository implements ProfileRepository using PostgreSQL.
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository.
func NewPostgresProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{pool: pool}
}

// GetByID retrieves a profile by user ID. Returns nil when not found.
func (r *PostgresProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	var username *string

	err := r.pool.QueryRow(ctx, `
		SELECT id, email, username, is_subscriber, stripe_customer_id,
			last_free_view_date::text, last_free_view_post_id, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Email, &username, &p.IsSubscriber, &p.StripeCustomerID,
		&p.LastFreeViewDate, &p.LastFreeViewPostID, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if username != nil {
		p.Username = *username
	}
	return &p, nil
}

// SetSubscriber flips the subscription flag for a user, recording the
// payment provider's customer ID when one is known.
func (r *PostgresProfileRepository) SetSubscriber(ctx context.Context, userID string, subscribed bool, stripeCustomerID *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET is_subscriber = $2,
			stripe_customer_id = COALESCE($3, stripe_customer_id),
			updated_at = NOW()
		WHERE id = $1
	`, userID, subscribed, stripeCustomerID)
	if err != nil {
		return fmt.Errorf("set subscriber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found", userID)
	}
	return nil
}

// RecordFreeView stores which post consumed the user's free view for
// the given calendar day.
func (r *PostgresProfileRepository) RecordFreeView(ctx context.Context, userID, postID, viewDate string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET last_free_view_date = $2::date,
			last_free_view_post_id = $3,
			updated_at = NOW()
		WHERE id = $1
	`, userID, viewDate, postID)
	if err != nil {
		return fmt.Errorf("record free view: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found", userID)
	}
	return nil
}

// CountUsers returns the total number of profiles.
func (r *PostgresProfileRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// CountSubscribers returns the number of active subscribers.
func (r *PostgresProfileRepository) CountSubscribers(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM profiles WHERE is_subscriber`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return count, nil
}
